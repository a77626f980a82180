// Package models contains the wire representation of the AI Image Generator
// API responses.
//
// Every required property is a pointer so that a property missing from the
// payload can be told apart from one set to its zero value. Validate reports
// every missing property at once as a composite validation error.
//
// This package is an implementation detail of imggen; use the types in the
// root package instead.
package models
