package models

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// SupportedModel supported model
//
// swagger:model SupportedModel
type SupportedModel struct {

	// description
	// Required: true
	Description *string `json:"description"`

	// id
	// Required: true
	ID *string `json:"id"`

	// max height
	// Required: true
	MaxHeight *int64 `json:"max_height"`

	// max width
	// Required: true
	MaxWidth *int64 `json:"max_width"`

	// name
	// Required: true
	Name *string `json:"name"`
}

// Validate validates this supported model
func (m *SupportedModel) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("description", "body", m.Description); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("id", "body", m.ID); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("max_height", "body", m.MaxHeight); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("max_width", "body", m.MaxWidth); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("name", "body", m.Name); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// SupportedSize supported size
//
// swagger:model SupportedSize
type SupportedSize struct {

	// aspect ratio
	// Required: true
	AspectRatio *string `json:"aspect_ratio"`

	// height
	// Required: true
	Height *int64 `json:"height"`

	// width
	// Required: true
	Width *int64 `json:"width"`
}

// Validate validates this supported size
func (m *SupportedSize) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("aspect_ratio", "body", m.AspectRatio); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("height", "body", m.Height); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("width", "body", m.Width); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// SupportedFormat supported format
//
// swagger:model SupportedFormat
type SupportedFormat struct {

	// extensions
	// Required: true
	Extensions []string `json:"extensions"`

	// id
	// Required: true
	ID *string `json:"id"`

	// mime type
	// Required: true
	MimeType *string `json:"mime_type"`

	// name
	// Required: true
	Name *string `json:"name"`
}

// Validate validates this supported format
func (m *SupportedFormat) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("extensions", "body", m.Extensions); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("id", "body", m.ID); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("mime_type", "body", m.MimeType); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("name", "body", m.Name); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}
