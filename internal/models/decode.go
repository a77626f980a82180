package models

import (
	"bytes"

	"github.com/go-openapi/runtime"
	"github.com/go-openapi/strfmt"
)

// Validatable is implemented by every model in this package.
type Validatable interface {
	Validate(formats strfmt.Registry) error
}

var jsonConsumer = runtime.JSONConsumer()

// Unmarshal decodes a JSON document into m and validates it against the
// default format registry.
func Unmarshal(data []byte, m Validatable) error {
	if err := jsonConsumer.Consume(bytes.NewReader(data), m); err != nil {
		return err
	}
	return m.Validate(strfmt.Default)
}
