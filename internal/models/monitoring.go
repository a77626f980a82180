package models

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// HealthStatus health status
//
// swagger:model HealthStatus
type HealthStatus struct {

	// details
	Details map[string]interface{} `json:"details,omitempty"`

	// error
	Error map[string]interface{} `json:"error,omitempty"`

	// info
	Info map[string]interface{} `json:"info,omitempty"`

	// status
	// Required: true
	Status *string `json:"status"`
}

// Validate validates this health status
func (m *HealthStatus) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("status", "body", m.Status); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// Metrics metrics
//
// swagger:model Metrics
type Metrics struct {

	// average response time
	// Required: true
	AverageResponseTime *float64 `json:"average_response_time"`

	// images generated
	// Required: true
	ImagesGenerated *int64 `json:"images_generated"`

	// requests
	// Required: true
	Requests *int64 `json:"requests"`
}

// Validate validates this metrics
func (m *Metrics) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("average_response_time", "body", m.AverageResponseTime); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("images_generated", "body", m.ImagesGenerated); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("requests", "body", m.Requests); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}
