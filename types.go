package imggen

import (
	"fmt"
	"strings"

	"github.com/go-openapi/swag"

	"github.com/skbhati199/ai-img-gen-go/internal/models"
)

// Defaults the service applies to unset GenerateImageRequest fields.
const (
	DefaultModel    = "dall-e-2"
	DefaultFormat   = "png"
	DefaultQuality  = 90
	DefaultOptimize = true
)

// GenerateImageRequest holds the parameters for [Client.GenerateImage].
//
// Optional fields are pointers; a nil field is not sent and the service
// applies its own default. Use the swag helpers to set them:
//
//	req := &imggen.GenerateImageRequest{
//	    Width:  512,
//	    Height: 512,
//	    Prompt: "A beautiful mountain landscape with a lake",
//	    Format: swag.String("webp"),
//	}
type GenerateImageRequest struct {
	// Width of the image in pixels. Required.
	Width int `json:"width" yaml:"width"`

	// Height of the image in pixels. Required.
	Height int `json:"height" yaml:"height"`

	// Prompt describes the image. Required.
	Prompt string `json:"prompt" yaml:"prompt"`

	// Model selects the generation model, e.g. "dall-e-2".
	Model *string `json:"model,omitempty" yaml:"model,omitempty"`

	// Format is the output format, e.g. "png", "jpeg", "webp".
	Format *string `json:"format,omitempty" yaml:"format,omitempty"`

	// Quality is the output quality, 1-100.
	Quality *int `json:"quality,omitempty" yaml:"quality,omitempty"`

	// Optimize asks the service to optimize the result for web delivery.
	Optimize *bool `json:"optimize,omitempty" yaml:"optimize,omitempty"`
}

// WithDefaults returns a copy of r with every unset optional field set to
// the documented default, so that all of them are sent explicitly.
func (r GenerateImageRequest) WithDefaults() *GenerateImageRequest {
	if r.Model == nil {
		r.Model = swag.String(DefaultModel)
	}
	if r.Format == nil {
		r.Format = swag.String(DefaultFormat)
	}
	if r.Quality == nil {
		r.Quality = swag.Int(DefaultQuality)
	}
	if r.Optimize == nil {
		r.Optimize = swag.Bool(DefaultOptimize)
	}
	return &r
}

// ResizeImageRequest holds the parameters for [Client.ResizeImage].
type ResizeImageRequest struct {
	Width   int    `json:"width" yaml:"width"`
	Height  int    `json:"height" yaml:"height"`
	Format  string `json:"format" yaml:"format"`
	Quality int    `json:"quality" yaml:"quality"`
}

// ConvertImageRequest holds the parameters for [Client.ConvertImage].
type ConvertImageRequest struct {
	Format  string `json:"format" yaml:"format"`
	Quality int    `json:"quality" yaml:"quality"`
}

// OptimizeImageRequest holds the parameters for [Client.OptimizeImage].
type OptimizeImageRequest struct {
	Format  string `json:"format" yaml:"format"`
	Quality int    `json:"quality" yaml:"quality"`
}

// SupportedModel describes a generation model the service accepts.
type SupportedModel struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	MaxWidth    int64  `json:"max_width" yaml:"max_width"`
	MaxHeight   int64  `json:"max_height" yaml:"max_height"`
}

// UnmarshalJSON decodes m and fails if any property is missing.
func (m *SupportedModel) UnmarshalJSON(data []byte) error {
	var w models.SupportedModel
	if err := models.Unmarshal(data, &w); err != nil {
		return err
	}
	*m = SupportedModel{
		ID:          swag.StringValue(w.ID),
		Name:        swag.StringValue(w.Name),
		Description: swag.StringValue(w.Description),
		MaxWidth:    swag.Int64Value(w.MaxWidth),
		MaxHeight:   swag.Int64Value(w.MaxHeight),
	}
	return nil
}

// SupportedSize describes an image size the service accepts.
type SupportedSize struct {
	Width       int64  `json:"width" yaml:"width"`
	Height      int64  `json:"height" yaml:"height"`
	AspectRatio string `json:"aspect_ratio" yaml:"aspect_ratio"`
}

// UnmarshalJSON decodes s and fails if any property is missing.
func (s *SupportedSize) UnmarshalJSON(data []byte) error {
	var w models.SupportedSize
	if err := models.Unmarshal(data, &w); err != nil {
		return err
	}
	*s = SupportedSize{
		Width:       swag.Int64Value(w.Width),
		Height:      swag.Int64Value(w.Height),
		AspectRatio: swag.StringValue(w.AspectRatio),
	}
	return nil
}

// String formats the size as "WIDTHxHEIGHT".
func (s SupportedSize) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// SupportedFormat describes an output format the service accepts.
type SupportedFormat struct {
	ID         string   `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	MimeType   string   `json:"mime_type" yaml:"mime_type"`
	Extensions []string `json:"extensions" yaml:"extensions"`
}

// UnmarshalJSON decodes f and fails if any property is missing.
func (f *SupportedFormat) UnmarshalJSON(data []byte) error {
	var w models.SupportedFormat
	if err := models.Unmarshal(data, &w); err != nil {
		return err
	}
	*f = SupportedFormat{
		ID:         swag.StringValue(w.ID),
		Name:       swag.StringValue(w.Name),
		MimeType:   swag.StringValue(w.MimeType),
		Extensions: w.Extensions,
	}
	return nil
}

// HasExtension reports whether ext, with or without a leading dot, is one
// of the format's file extensions. The comparison ignores case.
func (f SupportedFormat) HasExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	for _, e := range f.Extensions {
		if strings.EqualFold(strings.TrimPrefix(e, "."), ext) {
			return true
		}
	}
	return false
}
