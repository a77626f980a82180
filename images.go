package imggen

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-openapi/swag"
)

const (
	pathImageGen        = "/images/image-gen"
	pathSupportedModels = "/images/supported-models"
	pathSupportedSizes  = "/images/supported-sizes"
	pathResize          = "/images/process/resize/"
	pathConvert         = "/images/process/convert/"
	pathOptimize        = "/images/process/optimize/"
	pathFormats         = "/images/process/formats"
)

// GenerateImage generates an image from a prompt and returns its URL.
//
// Width, Height and Prompt are always sent. Model, Format, Quality and
// Optimize are sent only when set; use [GenerateImageRequest.WithDefaults]
// to send the documented defaults explicitly.
//
// A request that fails with a 5xx status, or with a transport failure, is
// sent again once (see [WithRetries]). The error of the last attempt is
// returned unchanged. Validation, authentication and other 4xx errors are
// never retried.
//
// Example:
//
//	url, err := client.GenerateImage(ctx, &imggen.GenerateImageRequest{
//	    Width:    512,
//	    Height:   512,
//	    Prompt:   "A futuristic city with flying cars and neon lights",
//	    Optimize: swag.Bool(true),
//	})
func (c *Client) GenerateImage(ctx context.Context, req *GenerateImageRequest) (string, error) {
	if req == nil {
		return "", newError(CodeValidation, "request is required", http.StatusBadRequest, nil)
	}

	params := url.Values{}
	params.Set("width", swag.FormatInt64(int64(req.Width)))
	params.Set("height", swag.FormatInt64(int64(req.Height)))
	params.Set("prompt", req.Prompt)
	if req.Model != nil {
		params.Set("model", *req.Model)
	}
	if req.Format != nil {
		params.Set("format", *req.Format)
	}
	if req.Quality != nil {
		params.Set("quality", swag.FormatInt64(int64(*req.Quality)))
	}
	if req.Optimize != nil {
		params.Set("optimize", swag.FormatBool(*req.Optimize))
	}

	var (
		res *Result
		err error
	)
	for attempt := 0; ; attempt++ {
		res, err = c.do(ctx, "generate_image", http.MethodGet, pathImageGen, params)
		if err == nil || attempt >= c.maxRetries || !isRetryable(err) {
			break
		}
		c.logger.Warn().
			Err(err).
			Int("attempt", attempt+1).
			Int("status", StatusCode(err)).
			Msg("Image generation failed, retrying")
	}
	if err != nil {
		return "", err
	}

	return res.Location()
}

// SupportedModels returns the identifiers of the models the service accepts,
// e.g. ["dall-e-2", "openai"].
func (c *Client) SupportedModels(ctx context.Context) ([]string, error) {
	res, err := c.do(ctx, "supported_models", http.MethodGet, pathSupportedModels, nil)
	if err != nil {
		return nil, err
	}

	var models []string
	if err := res.Decode(&models); err != nil {
		return nil, err
	}
	return models, nil
}

// SupportedSizes returns the image sizes the service accepts.
func (c *Client) SupportedSizes(ctx context.Context) ([]SupportedSize, error) {
	res, err := c.do(ctx, "supported_sizes", http.MethodGet, pathSupportedSizes, nil)
	if err != nil {
		return nil, err
	}

	var sizes []SupportedSize
	if err := res.Decode(&sizes); err != nil {
		return nil, err
	}
	return sizes, nil
}

// SupportedFormats returns the output formats the processing endpoints
// accept.
//
// Example:
//
//	formats, err := client.SupportedFormats(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, f := range formats {
//	    fmt.Printf("- %s (%s): %s\n", f.Name, f.MimeType, strings.Join(f.Extensions, ", "))
//	}
func (c *Client) SupportedFormats(ctx context.Context) ([]SupportedFormat, error) {
	res, err := c.do(ctx, "supported_formats", http.MethodGet, pathFormats, nil)
	if err != nil {
		return nil, err
	}

	var formats []SupportedFormat
	if err := res.Decode(&formats); err != nil {
		return nil, err
	}
	return formats, nil
}

// ResizeImage resizes a previously generated image and returns the URL of
// the result.
func (c *Client) ResizeImage(ctx context.Context, imageID string, req *ResizeImageRequest) (string, error) {
	if req == nil {
		return "", newError(CodeValidation, "request is required", http.StatusBadRequest, nil)
	}

	params := url.Values{}
	params.Set("width", swag.FormatInt64(int64(req.Width)))
	params.Set("height", swag.FormatInt64(int64(req.Height)))
	params.Set("format", req.Format)
	params.Set("quality", swag.FormatInt64(int64(req.Quality)))

	return c.process(ctx, "resize_image", pathResize+url.PathEscape(imageID), params)
}

// ConvertImage converts a previously generated image to another format and
// returns the URL of the result.
func (c *Client) ConvertImage(ctx context.Context, imageID string, req *ConvertImageRequest) (string, error) {
	if req == nil {
		return "", newError(CodeValidation, "request is required", http.StatusBadRequest, nil)
	}
	return c.process(ctx, "convert_image", pathConvert+url.PathEscape(imageID), formatParams(req.Format, req.Quality))
}

// OptimizeImage optimizes a previously generated image for web delivery and
// returns the URL of the result.
func (c *Client) OptimizeImage(ctx context.Context, imageID string, req *OptimizeImageRequest) (string, error) {
	if req == nil {
		return "", newError(CodeValidation, "request is required", http.StatusBadRequest, nil)
	}
	return c.process(ctx, "optimize_image", pathOptimize+url.PathEscape(imageID), formatParams(req.Format, req.Quality))
}

func (c *Client) process(ctx context.Context, op, endpoint string, params url.Values) (string, error) {
	res, err := c.do(ctx, op, http.MethodGet, endpoint, params)
	if err != nil {
		return "", err
	}
	return res.Location()
}

func formatParams(format string, quality int) url.Values {
	params := url.Values{}
	params.Set("format", format)
	params.Set("quality", swag.FormatInt64(int64(quality)))
	return params
}
