package imggen_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-openapi/swag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	imggen "github.com/skbhati199/ai-img-gen-go"
)

const imageURL = "https://ai-img-gen-test.s3.us-east-1.amazonaws.com/images/1741921240638_512x512_dall-e-2_d7a5dc07_026c444e.png"

// TestGenerateImage_Success tests GenerateImage with every option set.
//
// It verifies that:
//   - The client calls /images/image-gen with GET
//   - All parameters are sent, optimize as lowercase "true"
//   - The redirect Location is returned as the image URL
func TestGenerateImage_Success(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/images/image-gen", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)

		q := r.URL.Query()
		assert.Equal(t, "512", q.Get("width"))
		assert.Equal(t, "512", q.Get("height"))
		assert.Equal(t, "E-Commerce Platform Web Development", q.Get("prompt"))
		assert.Equal(t, "dall-e-2", q.Get("model"))
		assert.Equal(t, "png", q.Get("format"))
		assert.Equal(t, "90", q.Get("quality"))
		assert.Equal(t, "true", q.Get("optimize"))

		w.Header().Set("Location", imageURL)
		w.WriteHeader(http.StatusFound)
	}))
	defer server.Close()

	// Act
	client := imggen.NewClient(server.URL, imggen.WithAPIKey("test_api_key"))
	url, err := client.GenerateImage(context.Background(), &imggen.GenerateImageRequest{
		Width:    512,
		Height:   512,
		Prompt:   "E-Commerce Platform Web Development",
		Model:    swag.String("dall-e-2"),
		Format:   swag.String("png"),
		Quality:  swag.Int(90),
		Optimize: swag.Bool(true),
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, imageURL, url)
}

// TestGenerateImage_OptionalParams verifies unset optionals are not sent and
// booleans serialize in lowercase.
func TestGenerateImage_OptionalParams(t *testing.T) {
	tests := []struct {
		name     string
		optimize *bool
		want     string
		present  bool
	}{
		{name: "optimize true", optimize: swag.Bool(true), want: "true", present: true},
		{name: "optimize false", optimize: swag.Bool(false), want: "false", present: true},
		{name: "optimize unset", optimize: nil, present: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				q := r.URL.Query()
				_, has := q["optimize"]
				assert.Equal(t, tt.present, has)
				assert.Equal(t, tt.want, q.Get("optimize"))

				for _, key := range []string{"model", "format", "quality"} {
					_, has := q[key]
					assert.False(t, has, "%s should not be sent", key)
				}
				mustEncode(w, imageURL)
			}))
			defer server.Close()

			client := imggen.NewClient(server.URL)
			url, err := client.GenerateImage(context.Background(), &imggen.GenerateImageRequest{
				Width:    256,
				Height:   256,
				Prompt:   "Test prompt",
				Optimize: tt.optimize,
			})

			require.NoError(t, err)
			assert.Equal(t, imageURL, url)
		})
	}
}

// TestGenerateImage_WithDefaults verifies WithDefaults sends every optional.
func TestGenerateImage_WithDefaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "dall-e-2", q.Get("model"))
		assert.Equal(t, "webp", q.Get("format"))
		assert.Equal(t, "90", q.Get("quality"))
		assert.Equal(t, "true", q.Get("optimize"))
		mustEncode(w, map[string]string{"url": imageURL})
	}))
	defer server.Close()

	req := imggen.GenerateImageRequest{Width: 512, Height: 512, Prompt: "p", Format: swag.String("webp")}

	client := imggen.NewClient(server.URL)
	url, err := client.GenerateImage(context.Background(), req.WithDefaults())

	require.NoError(t, err)
	assert.Equal(t, imageURL, url)
	assert.Nil(t, req.Model, "WithDefaults must not modify the receiver")
}

// TestGenerateImage_RetryOn5xx verifies a single 5xx is retried once.
func TestGenerateImage_RetryOn5xx(t *testing.T) {
	// Arrange
	server, calls := sequenceServer(t,
		respond(http.StatusServiceUnavailable, "busy"),
		redirect(imageURL),
	)

	// Act
	client := imggen.NewClient(server.URL)
	url, err := client.GenerateImage(context.Background(), &imggen.GenerateImageRequest{
		Width: 512, Height: 512, Prompt: "Test prompt",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, imageURL, url)
	assert.Equal(t, int32(2), calls.Load())
}

// TestGenerateImage_RetryExhausted verifies the second 5xx propagates.
func TestGenerateImage_RetryExhausted(t *testing.T) {
	server, calls := sequenceServer(t,
		respond(http.StatusServiceUnavailable, "busy"),
		respond(http.StatusServiceUnavailable, "still busy"),
		redirect(imageURL),
	)

	client := imggen.NewClient(server.URL)
	url, err := client.GenerateImage(context.Background(), &imggen.GenerateImageRequest{
		Width: 512, Height: 512, Prompt: "Test prompt",
	})

	require.Error(t, err)
	assert.Empty(t, url)
	assert.Equal(t, int32(2), calls.Load())

	var apiErr *imggen.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, imggen.CodeAPI, apiErr.Code)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
	assert.Equal(t, "still busy", apiErr.Message)
}

// TestGenerateImage_NoRetryBelow500 verifies 4xx errors are returned at once.
func TestGenerateImage_NoRetryBelow500(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(error) bool
	}{
		{name: "validation", status: http.StatusBadRequest, check: imggen.IsValidation},
		{name: "unauthorized", status: http.StatusUnauthorized, check: imggen.IsUnauthorized},
		{name: "not found", status: http.StatusNotFound, check: imggen.IsAPIError},
		{name: "rate limited", status: http.StatusTooManyRequests, check: imggen.IsRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, calls := sequenceServer(t, respond(tt.status, "nope"), redirect(imageURL))

			client := imggen.NewClient(server.URL)
			_, err := client.GenerateImage(context.Background(), &imggen.GenerateImageRequest{
				Width: 512, Height: 512, Prompt: "Test prompt",
			})

			require.Error(t, err)
			assert.True(t, tt.check(err))
			assert.Equal(t, int32(1), calls.Load())
		})
	}
}

// TestGenerateImage_WithRetries verifies the retry bound is configurable.
func TestGenerateImage_WithRetries(t *testing.T) {
	tests := []struct {
		name      string
		retries   int
		wantCalls int32
	}{
		{name: "disabled", retries: 0, wantCalls: 1},
		{name: "negative treated as zero", retries: -3, wantCalls: 1},
		{name: "three", retries: 3, wantCalls: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, calls := sequenceServer(t, respond(http.StatusBadGateway, "bad gateway"))

			client := imggen.NewClient(server.URL, imggen.WithRetries(tt.retries))
			_, err := client.GenerateImage(context.Background(), &imggen.GenerateImageRequest{
				Width: 1, Height: 1, Prompt: "p",
			})

			require.Error(t, err)
			assert.Equal(t, tt.wantCalls, calls.Load())
		})
	}
}

// TestGenerateImage_NilRequest verifies a nil request fails without a call.
func TestGenerateImage_NilRequest(t *testing.T) {
	server, calls := sequenceServer(t, redirect(imageURL))

	client := imggen.NewClient(server.URL)
	url, err := client.GenerateImage(context.Background(), nil)

	require.Error(t, err)
	assert.Empty(t, url)
	assert.True(t, imggen.IsValidation(err))
	assert.Equal(t, int32(0), calls.Load())
}

// TestGenerateImage_UnexpectedJSON verifies a JSON body without a URL fails.
func TestGenerateImage_UnexpectedJSON(t *testing.T) {
	server, _ := sequenceServer(t, func(w http.ResponseWriter, r *http.Request) {
		mustEncode(w, map[string]int{"id": 7})
	})

	client := imggen.NewClient(server.URL)
	_, err := client.GenerateImage(context.Background(), &imggen.GenerateImageRequest{
		Width: 1, Height: 1, Prompt: "p",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, imggen.ErrInvalidResponse)
}

// TestSupportedModels_Success tests SupportedModels.
func TestSupportedModels_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/images/supported-models", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Empty(t, r.URL.RawQuery)
		mustEncode(w, []string{"dall-e-2", "openai"})
	}))
	defer server.Close()

	client := imggen.NewClient(server.URL)
	models, err := client.SupportedModels(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"dall-e-2", "openai"}, models)
}

// TestSupportedSizes_Success tests SupportedSizes.
func TestSupportedSizes_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/images/supported-sizes", r.URL.Path)
		mustEncode(w, []map[string]interface{}{
			{"width": 256, "height": 256, "aspect_ratio": "1:1"},
			{"width": 1024, "height": 768, "aspect_ratio": "4:3"},
		})
	}))
	defer server.Close()

	client := imggen.NewClient(server.URL)
	sizes, err := client.SupportedSizes(context.Background())

	require.NoError(t, err)
	require.Len(t, sizes, 2)
	assert.Equal(t, imggen.SupportedSize{Width: 256, Height: 256, AspectRatio: "1:1"}, sizes[0])
	assert.Equal(t, "1024x768", sizes[1].String())
}

// TestSupportedSizes_MissingField verifies a malformed descriptor fails.
func TestSupportedSizes_MissingField(t *testing.T) {
	server, _ := sequenceServer(t, func(w http.ResponseWriter, r *http.Request) {
		mustEncode(w, []map[string]interface{}{{"width": 256, "height": 256}})
	})

	client := imggen.NewClient(server.URL)
	sizes, err := client.SupportedSizes(context.Background())

	require.Error(t, err)
	assert.Nil(t, sizes)
	assert.ErrorIs(t, err, imggen.ErrInvalidResponse)
	assert.Contains(t, err.Error(), "aspect_ratio")
}

// TestSupportedFormats_Success tests SupportedFormats.
func TestSupportedFormats_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/images/process/formats", r.URL.Path)
		mustEncode(w, []map[string]interface{}{
			{"id": "png", "name": "PNG", "mime_type": "image/png", "extensions": []string{"png"}},
			{"id": "jpeg", "name": "JPEG", "mime_type": "image/jpeg", "extensions": []string{"jpg", "jpeg"}},
		})
	}))
	defer server.Close()

	client := imggen.NewClient(server.URL)
	formats, err := client.SupportedFormats(context.Background())

	require.NoError(t, err)
	require.Len(t, formats, 2)
	assert.Equal(t, "image/jpeg", formats[1].MimeType)
	assert.True(t, formats[1].HasExtension(".JPG"))
	assert.False(t, formats[0].HasExtension("webp"))
}

// TestProcessImage tests the resize, convert and optimize endpoints.
func TestProcessImage(t *testing.T) {
	const imageID = "a7ee365a-c024-4d2d-91db-598f2be8ef45"

	tests := []struct {
		name       string
		wantPath   string
		wantParams map[string]string
		call       func(*imggen.Client) (string, error)
	}{
		{
			name:       "resize",
			wantPath:   "/images/process/resize/" + imageID,
			wantParams: map[string]string{"width": "256", "height": "128", "format": "png", "quality": "90"},
			call: func(c *imggen.Client) (string, error) {
				return c.ResizeImage(context.Background(), imageID, &imggen.ResizeImageRequest{
					Width: 256, Height: 128, Format: "png", Quality: 90,
				})
			},
		},
		{
			name:       "convert",
			wantPath:   "/images/process/convert/" + imageID,
			wantParams: map[string]string{"format": "jpeg", "quality": "85"},
			call: func(c *imggen.Client) (string, error) {
				return c.ConvertImage(context.Background(), imageID, &imggen.ConvertImageRequest{
					Format: "jpeg", Quality: 85,
				})
			},
		},
		{
			name:       "optimize",
			wantPath:   "/images/process/optimize/" + imageID,
			wantParams: map[string]string{"format": "webp", "quality": "75"},
			call: func(c *imggen.Client) (string, error) {
				return c.OptimizeImage(context.Background(), imageID, &imggen.OptimizeImageRequest{
					Format: "webp", Quality: 75,
				})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.wantPath, r.URL.Path)
				assert.Equal(t, http.MethodGet, r.Method)
				q := r.URL.Query()
				assert.Len(t, q, len(tt.wantParams))
				for k, v := range tt.wantParams {
					assert.Equal(t, v, q.Get(k), k)
				}
				w.Header().Set("Location", imageURL)
				w.WriteHeader(http.StatusSeeOther)
			}))
			defer server.Close()

			url, err := tt.call(imggen.NewClient(server.URL))

			require.NoError(t, err)
			assert.Equal(t, imageURL, url)
		})
	}
}

// TestProcessImage_NoRetry verifies processing endpoints never retry.
func TestProcessImage_NoRetry(t *testing.T) {
	server, calls := sequenceServer(t, respond(http.StatusInternalServerError, "Internal server error"), redirect(imageURL))

	client := imggen.NewClient(server.URL)
	_, err := client.ConvertImage(context.Background(), "img", &imggen.ConvertImageRequest{Format: "png", Quality: 90})

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, imggen.StatusCode(err))
	assert.Equal(t, int32(1), calls.Load())
}

// TestProcessImage_EscapesID verifies image IDs are path-escaped.
func TestProcessImage_EscapesID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/images/process/resize/a%2Fb", r.URL.EscapedPath())
		mustEncode(w, imageURL)
	}))
	defer server.Close()

	client := imggen.NewClient(server.URL)
	_, err := client.ResizeImage(context.Background(), "a/b", &imggen.ResizeImageRequest{Width: 1, Height: 1, Format: "png", Quality: 1})
	require.NoError(t, err)
}

// TestProcessImage_NilRequest verifies nil requests are rejected locally.
func TestProcessImage_NilRequest(t *testing.T) {
	client := imggen.NewClient("http://localhost:0")

	_, err := client.ResizeImage(context.Background(), "id", nil)
	assert.True(t, imggen.IsValidation(err))

	_, err = client.ConvertImage(context.Background(), "id", nil)
	assert.True(t, imggen.IsValidation(err))

	_, err = client.OptimizeImage(context.Background(), "id", nil)
	assert.True(t, imggen.IsValidation(err))
}
