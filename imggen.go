// Package imggen provides a Go SDK for the AI Image Generator API.
//
// The service generates images from text prompts, post-processes them
// (resize, format conversion, web optimization) and hands back URLs of the
// stored results. This package turns typed method calls into the service's
// GET endpoints and classifies every outcome into a small set of errors.
//
// # Installation
//
//	go get github.com/skbhati199/ai-img-gen-go
//
// # Quick Start
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//	    "os"
//
//	    "github.com/go-openapi/swag"
//	    imggen "github.com/skbhati199/ai-img-gen-go"
//	)
//
//	func main() {
//	    client := imggen.NewClient("https://api.img-gen.ai",
//	        imggen.WithAPIKey(os.Getenv("AI_IMG_GEN_API_KEY")),
//	    )
//
//	    url, err := client.GenerateImage(context.Background(), &imggen.GenerateImageRequest{
//	        Width:    512,
//	        Height:   512,
//	        Prompt:   "A beautiful mountain landscape with a lake",
//	        Model:    swag.String("dall-e-2"),
//	        Optimize: swag.Bool(true),
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println("Generated image:", url)
//	}
//
// # Client Configuration
//
// The client can be configured using functional options:
//
//	client := imggen.NewClient("https://api.img-gen.ai",
//	    imggen.WithAPIKey(key),
//	    imggen.WithTimeout(time.Minute),
//	    imggen.WithLogger(logger),
//	    imggen.WithMetrics(prometheus.DefaultRegisterer),
//	)
//
// # Error Handling
//
// Every method returns *Error on failure. Status 401 yields an
// UNAUTHORIZED error, 400 a VALIDATION error whose message is the body the
// service sent, and any other status >= 400 an API_ERROR with the status and
// body. Network failures and timeouts are reported as API_ERROR with
// status 500.
//
//	_, err := client.ResizeImage(ctx, id, req)
//	var apiErr *imggen.Error
//	if errors.As(err, &apiErr) {
//	    switch {
//	    case imggen.IsValidation(err):
//	        log.Printf("bad parameters: %s", apiErr.Message)
//	    case imggen.IsRateLimited(err):
//	        // back off
//	    default:
//	        log.Printf("status %d: %s", apiErr.Status, apiErr.Message)
//	    }
//	}
//
// Only [Client.GenerateImage] retries, once, and only on 5xx.
//
// # Thread Safety
//
// The [Client] is safe for concurrent use by multiple goroutines.
// Each method call is independent and does not share state.
package imggen
