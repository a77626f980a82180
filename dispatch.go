package imggen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-openapi/runtime"
)

// maxBodySize limits how much of a response body is read. Successful
// responses are small JSON documents or URLs; the limit protects against a
// misconfigured server streaming an image body back.
const maxBodySize = 10 * 1024 * 1024 // 10MB

var jsonConsumer = runtime.JSONConsumer()

// ResultKind tells which branch of response decoding produced a [Result].
type ResultKind int

const (
	// ResultJSON is a response body that parsed as JSON.
	ResultJSON ResultKind = iota + 1

	// ResultRedirect is a 302 or 303 response; URL holds its Location.
	// A relative Location is resolved against the request URL, so URL can
	// differ from the raw header value.
	ResultRedirect

	// ResultURL is a non-JSON body; URL holds the resolved request URL.
	ResultURL

	// ResultText is a non-JSON body with no known request URL.
	ResultText
)

func (k ResultKind) String() string {
	switch k {
	case ResultJSON:
		return "json"
	case ResultRedirect:
		return "redirect"
	case ResultURL:
		return "url"
	case ResultText:
		return "text"
	default:
		return fmt.Sprintf("ResultKind(%d)", int(k))
	}
}

// Result is a successfully classified response.
//
// Exactly one of Body, URL or Text is meaningful, depending on Kind.
type Result struct {
	Kind       ResultKind
	StatusCode int

	// Body is the raw JSON document for ResultJSON.
	Body []byte

	// URL is the Location header for ResultRedirect and the resolved
	// request URL for ResultURL.
	URL string

	// Text is the raw body for ResultText.
	Text string
}

// Decode unmarshals a JSON result into v. Results of any other kind, and
// JSON that does not fit v, yield an INVALID_RESPONSE error.
func (r *Result) Decode(v interface{}) error {
	if r.Kind != ResultJSON {
		return newError(CodeInvalidResponse, fmt.Sprintf("expected a JSON response, got %s", r.Kind), r.StatusCode, &UnexpectedResultError{Result: r})
	}
	if err := jsonConsumer.Consume(bytes.NewReader(r.Body), v); err != nil {
		return newError(CodeInvalidResponse, "failed to decode response", r.StatusCode, err)
	}
	return nil
}

// Location returns the asset URL carried by the result.
//
// Redirect and URL results return URL, text results return Text. A JSON
// result must be either a string or an object with a "url" property.
func (r *Result) Location() (string, error) {
	switch r.Kind {
	case ResultRedirect, ResultURL:
		return r.URL, nil
	case ResultText:
		return r.Text, nil
	}

	var s string
	if err := r.Decode(&s); err == nil {
		return s, nil
	}
	var obj struct {
		URL string `json:"url"`
	}
	if err := r.Decode(&obj); err == nil && obj.URL != "" {
		return obj.URL, nil
	}
	return "", newError(CodeInvalidResponse, "response does not contain an image URL", r.StatusCode, &UnexpectedResultError{Result: r})
}

// UnexpectedResultError is the Cause of an INVALID_RESPONSE error when a
// successful response does not have the shape the operation needs. It keeps
// the response so callers can still read it:
//
//	var unexpected *imggen.UnexpectedResultError
//	if errors.As(err, &unexpected) {
//	    log.Printf("raw body: %s", unexpected.Result.Body)
//	}
type UnexpectedResultError struct {
	Result *Result
}

func (e *UnexpectedResultError) Error() string {
	const maxShown = 200

	var raw string
	switch e.Result.Kind {
	case ResultJSON:
		raw = string(e.Result.Body)
	case ResultText:
		raw = e.Result.Text
	default:
		raw = e.Result.URL
	}
	if len(raw) > maxShown {
		raw = raw[:maxShown] + "..."
	}
	return fmt.Sprintf("unexpected %s response: %s", e.Result.Kind, raw)
}

// Dispatch performs a single request against endpoint and classifies the
// outcome. All typed methods go through it; it is exported for endpoints the
// SDK does not wrap yet.
//
// Errors are always *Error:
//   - 401 yields UNAUTHORIZED
//   - 400 yields VALIDATION with the raw body as message
//   - any other status >= 400 yields API_ERROR with the status and raw body
//   - transport failures, including timeouts, yield API_ERROR with status 500
//
// Dispatch never retries.
func (c *Client) Dispatch(ctx context.Context, method, endpoint string, params url.Values) (*Result, error) {
	return c.do(ctx, "dispatch", method, endpoint, params)
}

func (c *Client) do(ctx context.Context, op, method, endpoint string, params url.Values) (*Result, error) {
	start := time.Now()
	res, err := c.roundTrip(ctx, method, endpoint, params)
	elapsed := time.Since(start)

	status := StatusCode(err)
	if res != nil {
		status = res.StatusCode
	}
	c.metrics.observe(op, status, err, elapsed)

	if err != nil {
		c.logger.Debug().
			Err(err).
			Str("op", op).
			Str("method", method).
			Str("path", endpoint).
			Int("status", status).
			Dur("duration", elapsed).
			Msg("Request failed")
		return nil, err
	}

	c.logger.Debug().
		Str("op", op).
		Str("method", method).
		Str("path", endpoint).
		Int("status", status).
		Stringer("result", res.Kind).
		Dur("duration", elapsed).
		Msg("Request completed")
	return res, nil
}

func (c *Client) roundTrip(ctx context.Context, method, endpoint string, params url.Values) (*Result, error) {
	u, err := c.endpointURL(endpoint, params)
	if err != nil {
		return nil, transportError(err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, u, http.NoBody)
	if err != nil {
		return nil, transportError(err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Close response body if present to prevent resource leak
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
		return nil, transportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, transportError(err)
	}

	return classify(resp, body)
}

// endpointURL joins endpoint onto the base URL, keeping any base path such
// as /api/v1. endpoint must already be path-escaped.
func (c *Client) endpointURL(endpoint string, params url.Values) (string, error) {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return "", fmt.Errorf("invalid base URL %q: scheme and host are required", c.baseURL)
	}

	u := base.JoinPath(endpoint)
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}
	return u.String(), nil
}

func classify(resp *http.Response, body []byte) (*Result, error) {
	status := resp.StatusCode
	text := string(body)

	switch {
	case status == http.StatusUnauthorized:
		return nil, newError(CodeUnauthorized, "invalid API key", status, nil)
	case status == http.StatusBadRequest:
		return nil, newError(CodeValidation, text, status, nil)
	case status >= http.StatusBadRequest:
		return nil, newError(CodeAPI, text, status, nil)
	}

	if status == http.StatusFound || status == http.StatusSeeOther {
		loc := resp.Header.Get("Location")
		if resolved, err := resp.Location(); err == nil {
			loc = resolved.String()
		}
		return &Result{Kind: ResultRedirect, StatusCode: status, URL: loc}, nil
	}

	// The consumer stops after the first value, so text that merely starts
	// with one ("true story") must be rejected up front.
	if json.Valid(body) {
		var v interface{}
		if err := jsonConsumer.Consume(bytes.NewReader(body), &v); err == nil {
			return &Result{Kind: ResultJSON, StatusCode: status, Body: body}, nil
		}
	}

	if resp.Request != nil && resp.Request.URL != nil {
		return &Result{Kind: ResultURL, StatusCode: status, URL: resp.Request.URL.String()}, nil
	}
	return &Result{Kind: ResultText, StatusCode: status, Text: text}, nil
}

// transportError normalizes a failure below HTTP into a 500 API error so
// callers handle one error surface.
func transportError(err error) *Error {
	return newError(CodeAPI, err.Error(), http.StatusInternalServerError, err)
}
