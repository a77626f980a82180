package imggen

import (
	"context"
	"net/http"

	"github.com/go-openapi/swag"

	"github.com/skbhati199/ai-img-gen-go/internal/models"
)

const (
	pathMetrics = "/monitoring/metrics"
	pathHealth  = "/monitoring/health"
)

// HealthStatus constants for convenience.
const (
	// StatusOK indicates the service is healthy.
	StatusOK = "ok"

	// StatusError indicates at least one health indicator is failing.
	StatusError = "error"
)

// HealthStatus represents the health of the service.
//
// Info lists healthy indicators, Error failing ones and Details all of
// them. All three are optional.
type HealthStatus struct {
	Status  string                 `json:"status" yaml:"status"`
	Info    map[string]interface{} `json:"info,omitempty" yaml:"info,omitempty"`
	Error   map[string]interface{} `json:"error,omitempty" yaml:"error,omitempty"`
	Details map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty"`
}

// UnmarshalJSON decodes h and fails if status is missing.
func (h *HealthStatus) UnmarshalJSON(data []byte) error {
	var w models.HealthStatus
	if err := models.Unmarshal(data, &w); err != nil {
		return err
	}
	*h = HealthStatus{
		Status:  swag.StringValue(w.Status),
		Info:    w.Info,
		Error:   w.Error,
		Details: w.Details,
	}
	return nil
}

// IsHealthy returns true if the overall status is "ok".
func (h *HealthStatus) IsHealthy() bool {
	return h.Status == StatusOK
}

// ServerVersion returns the version string the service reports in its
// health indicators, or "" when it reports none. A top-level "version" in
// Info or Details wins over one nested inside an indicator.
func (h *HealthStatus) ServerVersion() string {
	for _, m := range []map[string]interface{}{h.Info, h.Details} {
		if v, ok := m["version"].(string); ok && v != "" {
			return v
		}
	}
	for _, m := range []map[string]interface{}{h.Info, h.Details} {
		for _, indicator := range m {
			nested, ok := indicator.(map[string]interface{})
			if !ok {
				continue
			}
			if v, ok := nested["version"].(string); ok && v != "" {
				return v
			}
		}
	}
	return ""
}

// IsCompatible reports whether the version reported by the service is
// within [APIVersionRange]. It returns false when no version is reported.
func (h *HealthStatus) IsCompatible() bool {
	return IsCompatible(h.ServerVersion())
}

// Metrics holds service usage counters.
type Metrics struct {
	Requests        int64 `json:"requests" yaml:"requests"`
	ImagesGenerated int64 `json:"images_generated" yaml:"images_generated"`

	// AverageResponseTime is in milliseconds.
	AverageResponseTime float64 `json:"average_response_time" yaml:"average_response_time"`
}

// UnmarshalJSON decodes m and fails if any property is missing.
func (m *Metrics) UnmarshalJSON(data []byte) error {
	var w models.Metrics
	if err := models.Unmarshal(data, &w); err != nil {
		return err
	}
	*m = Metrics{
		Requests:            swag.Int64Value(w.Requests),
		ImagesGenerated:     swag.Int64Value(w.ImagesGenerated),
		AverageResponseTime: swag.Float64Value(w.AverageResponseTime),
	}
	return nil
}

// Health checks the health of the service.
//
// A service reporting an unhealthy status still returns a HealthStatus;
// only transport and HTTP errors produce an error:
//
//	health, err := client.Health(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !health.IsHealthy() {
//	    log.Printf("service unhealthy: %v", health.Error)
//	}
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	res, err := c.do(ctx, "health", http.MethodGet, pathHealth, nil)
	if err != nil {
		return nil, err
	}

	var health HealthStatus
	if err := res.Decode(&health); err != nil {
		return nil, err
	}
	return &health, nil
}

// Metrics returns service usage metrics.
func (c *Client) Metrics(ctx context.Context) (*Metrics, error) {
	res, err := c.do(ctx, "metrics", http.MethodGet, pathMetrics, nil)
	if err != nil {
		return nil, err
	}

	var metrics Metrics
	if err := res.Decode(&metrics); err != nil {
		return nil, err
	}
	return &metrics, nil
}
