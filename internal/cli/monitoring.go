package cli

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	imggen "github.com/skbhati199/ai-img-gen-go"
)

// errUnhealthy is returned by the health command when the service reports
// a status other than "ok", so scripts can rely on the exit code.
var errUnhealthy = errors.New("service is unhealthy")

func (a *app) healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the health of the service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			health, err := a.client.Health(cmd.Context())
			if err != nil {
				return err
			}

			if v := health.ServerVersion(); v != "" && !health.IsCompatible() {
				a.logger.Warn().
					Str("server_version", v).
					Str("supported", imggen.APIVersionRange).
					Msg("Server API version is outside the supported range")
			}

			if err := a.out.print(health, func(w io.Writer) error {
				return writeHealth(w, health)
			}); err != nil {
				return err
			}

			if !health.IsHealthy() {
				return errUnhealthy
			}
			return nil
		},
	}
}

func (a *app) metricsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Show service usage metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.client.Metrics(cmd.Context())
			if err != nil {
				return err
			}
			return a.out.print(m, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "Requests:              %d\nImages generated:      %d\nAverage response time: %.2fms\n",
					m.Requests, m.ImagesGenerated, m.AverageResponseTime)
				return err
			})
		},
	}
}

func writeHealth(w io.Writer, h *imggen.HealthStatus) error {
	if _, err := fmt.Fprintf(w, "Status: %s\n", h.Status); err != nil {
		return err
	}
	if v := h.ServerVersion(); v != "" {
		fmt.Fprintf(w, "Version: %s\n", v)
	}
	for _, section := range []struct {
		title string
		m     map[string]interface{}
	}{
		{"Failing", h.Error},
		{"Indicators", h.Details},
	} {
		if len(section.m) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s:\n", section.title)
		for _, name := range sortedKeys(section.m) {
			fmt.Fprintf(w, "  %s: %v\n", name, section.m[name])
		}
	}
	return nil
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
