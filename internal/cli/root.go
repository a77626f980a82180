// Package cli implements the imggen command line tool.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	imggen "github.com/skbhati199/ai-img-gen-go"
	"github.com/skbhati199/ai-img-gen-go/internal/config"
)

// app carries the state shared by all commands once the root command's
// PersistentPreRunE has run.
type app struct {
	version string
	cfgFile string

	cfg    *config.Config
	logger zerolog.Logger
	client *imggen.Client
	out    *printer
}

// Execute runs the root command and exits with status 1 on error.
func Execute(version string) {
	if err := NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// NewRootCommand builds the imggen command tree.
func NewRootCommand(version string) *cobra.Command {
	a := &app{version: version}

	rootCmd := &cobra.Command{
		Use:   "imggen",
		Short: "Generate and process images with the AI Image Generator API",
		Long: `imggen is a CLI for the AI Image Generator API. It generates images from
text prompts, resizes, converts and optimizes them, and reports the models,
sizes and formats the service supports.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.initialize,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./imggen.yaml)")
	flags.String("base-url", config.DefaultBaseURL, "API base URL")
	flags.String("api-key", "", "API key sent as a bearer token")
	flags.Duration("timeout", 30*time.Second, "per-request timeout")
	flags.Int("retries", 1, "retries for image generation on 5xx responses")
	flags.StringP("output", "o", "text", "output format: text, json or yaml")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")
	flags.String("log-format", "console", "log format: console or json")

	// Add subcommands
	rootCmd.AddCommand(
		a.generateCmd(),
		a.resizeCmd(),
		a.convertCmd(),
		a.optimizeCmd(),
		a.modelsCmd(),
		a.sizesCmd(),
		a.formatsCmd(),
		a.capabilitiesCmd(),
		a.healthCmd(),
		a.metricsCmd(),
		a.versionCmd(),
	)

	return rootCmd
}

// initialize loads the configuration and creates the API client
func (a *app) initialize(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.cfgFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg

	a.logger = setupLogger(cfg.Logging, cmd.ErrOrStderr())
	a.out = newPrinter(cfg.Output, cmd.OutOrStdout())

	a.client = imggen.NewClient(cfg.API.BaseURL,
		imggen.WithAPIKey(cfg.API.APIKey),
		imggen.WithTimeout(cfg.API.Timeout),
		imggen.WithRetries(cfg.API.Retries),
		imggen.WithUserAgent("imggen-cli/"+a.version),
		imggen.WithLogger(a.logger),
	)

	a.logger.Debug().
		Str("base_url", a.client.BaseURL()).
		Bool("authenticated", cfg.API.APIKey != "").
		Msg("Client initialized")

	return nil
}
