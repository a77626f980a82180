package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	imggen "github.com/skbhati199/ai-img-gen-go"
)

type versionInfo struct {
	CLI             string `json:"cli" yaml:"cli"`
	SDK             string `json:"sdk" yaml:"sdk"`
	APIVersion      string `json:"api_version" yaml:"api_version"`
	APIVersionRange string `json:"api_version_range" yaml:"api_version_range"`
}

func (a *app) versionCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// No config or client is needed to print the version.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			format, _ = cmd.Flags().GetString("output")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			info := versionInfo{
				CLI:             a.version,
				SDK:             imggen.Version,
				APIVersion:      imggen.APIVersion,
				APIVersionRange: imggen.APIVersionRange,
			}
			p := newPrinter(format, cmd.OutOrStdout())
			return p.print(info, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "imggen %s (sdk %s, api %s, supports %s)\n",
					info.CLI, info.SDK, info.APIVersion, info.APIVersionRange)
				return err
			})
		},
	}

	return cmd
}
