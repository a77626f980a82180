package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	imggen "github.com/skbhati199/ai-img-gen-go"
)

func (a *app) modelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the generation models the service accepts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			models, err := a.client.SupportedModels(cmd.Context())
			if err != nil {
				return err
			}
			return a.out.print(models, func(w io.Writer) error {
				return writeModels(w, models)
			})
		},
	}
}

func (a *app) sizesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sizes",
		Short: "List the image sizes the service accepts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sizes, err := a.client.SupportedSizes(cmd.Context())
			if err != nil {
				return err
			}
			return a.out.print(sizes, func(w io.Writer) error {
				return writeSizes(w, sizes)
			})
		},
	}
}

func (a *app) formatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the output formats the service accepts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formats, err := a.client.SupportedFormats(cmd.Context())
			if err != nil {
				return err
			}
			return a.out.print(formats, func(w io.Writer) error {
				return writeFormats(w, formats)
			})
		},
	}
}

// capabilities is the combined result of the three capability endpoints.
type capabilities struct {
	Models  []string                 `json:"models" yaml:"models"`
	Sizes   []imggen.SupportedSize   `json:"sizes" yaml:"sizes"`
	Formats []imggen.SupportedFormat `json:"formats" yaml:"formats"`
}

func (a *app) capabilitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "capabilities",
		Short: "List models, sizes and formats in one call",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var caps capabilities

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				var err error
				caps.Models, err = a.client.SupportedModels(ctx)
				return err
			})
			g.Go(func() error {
				var err error
				caps.Sizes, err = a.client.SupportedSizes(ctx)
				return err
			})
			g.Go(func() error {
				var err error
				caps.Formats, err = a.client.SupportedFormats(ctx)
				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}

			return a.out.print(caps, func(w io.Writer) error {
				fmt.Fprintln(w, "Models:")
				if err := writeModels(w, caps.Models); err != nil {
					return err
				}
				fmt.Fprintln(w, "\nSizes:")
				if err := writeSizes(w, caps.Sizes); err != nil {
					return err
				}
				fmt.Fprintln(w, "\nFormats:")
				return writeFormats(w, caps.Formats)
			})
		},
	}
}

func writeModels(w io.Writer, models []string) error {
	for _, m := range models {
		if _, err := fmt.Fprintln(w, m); err != nil {
			return err
		}
	}
	return nil
}

func writeSizes(w io.Writer, sizes []imggen.SupportedSize) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SIZE\tASPECT RATIO")
	for _, s := range sizes {
		fmt.Fprintf(tw, "%s\t%s\n", s, s.AspectRatio)
	}
	return tw.Flush()
}

func writeFormats(w io.Writer, formats []imggen.SupportedFormat) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tMIME TYPE\tEXTENSIONS")
	for _, f := range formats {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.ID, f.Name, f.MimeType, strings.Join(f.Extensions, ", "))
	}
	return tw.Flush()
}
