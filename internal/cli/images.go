package cli

import (
	"github.com/go-openapi/swag"
	"github.com/spf13/cobra"

	imggen "github.com/skbhati199/ai-img-gen-go"
)

func (a *app) generateCmd() *cobra.Command {
	var (
		req         imggen.GenerateImageRequest
		model       string
		format      string
		quality     int
		optimize    bool
		useDefaults bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an image from a text prompt",
		Long: `Generate an image from a text prompt and print its URL.

Only the optional flags given on the command line are sent; the service
applies its own defaults for the rest. Use --defaults to send the SDK
defaults (model dall-e-2, format png, quality 90, optimize true) explicitly.`,
		Example: `  imggen generate --prompt "A futuristic city with flying cars and neon lights"
  imggen generate -W 1024 -H 768 --prompt "A lake at dawn" --format webp --optimize`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("model") {
				req.Model = swag.String(model)
			}
			if flags.Changed("format") {
				req.Format = swag.String(format)
			}
			if flags.Changed("quality") {
				req.Quality = swag.Int(quality)
			}
			if flags.Changed("optimize") {
				req.Optimize = swag.Bool(optimize)
			}

			r := &req
			if useDefaults {
				r = req.WithDefaults()
			}

			a.logger.Info().
				Int("width", r.Width).
				Int("height", r.Height).
				Str("prompt", r.Prompt).
				Msg("Generating image")

			url, err := a.client.GenerateImage(cmd.Context(), r)
			if err != nil {
				return err
			}
			return a.out.printURL(url)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&req.Width, "width", "W", 512, "image width in pixels")
	f.IntVarP(&req.Height, "height", "H", 512, "image height in pixels")
	f.StringVarP(&req.Prompt, "prompt", "p", "", "text prompt describing the image")
	f.StringVar(&model, "model", imggen.DefaultModel, "generation model")
	f.StringVar(&format, "format", imggen.DefaultFormat, "output format")
	f.IntVar(&quality, "quality", imggen.DefaultQuality, "output quality (1-100)")
	f.BoolVar(&optimize, "optimize", imggen.DefaultOptimize, "optimize the result for the web")
	f.BoolVar(&useDefaults, "defaults", false, "send defaults for every optional parameter not given")
	_ = cmd.MarkFlagRequired("prompt")

	return cmd
}

func (a *app) resizeCmd() *cobra.Command {
	var req imggen.ResizeImageRequest

	cmd := &cobra.Command{
		Use:     "resize <image-id>",
		Short:   "Resize a generated image",
		Example: `  imggen resize a7ee365a-c024-4d2d-91db-598f2be8ef45 -W 256 -H 256`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := a.client.ResizeImage(cmd.Context(), args[0], &req)
			if err != nil {
				return err
			}
			return a.out.printURL(url)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&req.Width, "width", "W", 256, "target width in pixels")
	f.IntVarP(&req.Height, "height", "H", 256, "target height in pixels")
	f.StringVar(&req.Format, "format", imggen.DefaultFormat, "output format")
	f.IntVar(&req.Quality, "quality", imggen.DefaultQuality, "output quality (1-100)")

	return cmd
}

func (a *app) convertCmd() *cobra.Command {
	var req imggen.ConvertImageRequest

	cmd := &cobra.Command{
		Use:     "convert <image-id>",
		Short:   "Convert a generated image to another format",
		Example: `  imggen convert a7ee365a-c024-4d2d-91db-598f2be8ef45 --format jpeg --quality 85`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := a.client.ConvertImage(cmd.Context(), args[0], &req)
			if err != nil {
				return err
			}
			return a.out.printURL(url)
		},
	}

	cmd.Flags().StringVar(&req.Format, "format", "jpeg", "target format")
	cmd.Flags().IntVar(&req.Quality, "quality", 85, "output quality (1-100)")

	return cmd
}

func (a *app) optimizeCmd() *cobra.Command {
	var req imggen.OptimizeImageRequest

	cmd := &cobra.Command{
		Use:     "optimize <image-id>",
		Short:   "Optimize a generated image for web delivery",
		Example: `  imggen optimize a7ee365a-c024-4d2d-91db-598f2be8ef45 --format webp --quality 75`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := a.client.OptimizeImage(cmd.Context(), args[0], &req)
			if err != nil {
				return err
			}
			return a.out.printURL(url)
		},
	}

	cmd.Flags().StringVar(&req.Format, "format", "webp", "target format")
	cmd.Flags().IntVar(&req.Quality, "quality", 75, "output quality (1-100)")

	return cmd
}
