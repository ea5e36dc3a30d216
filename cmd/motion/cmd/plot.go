package cmd

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/image/vector"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/config"
)

func newPlotCmd() *cobra.Command {
	var (
		curveName string
		configDir string
		outPath   string
		width     int
		height    int
	)

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render an easing curve to a PNG",
		Long: `Plot renders the lookup table of an easing curve as a filled area
chart. Standard curves and presets from motion.yaml are available by
name.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOptional(configDir)
			if err != nil {
				return err
			}
			registry := config.NewRegistry()
			if err := registry.AddConfig(cfg); err != nil {
				return err
			}
			curve, ok := registry.Lookup(curveName)
			if !ok {
				return fmt.Errorf("unknown curve %q (available: %v)", curveName, registry.Names())
			}
			img := renderCurve(curve, width, height)
			return writePNG(outPath, img)
		},
	}

	cmd.Flags().StringVar(&curveName, "curve", "ease-in-out", "curve name to plot")
	cmd.Flags().StringVar(&configDir, "config", ".", "directory holding motion.yaml")
	cmd.Flags().StringVarP(&outPath, "out", "o", "curve.png", "output PNG path")
	cmd.Flags().IntVar(&width, "width", 512, "image width in pixels")
	cmd.Flags().IntVar(&height, "height", 512, "image height in pixels")
	return cmd
}

// renderCurve rasterizes the area under the curve, y up.
func renderCurve(curve animation.Curve, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	r := vector.NewRasterizer(width, height)
	r.MoveTo(0, float32(height))
	for px := 0; px <= width; px++ {
		x := float64(px) / float64(width)
		y := curve.Evaluate(x)
		r.LineTo(float32(px), float32(height)-float32(y*float64(height)))
	}
	r.LineTo(float32(width), float32(height))
	r.ClosePath()

	fill := color.RGBA{R: 0x4c, G: 0x7e, B: 0xff, A: 0xff}
	r.Draw(img, img.Bounds(), image.NewUniform(fill), image.Point{})
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
