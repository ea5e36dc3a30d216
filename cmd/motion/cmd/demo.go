package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-drift/motion/cmd/motion/internal/demo"
	"github.com/go-drift/motion/pkg/config"
)

func newDemoCmd() *cobra.Command {
	var (
		curveName string
		configDir string
		duration  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the terminal fade demo",
		Long: `Demo fades a banner in and out in the terminal, driven by the
animation scheduler. Space toggles the fade, v simulates hiding the
document, q quits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOptional(configDir)
			if err != nil {
				return err
			}
			registry := config.NewRegistry()
			if err := registry.AddConfig(cfg); err != nil {
				return err
			}

			name := curveName
			if name == "" {
				name = cfg.Defaults.Curve
			}
			if name == "" {
				name = "ease-in-out"
			}
			curve, ok := registry.Lookup(name)
			if !ok {
				return fmt.Errorf("unknown curve %q (available: %v)", name, registry.Names())
			}

			d := duration
			if d == 0 {
				if d, err = cfg.DefaultDuration(); err != nil {
					return err
				}
			}

			return demo.Run(demo.Options{
				Curve:     curve,
				CurveName: name,
				Duration:  d,
				FrameRate: cfg.FrameRate(),
			})
		},
	}

	cmd.Flags().StringVar(&curveName, "curve", "", "easing curve for the fades")
	cmd.Flags().StringVar(&configDir, "config", ".", "directory holding motion.yaml")
	cmd.Flags().DurationVar(&duration, "duration", 0, "fade duration, e.g. 500ms")
	return cmd
}
