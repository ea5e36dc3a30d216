package config

import (
	"sort"

	"github.com/go-drift/motion/pkg/animation"
	merrors "github.com/go-drift/motion/pkg/errors"
)

// Registry resolves curve names to curves. A fresh registry knows the
// four standard CSS timing functions; presets from a Config are added
// on top and may shadow them.
type Registry struct {
	curves map[string]animation.Curve
}

// NewRegistry creates a registry holding the standard curves:
// linear, ease-in, ease-out and ease-in-out.
func NewRegistry() *Registry {
	return &Registry{
		curves: map[string]animation.Curve{
			"linear":      animation.Linear,
			"ease-in":     animation.EaseIn,
			"ease-out":    animation.EaseOut,
			"ease-in-out": animation.EaseInOut,
		},
	}
}

// Register adds or replaces a named curve.
func (r *Registry) Register(name string, c animation.Curve) {
	r.curves[name] = c
}

// Lookup returns the curve registered under name.
func (r *Registry) Lookup(name string) (animation.Curve, bool) {
	c, ok := r.curves[name]
	return c, ok
}

// Names returns all registered curve names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.curves))
	for name := range r.curves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AddConfig builds every preset from cfg and registers it. A preset
// name must be non-empty; curve construction errors propagate.
func (r *Registry) AddConfig(cfg *Config) error {
	for name, def := range cfg.Curves {
		if name == "" {
			return merrors.New("config.Registry.AddConfig", merrors.KindConfig,
				"preset curve with empty name")
		}
		curve, err := animation.CubicBezier(def.X1, def.Y1, def.X2, def.Y2)
		if err != nil {
			return err
		}
		r.curves[name] = curve
	}
	return nil
}
