package cli

import (
	"math"
	"time"

	"github.com/spf13/cobra"

	ascii "github.com/No8Dev/No8.Ascii-sub002"
	"github.com/No8Dev/No8.Ascii-sub002/internal/debug"
	"github.com/No8Dev/No8.Ascii-sub002/internal/errors"
	"github.com/No8Dev/No8.Ascii-sub002/internal/scene"
)

// sceneFlags override the container and grid of a scene.
type sceneFlags struct {
	width  float64
	height float64
	scale  float64
}

func (f *sceneFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.width, "width", 0, "container width in cells (default from scene)")
	cmd.Flags().Float64Var(&f.height, "height", 0, "container height in cells (default from scene)")
	cmd.Flags().Float64Var(&f.scale, "scale", 1, "grid cells per layout unit, 0 disables rounding (default from scene)")
}

// apply copies the flags the user set onto s.
func (f *sceneFlags) apply(cmd *cobra.Command, s *scene.Scene) error {
	flags := cmd.Flags()
	if flags.Changed("width") {
		if !nonNegative(f.width) {
			return errors.New(errors.ErrCodeInvalidInput, "--width must be a finite number not below zero, got %v", f.width)
		}
		s.Width = f.width
	}
	if flags.Changed("height") {
		if !nonNegative(f.height) {
			return errors.New(errors.ErrCodeInvalidInput, "--height must be a finite number not below zero, got %v", f.height)
		}
		s.Height = f.height
	}
	if flags.Changed("scale") {
		if !nonNegative(f.scale) {
			return errors.New(errors.ErrCodeInvalidInput, "--scale must be a finite number not below zero, got %v", f.scale)
		}
		s.Scale = f.scale
	}
	return nil
}

func nonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// loadScenes reads every scene, lets adjust change it, and arranges them
// all concurrently. Engine visits are traced to ASCII_DEBUG when set.
func (f *sceneFlags) loadScenes(cmd *cobra.Command, paths []string, adjust func(*scene.Scene)) ([]*scene.Scene, error) {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	trace, closeTrace, err := debug.New()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", debug.EnvVar)
	}
	defer closeTrace()

	scenes := make([]*scene.Scene, 0, len(paths))
	engines := map[float64]*ascii.Engine{}
	var jobs []ascii.Job
	for _, path := range paths {
		s, err := scene.Load(path)
		if err != nil {
			return nil, err
		}
		if err := f.apply(cmd, s); err != nil {
			return nil, err
		}
		if adjust != nil {
			adjust(s)
		}
		scenes = append(scenes, s)
		if engines[s.Scale] == nil {
			engines[s.Scale] = s.Engine(ascii.WithLogger(trace))
		}
		logger.Debug("loaded scene", "path", path, "width", s.Width, "height", s.Height, "scale", s.Scale)
	}

	start := time.Now()
	for scale, e := range engines {
		jobs = jobs[:0]
		for _, s := range scenes {
			if s.Scale == scale {
				jobs = append(jobs, ascii.Job{Root: s.Root, Width: s.Width, Height: s.Height})
			}
		}
		if err := ascii.ArrangeAll(ctx, e, jobs...); err != nil {
			return nil, err
		}
	}
	logger.Debug("arranged", "scenes", len(scenes), "elapsed", time.Since(start).Round(time.Microsecond))
	return scenes, nil
}
