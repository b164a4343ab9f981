package runner

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/ridoystarlord/crafto/config"
	"github.com/ridoystarlord/crafto/generator"
	"github.com/ridoystarlord/crafto/loader"
	"github.com/ridoystarlord/crafto/stubs"
)

// State is the orchestrator's lifecycle position.
type State string

const (
	StateIdle        State = "idle"
	StateParsing     State = "parsing"
	StateGenerating  State = "generating"
	StateRollingBack State = "rollingBack"
	StateCompleted   State = "completed"
	StateFailed      State = "failed"
)

// GenerationError wraps a failure inside one artifact generator.
type GenerationError struct {
	Generator string
	Err       error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generator: %v", e.Generator, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Runner sequences the artifact generators for one model at a time and
// rolls back everything a failed model wrote.
type Runner struct {
	cfg      config.Config
	renderer *stubs.Renderer
	state    State
}

func New(cfg config.Config) *Runner {
	return &Runner{
		cfg:      cfg,
		renderer: stubs.NewRenderer(cfg.StubDir),
		state:    StateIdle,
	}
}

func (r *Runner) State() State { return r.state }

// Run generates all artifacts for one model. It returns the number of
// files actually written. On failure every file and directory this run
// created is removed before the error is returned.
func (r *Runner) Run(spec loader.ModelSpec) (int, error) {
	r.state = StateParsing

	ctx := &generator.Context{
		Schema:   spec.Schema,
		Options:  spec.Options,
		Config:   r.cfg,
		Renderer: r.renderer,
		Tracker:  &generator.Tracker{},
	}

	color.Cyan("🔨 Generating %s...", spec.Schema.ModelName)

	r.state = StateGenerating
	written := 0
	for _, gen := range sequence(spec.Options) {
		artifacts, err := gen.Generate(ctx)
		if err != nil {
			r.state = StateRollingBack
			r.rollback(ctx.Tracker)
			r.state = StateFailed
			return 0, &GenerationError{Generator: gen.Name(), Err: err}
		}
		for _, artifact := range artifacts {
			if artifact.Created {
				color.Green("  ✓ %s", artifact.Path)
				written++
			} else {
				color.Yellow("  ⚠ %s (exists, skipped)", artifact.Path)
			}
		}
	}

	r.state = StateCompleted
	return written, nil
}

// RunBatch processes models strictly in order. The transactional unit is
// one model: a failure rolls back that model only and aborts the rest of
// the batch without undoing earlier, already-committed models.
func (r *Runner) RunBatch(specs []loader.ModelSpec) (int, error) {
	total := 0
	for _, spec := range specs {
		written, err := r.Run(spec)
		if err != nil {
			return total, err
		}
		total += written
	}
	return total, nil
}

// sequence is the fixed dependency-respecting generator order for one run.
func sequence(opts config.Options) []generator.Generator {
	gens := []generator.Generator{generator.ModelGenerator{}}

	if opts.Profile != config.ProfileComponent {
		gens = append(gens, generator.HandlerGenerator{})
	}
	if !opts.NoRequests {
		gens = append(gens, generator.RequestGenerator{})
	}
	if !opts.NoPolicy {
		gens = append(gens, generator.PolicyGenerator{})
	}

	if opts.Profile == config.ProfileComponent {
		gens = append(gens, generator.ComponentGenerator{})
	} else if opts.WantsWeb() {
		gens = append(gens, generator.ViewGenerator{})
	}

	if opts.WantsResource() {
		gens = append(gens, generator.ResourceGenerator{})
	}
	if opts.All {
		gens = append(gens, generator.MigrationGenerator{}, generator.FactoryGenerator{}, generator.SeederGenerator{})
	} else if opts.Tests {
		// generated tests build records through the factory
		gens = append(gens, generator.FactoryGenerator{})
	}
	if opts.All || opts.Tests {
		gens = append(gens, generator.TestGenerator{})
	}

	gens = append(gens, generator.RouteGenerator{})

	if opts.WantsWeb() || opts.Profile == config.ProfileComponent {
		gens = append(gens, generator.LayoutGenerator{})
	}

	return gens
}

// rollback removes the run's files, then its directories innermost first.
// Directories holding files this run did not create are left intact.
func (r *Runner) rollback(tracker *generator.Tracker) {
	removed := 0
	for i := len(tracker.Files) - 1; i >= 0; i-- {
		if err := os.Remove(tracker.Files[i]); err == nil {
			removed++
		}
	}
	for i := len(tracker.Dirs) - 1; i >= 0; i-- {
		// Remove only succeeds on empty directories.
		_ = os.Remove(tracker.Dirs[i])
	}
	color.Yellow("↩️  Rolled back %d generated file(s)", removed)
}
