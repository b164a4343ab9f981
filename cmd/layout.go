package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ridoystarlord/crafto/config"
	"github.com/ridoystarlord/crafto/generator"
	"github.com/ridoystarlord/crafto/schema"
	"github.com/ridoystarlord/crafto/stubs"
)

var (
	layoutCSS     string
	layoutOutput  string
	layoutStubs   string
	layoutForce   bool
	layoutWelcome bool
	layoutModels  []string
)

func init() {
	layoutCmd.Flags().StringVar(&layoutCSS, "css", "", "CSS dialect: tailwind or bootstrap")
	layoutCmd.Flags().StringVarP(&layoutOutput, "output", "o", ".", "Target application root")
	layoutCmd.Flags().StringVar(&layoutStubs, "stubs", "", "Directory of custom stubs overriding the built-ins")
	layoutCmd.Flags().BoolVar(&layoutForce, "force", false, "Overwrite files that already exist")
	layoutCmd.Flags().BoolVar(&layoutWelcome, "welcome", false, "Also publish the welcome landing page")
	layoutCmd.Flags().StringSliceVar(&layoutModels, "add", nil, "Model to add to the navigation (repeatable; defaults to every scaffolded model)")
}

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Publish the application layout and navigation",
	Long: `Publish the application layout, fill its navigation, and optionally
publish a welcome landing page with quick links.

Without --add, navigation entries are built for every model already
scaffolded in the target application.

Examples:
  crafto layout
  crafto layout --css bootstrap --welcome
  crafto layout --add Post --add Comment --force
`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Default()
		cfg.OutputDir = layoutOutput
		cfg.StubDir = layoutStubs

		opts := config.Options{
			Profile:  config.ProfileWeb,
			CSS:      cfg.DefaultCSS,
			Force:    layoutForce,
			AddToNav: true,
		}
		if layoutCSS != "" {
			opts.CSS = config.CSS(layoutCSS)
			if !config.ValidCSS(opts.CSS) {
				fmt.Println("❌ Unknown css dialect:", layoutCSS)
				os.Exit(1)
			}
		}

		models := layoutModels
		if len(models) == 0 {
			models = scaffoldedModels(cfg)
		}

		color.Cyan("🎨 Publishing application layout...")

		renderer := stubs.NewRenderer(cfg.StubDir)
		written := 0

		report := func(artifacts []generator.Artifact) {
			for _, artifact := range artifacts {
				if artifact.Created {
					color.Green("  ✓ %s", artifact.Path)
					written++
				} else {
					color.Yellow("  ⚠ %s (exists, skipped)", artifact.Path)
				}
			}
		}

		run := func(gen generator.Generator, s *schema.Schema, o config.Options) {
			ctx := &generator.Context{
				Schema:   s,
				Options:  o,
				Config:   cfg,
				Renderer: renderer,
				Tracker:  &generator.Tracker{},
			}
			artifacts, err := gen.Generate(ctx)
			if err != nil {
				fmt.Println("❌", err)
				os.Exit(1)
			}
			report(artifacts)
		}

		if len(models) == 0 {
			bare := opts
			bare.AddToNav = false
			run(generator.LayoutGenerator{}, schema.New("App"), bare)
		}
		for _, model := range models {
			run(generator.LayoutGenerator{}, schema.New(model), opts)
		}
		if layoutWelcome {
			run(generator.WelcomeGenerator{Models: models}, schema.New("App"), opts)
		}

		if written == 0 {
			color.Yellow("⚠️  Nothing written, every artifact already exists (use --force to overwrite)")
			return
		}
		color.Green("✅ Published %d file(s)", written)
	},
}

// scaffoldedModels lists the models already generated into the target
// application, by their model filenames.
func scaffoldedModels(cfg config.Config) []string {
	entries, err := os.ReadDir(cfg.Join(cfg.Paths.Models))
	if err != nil {
		return nil
	}

	var models []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		models = append(models, schema.Pascal(strings.TrimSuffix(name, ".go")))
	}
	return models
}
