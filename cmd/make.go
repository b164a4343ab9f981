package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ridoystarlord/crafto/config"
	"github.com/ridoystarlord/crafto/database"
	"github.com/ridoystarlord/crafto/introspect"
	"github.com/ridoystarlord/crafto/loader"
	"github.com/ridoystarlord/crafto/runner"
	"github.com/ridoystarlord/crafto/utils"
)

var (
	makeFields        string
	makeProfile       string
	makeCSS           string
	makeConfigFile    string
	makeTable         string
	makeOutput        string
	makeModule        string
	makeStubs         string
	makeBelongsTo     []string
	makeHasMany       []string
	makeBelongsToMany []string
	makeAll           bool
	makeForce         bool
	makeSoftDeletes   bool
	makeAPIResource   bool
	makeNoPolicy      bool
	makeNoRequests    bool
	makeTests         bool
	makeAddToNav      bool
	makeSeedCount     int
)

func init() {
	makeCmd.Flags().StringVarP(&makeFields, "fields", "f", "", "Field definitions, e.g. \"title:string,body:text:nullable\"")
	makeCmd.Flags().StringVarP(&makeProfile, "type", "t", "", "Output profile: api, web, both or component")
	makeCmd.Flags().StringVar(&makeCSS, "css", "", "CSS dialect for generated views: tailwind or bootstrap")
	makeCmd.Flags().StringVarP(&makeConfigFile, "config", "c", "", "Scaffold config file describing one model or a batch")
	makeCmd.Flags().StringVar(&makeTable, "table", "", "Build the schema by introspecting this database table")
	makeCmd.Flags().StringVarP(&makeOutput, "output", "o", ".", "Target application root")
	makeCmd.Flags().StringVarP(&makeModule, "module", "m", "", "Target application module path (defaults to the output go.mod)")
	makeCmd.Flags().StringVar(&makeStubs, "stubs", "", "Directory of custom stubs overriding the built-ins")
	makeCmd.Flags().StringSliceVar(&makeBelongsTo, "belongs-to", nil, "Related model this model belongs to (repeatable)")
	makeCmd.Flags().StringSliceVar(&makeHasMany, "has-many", nil, "Related model this model has many of (repeatable)")
	makeCmd.Flags().StringSliceVar(&makeBelongsToMany, "belongs-to-many", nil, "Related model joined through a pivot (repeatable)")
	makeCmd.Flags().BoolVarP(&makeAll, "all", "a", false, "Also generate migration, factory, seeder and tests")
	makeCmd.Flags().BoolVar(&makeForce, "force", false, "Overwrite files that already exist")
	makeCmd.Flags().BoolVar(&makeSoftDeletes, "soft-deletes", false, "Generate soft-delete support (restore/force-delete)")
	makeCmd.Flags().BoolVar(&makeAPIResource, "api-resource", false, "Generate the JSON resource even for web profiles")
	makeCmd.Flags().BoolVar(&makeNoPolicy, "no-policy", false, "Skip the policy artifact")
	makeCmd.Flags().BoolVar(&makeNoRequests, "no-requests", false, "Skip the validation request artifacts")
	makeCmd.Flags().BoolVar(&makeTests, "tests", false, "Generate test stubs")
	makeCmd.Flags().BoolVar(&makeAddToNav, "add-to-nav", false, "Add a navigation link to the layout")
	makeCmd.Flags().IntVar(&makeSeedCount, "seed-count", 0, "Records the seeder creates (default 10)")
}

var makeCmd = &cobra.Command{
	Use:   "make [model]",
	Short: "Generate the CRUD artifact set for a model",
	Long: `Generate the CRUD artifact set for a model.

The schema comes from exactly one source: an inline field string, a live
database table, or a scaffold config file (which may describe a whole
batch of models).

Examples:
  crafto make Post -f "title:string,body:text,user_id:foreignId"
  crafto make Post -f "title:string" --type api --all
  crafto make Order --table orders --soft-deletes --add-to-nav
  crafto make --config scaffold.yaml
`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		utils.LoadEnv()

		cfg := config.Default()
		cfg.OutputDir = makeOutput
		cfg.StubDir = makeStubs
		if makeModule != "" {
			cfg.Module = makeModule
		} else if module := modulePath(cfg.Join("go.mod")); module != "" {
			cfg.Module = module
		}

		opts := config.Options{
			Profile:     cfg.DefaultProfile,
			CSS:         cfg.DefaultCSS,
			Force:       makeForce,
			SoftDeletes: makeSoftDeletes,
			All:         makeAll,
			APIResource: makeAPIResource,
			NoPolicy:    makeNoPolicy,
			NoRequests:  makeNoRequests,
			Tests:       makeTests,
			AddToNav:    makeAddToNav,
			Table:       makeTable,
			SeedCount:   makeSeedCount,
		}
		if makeProfile != "" {
			opts.Profile = config.Profile(makeProfile)
			if !config.ValidProfile(opts.Profile) {
				fmt.Println("❌ Unknown output profile:", makeProfile)
				os.Exit(1)
			}
		}
		if makeCSS != "" {
			opts.CSS = config.CSS(makeCSS)
			if !config.ValidCSS(opts.CSS) {
				fmt.Println("❌ Unknown css dialect:", makeCSS)
				os.Exit(1)
			}
		}

		input := loader.Input{
			FieldSpec:     makeFields,
			ConfigPath:    makeConfigFile,
			Options:       opts,
			BelongsTo:     makeBelongsTo,
			HasMany:       makeHasMany,
			BelongsToMany: makeBelongsToMany,
		}
		if len(args) > 0 {
			input.ModelName = args[0]
		}
		if input.ModelName == "" && input.ConfigPath == "" {
			fmt.Println("❌ A model name or a --config file is required")
			os.Exit(1)
		}

		ctx := context.Background()

		var catalog introspect.Catalog
		if makeTable != "" {
			pgCatalog, err := introspect.NewPostgresCatalog(ctx)
			if err != nil {
				fmt.Println("❌ Connecting to database:", err)
				os.Exit(1)
			}
			defer database.ClosePool()
			catalog = pgCatalog
		}

		specs, err := loader.Resolve(ctx, input, catalog)
		if err != nil {
			fmt.Println("❌", err)
			os.Exit(1)
		}

		written, err := runner.New(cfg).RunBatch(specs)
		if err != nil {
			fmt.Println("❌", err)
			os.Exit(1)
		}

		if written == 0 {
			color.Yellow("⚠️  Nothing written, every artifact already exists (use --force to overwrite)")
			return
		}
		color.Green("✅ Generated %d file(s)", written)
	},
}
