package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "crafto",
	Short: "CRUD scaffolding generator for gin + gorm applications",
	Long: `crafto generates the full artifact set for a model: gorm model,
handlers, validation requests, policy, views or htmx components,
migration, factory, seeder, tests and route registrations.

Examples:

  crafto init
  crafto make Post --fields "title:string,body:text,published_at:datetime:nullable"
  crafto make Order --table orders --all
  crafto make --config scaffold.yaml
`,
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
}

// Register subcommands
func init() {
	rootCmd.AddCommand(makeCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(layoutCmd)
}
