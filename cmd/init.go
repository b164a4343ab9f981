package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample scaffold.yaml config file",
	Long: `Create a sample scaffold.yaml describing models to generate.

The file can describe a single model or a batch. Batch-level options
apply to every model; per-model options override them field by field.

Examples:
  crafto init
  crafto make --config scaffold.yaml
`,
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := os.Stat("scaffold.yaml"); err == nil {
			fmt.Println("❌ scaffold.yaml already exists!")
			return
		}

		content := `# Scaffold definition. Run: crafto make --config scaffold.yaml
#
# Batch-level options apply to every model below; a model's own options
# override them field by field.
options:
  type: both          # api | web | both | component
  css: tailwind       # tailwind | bootstrap
  all: true           # also generate migration, factory, seeder, tests

models:
  - name: Post
    fields:
      - name: title
        type: string
        length: 120
      - name: slug
        type: string
        unique: true
      - name: body
        type: text
      - name: published_at
        type: datetime
        nullable: true
      - name: user_id
        type: foreignId
    relationships:
      - type: hasMany
        model: Comment
    options:
      soft_deletes: true
      add_to_nav: true

  - name: Comment
    fields:
      - name: body
        type: text
      - name: post_id
        type: foreignId
    options:
      type: api

# Field entry keys: name, type, nullable, unique, length, default
# Relationship entry keys: type, model, method, foreignKey, nullable, pivot
# Relationship types: belongsTo, hasMany, hasOne, belongsToMany, morphMany, morphTo
`
		if err := os.WriteFile("scaffold.yaml", []byte(content), 0644); err != nil {
			fmt.Println("❌ Error creating scaffold.yaml:", err)
			return
		}
		fmt.Println("✅ Created scaffold.yaml example file.")
		fmt.Println("📝 Edit scaffold.yaml to describe your models")
		fmt.Println("🚀 Run 'crafto make --config scaffold.yaml' to generate")
	},
}
