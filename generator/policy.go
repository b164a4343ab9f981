package generator

import "fmt"

// PolicyGenerator emits the authorization gate type. Every gate defaults
// to allow so scaffolded features work before auth is wired in.
type PolicyGenerator struct{}

func (PolicyGenerator) Name() string { return "policy" }

func (PolicyGenerator) Generate(ctx *Context) ([]Artifact, error) {
	extra := map[string]string{
		"softDeleteGates": softDeleteGates(ctx),
	}
	path := ctx.Config.Join(ctx.Config.Paths.Policies, ctx.Schema.SnakeName()+"_policy.go")
	artifact, err := ctx.renderAndWrite("policy.stub", path, extra)
	if err != nil {
		return nil, err
	}
	return []Artifact{artifact}, nil
}

func softDeleteGates(ctx *Context) string {
	if !ctx.Options.SoftDeletes {
		return ""
	}
	model := ctx.Schema.ModelName
	variable := ctx.Schema.Variable()
	return fmt.Sprintf(`
func (p %[1]sPolicy) Restore(c *gin.Context, %[2]s *models.%[1]s) bool {
	return true
}

func (p %[1]sPolicy) ForceDelete(c *gin.Context, %[2]s *models.%[1]s) bool {
	return true
}
`, model, variable)
}
