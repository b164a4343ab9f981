package generator

import "strconv"

// SeederGenerator emits the stub that runs the factory a configurable
// number of times.
type SeederGenerator struct{}

func (SeederGenerator) Name() string { return "seeder" }

func (SeederGenerator) Generate(ctx *Context) ([]Artifact, error) {
	count := ctx.Options.SeedCount
	if count <= 0 {
		count = ctx.Config.SeedCount
	}
	if count <= 0 {
		count = 10
	}

	extra := map[string]string{
		"count": strconv.Itoa(count),
	}
	path := ctx.Config.Join(ctx.Config.Paths.Seeders, ctx.Schema.SnakeName()+"_seeder.go")
	artifact, err := ctx.renderAndWrite("seeder.stub", path, extra)
	if err != nil {
		return nil, err
	}
	return []Artifact{artifact}, nil
}
