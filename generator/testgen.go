package generator

import (
	"os"
	"strings"

	"github.com/ridoystarlord/crafto/rules"
	"github.com/ridoystarlord/crafto/schema"
)

// TestGenerator emits feature, API and unit test stubs for the model, in
// testify style when the target module declares testify, plain testing
// style otherwise.
type TestGenerator struct{}

func (TestGenerator) Name() string { return "test" }

func (g TestGenerator) Generate(ctx *Context) ([]Artifact, error) {
	s := ctx.Schema
	testify := usesTestify(ctx)
	suffix := "plain"
	if testify {
		suffix = "testify"
	}

	var artifacts []Artifact

	helperPath := ctx.Config.Join(ctx.Config.Paths.Tests, "testcase.go")
	helper, err := ctx.renderAndWrite("testcase.stub", helperPath, nil)
	if err != nil {
		return nil, err
	}
	artifacts = append(artifacts, helper)

	if ctx.Options.WantsWeb() {
		form := formLines(s, ctx)
		extra := map[string]string{
			"imports":    testImports(ctx, featureImports, testify, form),
			"storeForm":  form,
			"updateForm": form,
		}
		path := ctx.Config.Join(ctx.Config.Paths.Tests, s.SnakeName()+"_test.go")
		artifact, err := ctx.renderAndWrite("test.feature."+suffix+".stub", path, extra)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, artifact)
	}

	if ctx.Options.WantsAPI() {
		payload := payloadLines(s, ctx, "\t\t")
		extra := map[string]string{
			"imports":        testImports(ctx, apiImports, testify, payload),
			"storePayload":   payload,
			"updatePayload":  payload,
			"requiredFields": quotedList(s.RequiredColumns()),
		}
		path := ctx.Config.Join(ctx.Config.Paths.Tests, s.SnakeName()+"_api_test.go")
		artifact, err := ctx.renderAndWrite("test.api."+suffix+".stub", path, extra)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, artifact)
	}

	extra := map[string]string{
		"fillableList": quotedList(columnNames(s.FillableColumns())),
	}
	path := ctx.Config.Join(ctx.Config.Paths.Tests, s.SnakeName()+"_unit_test.go")
	artifact, err := ctx.renderAndWrite("test.unit."+suffix+".stub", path, extra)
	if err != nil {
		return nil, err
	}
	artifacts = append(artifacts, artifact)

	return artifacts, nil
}

// usesTestify inspects the target module's dependency list.
func usesTestify(ctx *Context) bool {
	data, err := os.ReadFile(ctx.Config.Join("go.mod"))
	if err != nil {
		return false
	}
	return strings.Contains(string(data), "github.com/stretchr/testify")
}

var featureImports = []string{"fmt", "net/http", "net/http/httptest", "net/url", "strings", "testing"}

var apiImports = []string{"bytes", "encoding/json", "fmt", "net/http", "net/http/httptest", "testing"}

func testImports(ctx *Context, std []string, testify bool, body string) string {
	pkgs := append([]string{}, std...)
	if strings.Contains(body, "strconv.") {
		pkgs = append(pkgs, "strconv")
	}
	if strings.Contains(body, "time.") {
		pkgs = append(pkgs, "time")
	}

	var lines []string
	for _, pkg := range pkgs {
		lines = append(lines, "\t\""+pkg+"\"")
	}
	lines = append(lines, "")
	if strings.Contains(body, "gofakeit.") {
		lines = append(lines, "\t\"github.com/brianvoe/gofakeit/v7\"")
	}
	if testify {
		lines = append(lines,
			"\t\"github.com/stretchr/testify/assert\"",
			"\t\"github.com/stretchr/testify/require\"")
	}
	lines = append(lines, "",
		"\t\""+ctx.Config.Module+"/internal/factories\"",
		"\t\""+ctx.Config.Module+"/internal/models\"")
	return strings.Join(lines, "\n")
}

// payloadLines renders the JSON request body entries from the shared
// sample derivation. Factory references are qualified for the tests
// package.
func payloadLines(s *schema.Schema, ctx *Context, indent string) string {
	var lines []string
	for _, col := range s.FillableColumns() {
		lines = append(lines, indent+`"`+col.Name+`": `+testSampleExpr(col)+",")
	}
	return strings.Join(lines, "\n")
}

// formLines renders url.Values assignments; every value must be a string.
func formLines(s *schema.Schema, ctx *Context) string {
	var lines []string
	for _, col := range s.FillableColumns() {
		lines = append(lines, "\tform.Set(\""+col.Name+"\", "+formValueExpr(col)+")")
	}
	return strings.Join(lines, "\n")
}

func testSampleExpr(col schema.Column) string {
	expr := rules.Sample(col)
	if col.ForeignKey {
		return "factories." + expr
	}
	switch col.Type {
	case schema.TypeDate:
		return `time.Now().Format("2006-01-02")`
	case schema.TypeDateTime, schema.TypeDateTimeTz:
		return `time.Now().Format("2006-01-02T15:04")`
	case schema.TypeTime:
		return `time.Now().Format("15:04:05")`
	case schema.TypeJSON:
		return `map[string]any{}`
	}
	return expr
}

func formValueExpr(col schema.Column) string {
	if col.ForeignKey {
		return "fmt.Sprint(factories." + rules.Sample(col) + ")"
	}
	switch col.Type {
	case schema.TypeBoolean:
		return `"true"`
	case schema.TypeInteger, schema.TypeBigInteger:
		return "strconv.Itoa(gofakeit.Number(1, 100))"
	case schema.TypeDecimal, schema.TypeFloat:
		return "fmt.Sprintf(\"%.2f\", gofakeit.Float64Range(1, 100))"
	case schema.TypeDate:
		return `time.Now().Format("2006-01-02")`
	case schema.TypeDateTime, schema.TypeDateTimeTz:
		return `time.Now().Format("2006-01-02T15:04")`
	case schema.TypeTime:
		return `time.Now().Format("15:04:05")`
	case schema.TypeJSON:
		return `"{}"`
	default:
		return rules.Sample(col)
	}
}

func quotedList(names []string) string {
	var quoted []string
	for _, name := range names {
		quoted = append(quoted, `"`+name+`"`)
	}
	return strings.Join(quoted, ", ")
}
