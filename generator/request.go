package generator

import (
	"fmt"
	"strings"

	"github.com/ridoystarlord/crafto/rules"
	"github.com/ridoystarlord/crafto/schema"
)

// RequestGenerator emits the store and update validation request types.
// The update variant makes every field optional and excludes the current
// record from uniqueness checks.
type RequestGenerator struct{}

func (RequestGenerator) Name() string { return "request" }

func (g RequestGenerator) Generate(ctx *Context) ([]Artifact, error) {
	store, err := g.generateVariant(ctx, false)
	if err != nil {
		return nil, err
	}
	update, err := g.generateVariant(ctx, true)
	if err != nil {
		return nil, err
	}
	return []Artifact{store, update}, nil
}

func (RequestGenerator) generateVariant(ctx *Context, update bool) (Artifact, error) {
	s := ctx.Schema
	cols := s.FillableColumns()

	action, prefix := "store", "Store"
	if update {
		action, prefix = "update", "Update"
	}
	requestName := prefix + s.ModelName + "Request"

	var fields []string
	for _, col := range cols {
		var ruleSet []rules.Rule
		if update {
			ruleSet = rules.UpdateRules(col, s.TableName())
		} else {
			ruleSet = rules.StoreRules(col, s.TableName())
		}
		fields = append(fields, "\t"+fieldName(col.Name)+" "+requestFieldType(col, update)+
			" `"+fieldTags(col, ruleSet)+"`")
	}

	validateParams := ""
	if update {
		validateParams = ", id uint"
	}

	checks := databaseChecks(ctx, cols, update)

	var mapper string
	if update {
		mapper = applyMapper(s, cols)
	} else {
		mapper = storeMapper(s, cols)
	}

	extra := map[string]string{
		"requestName":    requestName,
		"action":         action,
		"imports":        requestImports(ctx, cols, checks),
		"fields":         strings.Join(fields, "\n"),
		"validateParams": validateParams,
		"databaseChecks": checks,
		"mapper":         mapper,
	}

	path := ctx.Config.Join(ctx.Config.Paths.Requests, action+"_"+s.SnakeName()+"_request.go")
	return ctx.renderAndWrite("request.stub", path, extra)
}

// requestFieldType is the Go type of a request struct field. Update
// requests make every scalar a pointer so absent fields can be skipped.
func requestFieldType(col schema.Column, update bool) string {
	t := rules.GoType(col)
	if update && !strings.HasPrefix(t, "*") && pointerableType(col.Type) {
		return "*" + t
	}
	return t
}

func pointerableType(t schema.SemanticType) bool {
	return t != schema.TypeJSON && t != schema.TypeBinary
}

func fieldTags(col schema.Column, ruleSet []rules.Rule) string {
	tags := `form:"` + col.Name + `" json:"` + col.Name + `"`
	if binding := rules.BindingTag(ruleSet); binding != "" {
		tags += ` binding:"` + binding + `"`
	}
	switch col.Type {
	case schema.TypeDate:
		tags += ` time_format:"2006-01-02"`
	case schema.TypeDateTime, schema.TypeDateTimeTz:
		tags += ` time_format:"2006-01-02T15:04"`
	case schema.TypeTime:
		tags += ` time_format:"15:04:05"`
	}
	return tags
}

// databaseChecks renders the uniqueness and referential-existence queries
// that binding tags cannot express.
func databaseChecks(ctx *Context, cols []schema.Column, update bool) string {
	s := ctx.Schema
	var blocks []string

	for _, col := range cols {
		var ruleSet []rules.Rule
		if update {
			ruleSet = rules.UpdateRules(col, s.TableName())
		} else {
			ruleSet = rules.StoreRules(col, s.TableName())
		}

		field := fieldName(col.Name)
		pointer := strings.HasPrefix(requestFieldType(col, update), "*")
		value := "r." + field
		if pointer {
			value = "*r." + field
		}

		for _, rule := range rules.DatabaseRules(ruleSet) {
			var body string
			switch rule.Name {
			case "unique":
				excludeSelf := strings.HasSuffix(rule.Param, ",self")
				body = fmt.Sprintf("\t\tq := db.WithContext(ctx).Model(&models.%s{}).Where(\"%s = ?\", %s)\n",
					s.ModelName, col.Name, value)
				if excludeSelf {
					body += "\t\tq = q.Where(\"id <> ?\", id)\n"
				}
				body += "\t\tvar count int64\n" +
					"\t\tif err := q.Count(&count).Error; err != nil {\n\t\t\treturn err\n\t\t}\n" +
					fmt.Sprintf("\t\tif count > 0 {\n\t\t\treturn fmt.Errorf(\"%s is already taken\")\n\t\t}\n", col.Name)
			case "exists":
				table := strings.SplitN(rule.Param, ",", 2)[0]
				body = fmt.Sprintf("\t\tvar count int64\n"+
					"\t\tif err := db.WithContext(ctx).Table(\"%s\").Where(\"id = ?\", %s).Count(&count).Error; err != nil {\n\t\t\treturn err\n\t\t}\n",
					table, value) +
					fmt.Sprintf("\t\tif count == 0 {\n\t\t\treturn fmt.Errorf(\"%s references a missing record\")\n\t\t}\n", col.Name)
			default:
				continue
			}

			if pointer {
				blocks = append(blocks, "\tif r."+field+" != nil {\n"+body+"\t}")
			} else {
				blocks = append(blocks, "\t{\n"+body+"\t}")
			}
		}
	}

	return strings.Join(blocks, "\n")
}

func storeMapper(s *schema.Schema, cols []schema.Column) string {
	var lines []string
	for _, col := range cols {
		lines = append(lines, "\t\t"+fieldName(col.Name)+": r."+fieldName(col.Name)+",")
	}
	return fmt.Sprintf(`
// To%[1]s builds a new record from the validated input.
func (r *Store%[1]sRequest) To%[1]s() models.%[1]s {
	return models.%[1]s{
%[2]s
	}
}
`, s.ModelName, strings.Join(lines, "\n"))
}

// applyMapper copies only the provided fields onto an existing record.
func applyMapper(s *schema.Schema, cols []schema.Column) string {
	variable := s.Variable()
	var lines []string
	for _, col := range cols {
		field := fieldName(col.Name)
		if !pointerableType(col.Type) {
			lines = append(lines, fmt.Sprintf("\tif r.%[1]s != nil {\n\t\t%[2]s.%[1]s = r.%[1]s\n\t}", field, variable))
			continue
		}
		if col.Nullable {
			// both sides are pointers
			lines = append(lines, fmt.Sprintf("\tif r.%[1]s != nil {\n\t\t%[2]s.%[1]s = r.%[1]s\n\t}", field, variable))
		} else {
			lines = append(lines, fmt.Sprintf("\tif r.%[1]s != nil {\n\t\t%[2]s.%[1]s = *r.%[1]s\n\t}", field, variable))
		}
	}
	return fmt.Sprintf(`
// Apply copies the provided fields onto %[2]s.
func (r *Update%[1]sRequest) Apply(%[2]s *models.%[1]s) {
%[3]s
}
`, s.ModelName, variable, strings.Join(lines, "\n"))
}

func requestImports(ctx *Context, cols []schema.Column, checks string) string {
	lines := []string{"\t\"context\""}
	if strings.Contains(checks, "fmt.Errorf") {
		lines = append(lines, "\t\"fmt\"")
	}
	if rules.NeedsTimeImport(cols) {
		lines = append(lines, "\t\"time\"")
	}
	lines = append(lines, "", "\t\"gorm.io/gorm\"")
	if rules.NeedsDatatypesImport(cols) {
		lines = append(lines, "\t\"gorm.io/datatypes\"")
	}
	lines = append(lines, "", "\t\""+ctx.Config.Module+"/internal/models\"")
	return strings.Join(lines, "\n")
}
