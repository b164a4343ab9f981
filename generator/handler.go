package generator

import (
	"fmt"
	"strings"

	"github.com/ridoystarlord/crafto/schema"
)

// HandlerGenerator emits the web and API request handlers the output
// profile asks for.
type HandlerGenerator struct{}

func (HandlerGenerator) Name() string { return "handler" }

func (HandlerGenerator) Generate(ctx *Context) ([]Artifact, error) {
	var artifacts []Artifact
	extra := map[string]string{
		"eagerLoads":    eagerLoads(ctx.Schema),
		"trashedFilter": trashedFilter(ctx.Options.SoftDeletes),
	}

	if ctx.Options.WantsWeb() {
		extra["relatedLoads"] = relatedLoads(ctx.Schema)
		extra["softDeleteActions"] = webSoftDeleteActions(ctx)
		path := ctx.Config.Join(ctx.Config.Paths.Handlers, ctx.Schema.SnakeName()+"_handler.go")
		artifact, err := ctx.renderAndWrite("handler.web.stub", path, extra)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, artifact)
	}

	if ctx.Options.WantsAPI() {
		extra["softDeleteActions"] = apiSoftDeleteActions(ctx)
		path := ctx.Config.Join(ctx.Config.Paths.APIHandlers, ctx.Schema.SnakeName()+"_handler.go")
		artifact, err := ctx.renderAndWrite("handler.api.stub", path, extra)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, artifact)
	}

	return artifacts, nil
}

// relatedLoads fetches every belongsTo target collection so the create and
// edit forms can populate their selects.
func relatedLoads(s *schema.Schema) string {
	var lines []string
	for _, rel := range s.Relationships {
		if rel.Kind != schema.BelongsTo {
			continue
		}
		collection := schema.Camel(schema.Plural(rel.RelatedModel))
		lines = append(lines,
			"\tvar "+collection+" []models."+rel.RelatedModel,
			"\th.DB.WithContext(c.Request.Context()).Find(&"+collection+")",
			"\tdata[\""+collection+"\"] = "+collection)
	}
	return strings.Join(lines, "\n")
}

// webSoftDeleteActions emits the restore and force-delete handlers. Both
// look up only soft-deleted records.
func webSoftDeleteActions(ctx *Context) string {
	if !ctx.Options.SoftDeletes {
		return ""
	}
	model := ctx.Schema.ModelName
	variable := ctx.Schema.Variable()
	route := ctx.Schema.RouteName()

	return fmt.Sprintf(`
func (h *%[1]sHandler) Restore(c *gin.Context) {
	%[2]s, ok := h.findTrashed(c)
	if !ok {
		return
	}
	if !(policies.%[1]sPolicy{}).Restore(c, %[2]s) {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	if err := h.DB.WithContext(c.Request.Context()).Unscoped().Model(%[2]s).Update("deleted_at", nil).Error; err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	c.Redirect(http.StatusFound, "/%[3]s")
}

func (h *%[1]sHandler) ForceDelete(c *gin.Context) {
	%[2]s, ok := h.findTrashed(c)
	if !ok {
		return
	}
	if !(policies.%[1]sPolicy{}).ForceDelete(c, %[2]s) {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	if err := h.DB.WithContext(c.Request.Context()).Unscoped().Delete(%[2]s).Error; err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	c.Redirect(http.StatusFound, "/%[3]s")
}

func (h *%[1]sHandler) findTrashed(c *gin.Context) (*models.%[1]s, bool) {
	var %[2]s models.%[1]s
	err := h.DB.WithContext(c.Request.Context()).Unscoped().
		Where("deleted_at IS NOT NULL").
		First(&%[2]s, "id = ?", c.Param("id")).Error
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return nil, false
	}
	return &%[2]s, true
}
`, model, variable, route)
}

func apiSoftDeleteActions(ctx *Context) string {
	if !ctx.Options.SoftDeletes {
		return ""
	}
	model := ctx.Schema.ModelName
	variable := ctx.Schema.Variable()

	return fmt.Sprintf(`
func (h *%[1]sHandler) Restore(c *gin.Context) {
	%[2]s, ok := h.findTrashed(c)
	if !ok {
		return
	}
	if !(policies.%[1]sPolicy{}).Restore(c, %[2]s) {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden"})
		return
	}

	if err := h.DB.WithContext(c.Request.Context()).Unscoped().Model(%[2]s).Update("deleted_at", nil).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resources.New%[1]sResource(%[2]s)})
}

func (h *%[1]sHandler) ForceDelete(c *gin.Context) {
	%[2]s, ok := h.findTrashed(c)
	if !ok {
		return
	}
	if !(policies.%[1]sPolicy{}).ForceDelete(c, %[2]s) {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden"})
		return
	}

	if err := h.DB.WithContext(c.Request.Context()).Unscoped().Delete(%[2]s).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func (h *%[1]sHandler) findTrashed(c *gin.Context) (*models.%[1]s, bool) {
	var %[2]s models.%[1]s
	err := h.DB.WithContext(c.Request.Context()).Unscoped().
		Where("deleted_at IS NOT NULL").
		First(&%[2]s, "id = ?", c.Param("id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
		return nil, false
	}
	return &%[2]s, true
}
`, model, variable)
}
