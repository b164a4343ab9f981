package generator

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ridoystarlord/crafto/rules"
)

// migration filenames are second-granular; the counter keeps two
// generations in the same process from colliding within one second.
var (
	migrationMu       sync.Mutex
	lastMigrationName string
	migrationSeq      int
)

func migrationTimestamp(now time.Time) string {
	migrationMu.Lock()
	defer migrationMu.Unlock()

	name := now.Format("20060102150405")
	if name == lastMigrationName {
		migrationSeq++
		return fmt.Sprintf("%s%02d", name, migrationSeq)
	}
	lastMigrationName = name
	migrationSeq = 0
	return name
}

// MigrationGenerator emits the timestamped SQL migration. The prefix keeps
// migrations in lexical-chronological order.
type MigrationGenerator struct{}

func (MigrationGenerator) Name() string { return "migration" }

func (MigrationGenerator) Generate(ctx *Context) ([]Artifact, error) {
	s := ctx.Schema

	var lines []string
	for _, col := range s.FillableColumns() {
		lines = append(lines, "    "+rules.ColumnDef(col)+",")
	}

	softDeleteColumn := ""
	if ctx.Options.SoftDeletes {
		softDeleteColumn = ",\n    \"deleted_at\" timestamptz"
	}

	timestamp := migrationTimestamp(time.Now())
	extra := map[string]string{
		"timestamp":        timestamp,
		"columns":          strings.Join(lines, "\n"),
		"softDeleteColumn": softDeleteColumn,
	}

	path := ctx.Config.Join(ctx.Config.Paths.Migrations, timestamp+"_create_"+s.TableName()+"_table.sql")
	artifact, err := ctx.renderAndWrite("migration.stub", path, extra)
	if err != nil {
		return nil, err
	}
	return []Artifact{artifact}, nil
}
