package introspect

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ridoystarlord/crafto/database"
)

// PostgresCatalog reads column metadata from information_schema.
type PostgresCatalog struct {
	pool *pgxpool.Pool
}

func NewPostgresCatalog(ctx context.Context) (*PostgresCatalog, error) {
	pool, err := database.GetPool(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to get connection pool: %v", err)
	}
	return &PostgresCatalog{pool: pool}, nil
}

func (c *PostgresCatalog) HasTable(ctx context.Context, table string) (bool, error) {
	query := `
	SELECT EXISTS (
		SELECT 1 FROM information_schema.tables
		WHERE table_schema = 'public' AND table_type = 'BASE TABLE' AND table_name = $1
	);
	`

	var exists bool
	if err := c.pool.QueryRow(ctx, query, table).Scan(&exists); err != nil {
		return false, fmt.Errorf("querying tables: %v", err)
	}
	return exists, nil
}

func (c *PostgresCatalog) Columns(ctx context.Context, table string) ([]ColumnInfo, error) {
	query := `
	SELECT
		c.column_name,
		c.data_type,
		(c.is_nullable = 'YES') as is_nullable,
		c.column_default,
		COALESCE(c.character_maximum_length, 0) as max_length
	FROM information_schema.columns c
	WHERE c.table_schema = 'public' AND c.table_name = $1
	ORDER BY c.ordinal_position;
	`

	rows, err := c.pool.Query(ctx, query, table)
	if err != nil {
		return nil, fmt.Errorf("querying columns: %v", err)
	}
	defer rows.Close()

	var columns []ColumnInfo
	for rows.Next() {
		var info ColumnInfo
		if err := rows.Scan(
			&info.Name,
			&info.DataType,
			&info.Nullable,
			&info.Default,
			&info.Length,
		); err != nil {
			return nil, fmt.Errorf("scanning column: %v", err)
		}
		if info.Default != nil && strings.HasPrefix(*info.Default, "nextval(") {
			info.AutoIncrement = true
			info.Default = nil
		}
		columns = append(columns, info)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("iterating column rows: %v", rows.Err())
	}

	return columns, nil
}
