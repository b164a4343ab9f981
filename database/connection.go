package database

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ridoystarlord/crafto/utils"
)

var (
	pool     *pgxpool.Pool
	poolOnce sync.Once
	poolErr  error
)

// GetPool returns a singleton connection pool for the application. It is
// only dialed when table introspection is requested.
func GetPool(ctx context.Context) (*pgxpool.Pool, error) {
	poolOnce.Do(func() {
		utils.LoadEnv()
		connStr, err := utils.GetDatabaseURL()
		if err != nil {
			poolErr = err
			return
		}

		pool, poolErr = pgxpool.New(ctx, connStr)
		if poolErr != nil {
			poolErr = fmt.Errorf("unable to create connection pool: %v", poolErr)
			return
		}

		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			pool = nil
			poolErr = fmt.Errorf("unable to ping database: %v", err)
			return
		}
	})

	return pool, poolErr
}

// ClosePool closes the connection pool (should be called on application shutdown)
func ClosePool() {
	if pool != nil {
		pool.Close()
	}
}
