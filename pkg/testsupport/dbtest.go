package testsupport

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

var dbCounter atomic.Int64

// NewBunSQLiteDB opens a private in-memory SQLite database wrapped in bun.
// Each call gets its own database so parallel tests do not share state.
func NewBunSQLiteDB() (*bun.DB, error) {
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared&_fk=1", dbCounter.Add(1))
	sqldb, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}

// CreateTables creates the schema for the supplied models.
func CreateTables(ctx context.Context, db *bun.DB, models ...any) error {
	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}
