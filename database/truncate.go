package database

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Matias-sh/mi-portafolio/metal/env"
	"github.com/lib/pq"
)

type Truncate struct {
	database *Connection
	env      *env.Environment
}

func NewTruncate(db *Connection, env *env.Environment) *Truncate {
	return &Truncate{
		database: db,
		env:      env,
	}
}

// Execute empties every known table, children first. It refuses to run
// against production.
func (t Truncate) Execute() error {
	if !t.env.App.AllowsTruncate() {
		panic("refusing to truncate the " + t.env.App.Type + " database")
	}

	tables := GetSchemaTables()
	db := t.database.Sql()

	var errs []error

	for i := len(tables) - 1; i >= 0; i-- {
		table := tables[i]

		if !isValidTable(table) {
			errs = append(errs, fmt.Errorf("table '%s' does not exist", table))
			continue
		}

		if !db.Migrator().HasTable(table) {
			slog.Info("[db:truncate] skipped missing table", "table", table)
			continue
		}

		exec := db.Exec(truncateStatement(table))
		if exec.Error != nil {
			if isUndefinedRelationError(exec.Error) {
				slog.Info("[db:truncate] skipped table", "table", table, "error", exec.Error)
				continue
			}

			errs = append(errs, fmt.Errorf("truncate table %s: %w", table, exec.Error))
			continue
		}

		slog.Info("[db:truncate] truncated table", "table", table)
	}

	if len(errs) > 0 {
		return fmt.Errorf("truncate completed with %d error(s): %w", len(errs), errors.Join(errs...))
	}

	return nil
}

func truncateStatement(table string) string {
	return fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE;", pq.QuoteIdentifier(table))
}

func isUndefinedRelationError(err error) bool {
	return sqlState(err) == "42P01"
}

func sqlState(err error) string {
	if err == nil {
		return ""
	}

	var stateErr interface{ SQLState() string }
	if errors.As(err, &stateErr) {
		return stateErr.SQLState()
	}

	message := err.Error()
	upper := strings.ToUpper(message)
	marker := "(SQLSTATE "

	if idx := strings.LastIndex(upper, marker); idx != -1 {
		start := idx + len(marker)
		if end := strings.Index(upper[start:], ")"); end != -1 {
			return message[start : start+end]
		}
	}

	return ""
}
