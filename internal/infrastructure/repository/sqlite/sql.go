// Package sqlite implements the domain repositories over modernc.org/sqlite
// through sqlx. Statements are written with ? placeholders; timestamps are
// stamped in Go because SQLite's CURRENT_TIMESTAMP only resolves to whole
// seconds, which would make undo tie-breaking depend on insertion ids far
// more often than it has to.
package sqlite

import (
	"database/sql"
	"errors"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
