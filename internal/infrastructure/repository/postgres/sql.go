// Package postgres implements the domain repositories over lib/pq through
// sqlx. Simple statements go through the platform query builder; the
// aggregate and conditional-delete queries are written out in full next to
// the repository that owns them.
package postgres

import (
	"database/sql"
	"errors"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
