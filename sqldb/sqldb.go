// Package sqldb implements the user and article stores on database/sql.
package sqldb

import (
	"database/sql"
	"fmt"
)

func mustPrepare(db *sql.DB, query string) *sql.Stmt {
	stmt, err := db.Prepare(query)
	if err != nil {
		panic(fmt.Sprintf("error preparing %s: %v", query, err))
	}
	return stmt
}
