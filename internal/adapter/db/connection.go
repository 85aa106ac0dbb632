package db

import (
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"taskdesk/internal/config"
	"taskdesk/internal/core/domain"
)

// Open connects to the SQLite database at conf.DBPath with foreign key
// enforcement on. The cascade semantics of the schema depend on that pragma.
func Open(conf *config.Config) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", conf.DBPath)

	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// One logical actor, one connection: the store is single-writer.
	db.SetMaxOpenConns(1)

	return db, nil
}

// translateSQLiteError maps driver constraint violations onto the domain
// error taxonomy. Uniqueness and CHECK failures become integrity errors,
// foreign key failures become referential errors; anything else is a storage
// fault and passes through unchanged.
func translateSQLiteError(err error) error {
	var serr *sqlite.Error
	if !errors.As(err, &serr) {
		return err
	}

	switch serr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_CHECK:
		return fmt.Errorf("%w: %v", domain.ErrIntegrity, err)
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return fmt.Errorf("%w: %v", domain.ErrReferential, err)
	}

	return err
}
