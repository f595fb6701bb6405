package store

import (
	"github.com/juju/errors"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

// classify maps driver constraint violations onto error kinds:
// unique -> AlreadyExists, foreign key -> NotFound, check/not null -> NotValid.
// Other errors are returned unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return errors.AlreadyExistsf("record (%v)", err)
		case sqlite3.ErrConstraintForeignKey:
			return errors.NotFoundf("referenced record (%v)", err)
		case sqlite3.ErrConstraintCheck, sqlite3.ErrConstraintNotNull:
			return errors.NotValidf("record (%v)", err)
		}
		return err
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case "unique_violation":
			return errors.AlreadyExistsf("record (%s)", pqErr.Constraint)
		case "foreign_key_violation":
			return errors.NotFoundf("referenced record (%s)", pqErr.Constraint)
		case "check_violation", "not_null_violation":
			return errors.NotValidf("record (%s)", pqErr.Constraint)
		}
	}
	return err
}
