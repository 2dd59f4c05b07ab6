// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/partlane/qnotify/pkg/errors"
	repoerr "github.com/partlane/qnotify/pkg/errors/repository"
)

// PostgreSQL error codes.
const (
	errDuplicate      = "23505" // unique_violation
	errFK             = "23503" // foreign_key_violation
	errInvalid        = "22P02" // invalid_text_representation
	errTruncation     = "22001" // string_data_right_truncation
	errUntranslatable = "22P05" // untranslatable_character
	errInvalidChar    = "22021" // character_not_in_repertoire
)

// HandleError maps a PostgreSQL driver error onto the repository error
// taxonomy, wrapped with the given operation error.
func HandleError(wrapper, err error) error {
	pqErr, ok := err.(*pgconn.PgError)
	if ok {
		switch pqErr.Code {
		case errDuplicate:
			return errors.Wrap(wrapper, errors.Wrap(repoerr.ErrConflict, err))
		case errInvalid, errInvalidChar, errTruncation, errUntranslatable:
			return errors.Wrap(wrapper, errors.Wrap(repoerr.ErrMalformedEntity, err))
		case errFK:
			return errors.Wrap(wrapper, errors.Wrap(repoerr.ErrCreateEntity, err))
		}
	}

	return errors.Wrap(wrapper, err)
}
