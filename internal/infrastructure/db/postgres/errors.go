package postgres

import (
	"errors"

	"github.com/lib/pq"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// Constraint names from the migrations. The repositories translate
// violations of these into domain errors, which is what makes the
// check-and-insert operations atomic: the database enforces the invariant,
// the application only names the failure.
const (
	constraintUsersEmail       = "users_email_key"
	constraintStoresOwner      = "stores_owner_id_key"
	constraintRatingsStoreUser = "ratings_store_id_user_id_key"
	constraintRatingsStoreFK   = "ratings_store_id_fkey"
)

func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) &&
		pqErr.Code == codeUniqueViolation &&
		string(pqErr.Constraint) == constraint
}

func isForeignKeyViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) &&
		pqErr.Code == codeForeignKeyViolation &&
		string(pqErr.Constraint) == constraint
}
