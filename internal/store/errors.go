package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRequestNotFound is returned when a lookup or transition targets a
	// request that does not exist.
	ErrRequestNotFound = errors.New("request was not found")

	// ErrDuplicateActiveRequest is returned when a resident already has a
	// non-terminal request for the same document type.
	ErrDuplicateActiveRequest = errors.New("active request for this document type already exists")

	// ErrDuplicateReference is returned when a request insert collides on the
	// reference number. References carry random entropy, so callers may
	// regenerate and retry.
	ErrDuplicateReference = errors.New("reference number already exists")

	// ErrInvalidTransition is returned when a conditional status update finds
	// the request in a state other than the expected one. The request row
	// exists; its current status simply does not permit the transition.
	ErrInvalidTransition = errors.New("request status does not permit this transition")

	// ErrDuplicateReceipt is returned when a payment insert collides with an
	// already recorded receipt number.
	ErrDuplicateReceipt = errors.New("receipt number already recorded")

	// ErrPaymentNotFound is returned when a payment lookup matches no rows.
	ErrPaymentNotFound = errors.New("payment was not found")

	// ErrDocumentTypeNotFound is returned when a document type lookup matches
	// no rows.
	ErrDocumentTypeNotFound = errors.New("document type was not found")

	// ErrOfficialNotFound is returned when an official lookup matches no rows.
	ErrOfficialNotFound = errors.New("official was not found")

	// ErrResidentNotFound is returned when a resident lookup matches no rows.
	ErrResidentNotFound = errors.New("resident was not found")

	// ErrSignatureNotFound is returned when no active digital signature exists
	// for the requested official.
	ErrSignatureNotFound = errors.New("no active digital signature was found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
