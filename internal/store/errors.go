// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCampaignNotFound is returned when a campaign id matches no row, and
	// when a write references a campaign that no longer exists.
	ErrCampaignNotFound = errors.New("campaign was not found")

	// ErrHelpMethodNotFound is returned when a help method id matches no row,
	// including help method ids referenced by a campaign or a help-done record.
	ErrHelpMethodNotFound = errors.New("help method was not found")

	// ErrHelpMethodInUse is returned when deleting a help method that is still
	// referenced by a campaign or a help-done record.
	ErrHelpMethodInUse = errors.New("help method is in use")

	// ErrHelpDoneNotFound is returned when a help-done id matches no row.
	ErrHelpDoneNotFound = errors.New("help done record was not found")

	// ErrUserNotFound is returned when a user lookup produces no row, and
	// when a campaign is inserted for an account that no longer exists.
	ErrUserNotFound = errors.New("user was not found")

	// ErrEmailAlreadyExists is returned when a signup collides with the
	// unique e-mail constraint.
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
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

	// ErrPreparingStatement is returned when a SQL statement cannot be
	// prepared.
	ErrPreparingStatement = errors.New("failed to prepare statement")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when row iteration fails mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
