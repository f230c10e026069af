package repository

import (
	"context"
	"errors"
	"intakeflow/internal/model"
)

// IntakesTable is the relational table (or collection) holding intakes
const IntakesTable = "intakes"

// IntakeRepo persists submitted intake records
type IntakeRepo interface {
	// Insert stores one record and returns the server-assigned ID. Each
	// call creates a new row; there is no deduplication.
	Insert(ctx context.Context, rec *model.SubmissionRecord, accessToken string) (string, error)
}

// CodedError is implemented by store errors that carry a backend code
// (a PostgREST code or an SQLSTATE)
type CodedError interface {
	error
	BackendCode() string
}

// StoreError is a store failure normalized to a backend code
type StoreError struct {
	Code    string
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	return e.Message
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// BackendCode implements CodedError
func (e *StoreError) BackendCode() string {
	return e.Code
}

// BackendCodeOf returns the backend code carried by err, if any
func BackendCodeOf(err error) (string, bool) {
	var coded CodedError
	if errors.As(err, &coded) {
		return coded.BackendCode(), true
	}
	return "", false
}
