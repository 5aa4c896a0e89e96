package study

import "errors"

var (
	ErrNotFound       = errors.New("study record not found")
	ErrInvalidOutcome = errors.New("invalid recall outcome")
	ErrUpsertNoEffect = errors.New("study record upsert affected no rows")
)
