package service

import "errors"

var (
	// ErrIncompleteForm means a required registration field is empty.
	ErrIncompleteForm = errors.New("registration form is incomplete")
	// ErrInvalidOption means purpose, bidang or satisfaction is outside its option set.
	ErrInvalidOption = errors.New("registration form has an unknown option")
	// ErrDuplicateSubmission is returned when an idempotency key was already used.
	ErrDuplicateSubmission = errors.New("duplicate submission")
	// ErrWrongPassword rejects an export attempt.
	ErrWrongPassword = errors.New("wrong export password")
	// ErrInvalidReportType rejects an unknown period kind before any fetch.
	ErrInvalidReportType = errors.New("invalid report type")
	// ErrNoReportData is informational: the period holds no guests and no file is produced.
	ErrNoReportData = errors.New("no guest data for the selected period")
)
