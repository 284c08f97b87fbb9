package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Store errors
	ErrStoreClosed    = fmt.Errorf("store is closed")
	ErrImportInvalid  = fmt.Errorf("import data is not a valid database")
	ErrSnapshotFailed = fmt.Errorf("snapshot export failed")

	// Domain errors
	ErrArtistNotFound  = fmt.Errorf("artist not found")
	ErrSessionNotFound = fmt.Errorf("session not found")
	ErrPaymentNotFound = fmt.Errorf("payment not found")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
