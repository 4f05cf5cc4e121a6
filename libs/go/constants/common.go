package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"
	DevEnvironment  = "dev"
	TestEnvironment = "test"

	// Send result statuses
	SuccessStatus = "success"
	FailedStatus  = "failed"

	// Batch lifecycle states
	BatchStateIdle      = "idle"
	BatchStateSubmitted = "submitted"
	BatchStateCompleted = "completed"

	// Reserved recipient field
	EmailField = "email"
)
