package constants

// Dispatch defaults
const (
	// DefaultDispatchWorkers is the number of concurrent delivery attempts
	// per batch when DISPATCH_WORKER_COUNT is not set.
	DefaultDispatchWorkers = 3

	// DefaultSessionID is used when the caller does not supply X-Session-ID.
	DefaultSessionID = "default"

	// SessionIDHeader carries the composition session identifier.
	SessionIDHeader = "X-Session-ID"
)

// Service error messages shared between services and handlers
const (
	RecipientIndexOutOfRange = "recipient index out of range"
	BatchInFlight            = "a batch is already in flight for this session"
)
