package reasoncodes

type ReasonCode string

const (
	ErrValidation       ReasonCode = "ValidationError"
	ErrNotFound         ReasonCode = "NotFound"
	ErrConflict         ReasonCode = "Conflict"
	ErrInvalidOperation ReasonCode = "InvalidOperation"
	ErrAlreadyDone      ReasonCode = "AlreadyDone"
	ErrUnauthorized     ReasonCode = "Unauthorized"
	ErrThrottled        ReasonCode = "Throttled"
)
