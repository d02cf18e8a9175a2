package errcodes

// ErrorCode is a stable machine-readable error identifier.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

const (
	InternalServerError ErrorCode = "InternalServerError"
	TimeoutExceeded     ErrorCode = "TimeoutExceeded"
	Forbidden           ErrorCode = "Forbidden"
	ValidationError     ErrorCode = "ValidationError"
	NotFound            ErrorCode = "NotFound"

	// Scoreboard.
	InvalidTeamName      ErrorCode = "InvalidTeamName"
	TeamNameAlreadyInUse ErrorCode = "TeamNameAlreadyInUse"
	TeamNotFound         ErrorCode = "TeamNotFound"
	InvalidScoreDelta    ErrorCode = "InvalidScoreDelta"
	InvalidDirection     ErrorCode = "InvalidDirection"
	CorruptedState       ErrorCode = "CorruptedState"
	StorageUnavailable   ErrorCode = "StorageUnavailable"
)
