package logx

const (
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldCallbackData    = "callback-data"
	FieldChatID          = "chat-id"
	FieldCommand         = "command"
	FieldDurationMs      = "duration-ms"
	FieldError           = "error"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldIP              = "ip"
	FieldOperation       = "operation"
	FieldRequestBody     = "request-body"
	FieldRequestID       = "request-id"
	FieldResponseBody    = "response-body"
	FieldResponseHeaders = "response-headers"
	FieldResponseStatus  = "response-status"
	FieldScore           = "score"
	FieldSlot            = "slot"
	FieldStack           = "stack"
	FieldStorageDriver   = "storage-driver"
	FieldTeam            = "team"
	FieldTeamCount       = "team-count"
	FieldTraceID         = "trace-id"
	FieldUpdateID        = "update-id"
	FieldURL             = "url"
	FieldUserID          = "user-id"
)
