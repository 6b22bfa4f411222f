package models

// Response codes
const (
	CodeSuccess = 0

	// client errors (1000-1999)
	CodeInvalidParams     = 1000
	CodeMissingParams     = 1001
	CodeUnauthorized      = 1002
	CodeNotFound          = 1003
	CodeLimitReached      = 1004
	CodeInvalidTransition = 1005

	// server errors (2000-2999)
	CodeServerError   = 2000
	CodeDatabaseError = 2001
	CodeRunNotStarted = 2002
)

var CodeMessages = map[int]string{
	CodeSuccess:           "success",
	CodeInvalidParams:     "invalid parameters",
	CodeMissingParams:     "missing required parameter",
	CodeUnauthorized:      "unauthorized",
	CodeNotFound:          "not found",
	CodeLimitReached:      "limit reached",
	CodeInvalidTransition: "invalid status transition",
	CodeServerError:       "internal server error",
	CodeDatabaseError:     "database error",
	CodeRunNotStarted:     "monitoring run did not start",
}

// NewSuccessResponse wraps data in a success envelope.
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Code:    CodeSuccess,
		Message: CodeMessages[CodeSuccess],
		Data:    data,
	}
}

// NewErrorResponse uses the canned message for code.
func NewErrorResponse(code int, data interface{}) APIResponse {
	message, exists := CodeMessages[code]
	if !exists {
		message = "unknown error"
	}
	return APIResponse{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

func NewCustomErrorResponse(code int, message string, data interface{}) APIResponse {
	return APIResponse{
		Code:    code,
		Message: message,
		Data:    data,
	}
}
