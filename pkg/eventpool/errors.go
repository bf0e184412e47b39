package eventpool

import "strconv"

// Error is a caller-visible pool fault with a stable code.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Stable fault codes. Callers branch on Error.Code, not on message text.
const (
	CodeInvalidHandler   = "INVALID_HANDLER"
	CodeInvalidEvent     = "INVALID_EVENT"
	CodeMultiHandler     = "MULTI_HANDLER_NOT_ALLOWED"
	CodeDuplicateHandler = "DUPLICATE_HANDLER_NOT_ALLOWED"
	CodeHandlerNotFound  = "HANDLER_NOT_FOUND"
	CodeNoHandlers       = "NO_HANDLERS"
)

var (
	errInvalidHandler = &Error{Code: CodeInvalidHandler, Message: "handler cannot be nil"}
	errInvalidEvent   = &Error{Code: CodeInvalidEvent, Message: "event cannot be nil"}
)

func errMultiHandler(id int) *Error {
	return &Error{Code: CodeMultiHandler, Message: "event " + strconv.Itoa(id) + " already has a handler and multi-handler mode is off"}
}

func errDuplicateHandler(id int) *Error {
	return &Error{Code: CodeDuplicateHandler, Message: "handler already subscribed to event " + strconv.Itoa(id)}
}

func errHandlerNotFound(id int) *Error {
	return &Error{Code: CodeHandlerNotFound, Message: "handler not subscribed to event " + strconv.Itoa(id)}
}

func errNoHandlers(id int) *Error {
	return &Error{Code: CodeNoHandlers, Message: "no handlers registered for event " + strconv.Itoa(id)}
}
