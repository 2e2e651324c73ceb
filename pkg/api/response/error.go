package response

import (
	"errors"
	"net/http"

	"github.com/folio/folio/pkg/auth"
	"github.com/folio/folio/pkg/chatbot"
	"github.com/folio/folio/pkg/documents"
	"github.com/folio/folio/pkg/portfolio"
)

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"request_id"`
}

// Common error codes
const (
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeConflict           = "CONFLICT"
	ErrCodeValidationFailed   = "VALIDATION_FAILED"
	ErrCodePayloadTooLarge    = "PAYLOAD_TOO_LARGE"
	ErrCodeRateLimited        = "RATE_LIMITED"
	ErrCodeInternalServer     = "INTERNAL_SERVER_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeGatewayTimeout     = "GATEWAY_TIMEOUT"
)

// Visitor-facing messages for failures whose cause is only logged.
const (
	MsgRateLimited     = "Too many requests. Please wait a moment before trying again."
	MsgInferenceFailed = "Sorry, I'm having trouble responding right now. Please try again later."
	MsgDeliveryFailed  = "Failed to send reply. Please try again."
	MsgInternal        = "Internal server error"
)

var (
	// ErrInvalidInput marks undecodable request bodies and bad path parameters.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTimeout marks handler timeouts.
	ErrTimeout = errors.New("request timeout")
)

// Classified is the HTTP rendering of an error.
type Classified struct {
	Status  int
	Code    string
	Message string
}

// Classify maps domain errors onto status, code and the message shown to
// the caller. Unknown errors become a generic 500.
func Classify(err error) Classified {
	var (
		validation *chatbot.ValidationError
		notFound   *portfolio.NotFoundError
		docMissing *documents.NotFoundError
	)

	switch {
	case errors.As(err, &validation):
		return Classified{http.StatusBadRequest, ErrCodeValidationFailed, validation.Message}
	case errors.Is(err, chatbot.ErrRateLimited):
		return Classified{http.StatusTooManyRequests, ErrCodeRateLimited, MsgRateLimited}
	case errors.Is(err, chatbot.ErrInferenceFailed):
		return Classified{http.StatusInternalServerError, ErrCodeInternalServer, MsgInferenceFailed}

	case errors.As(err, &notFound):
		return Classified{http.StatusNotFound, ErrCodeNotFound, notFound.Error()}
	case errors.As(err, &docMissing):
		return Classified{http.StatusNotFound, ErrCodeNotFound, docMissing.Error()}
	case errors.Is(err, auth.ErrUserNotFound):
		return Classified{http.StatusNotFound, ErrCodeNotFound, auth.ErrUserNotFound.Error()}
	case errors.Is(err, portfolio.ErrNotFound):
		return Classified{http.StatusNotFound, ErrCodeNotFound, "Not found"}

	case errors.Is(err, portfolio.ErrConflict):
		return Classified{http.StatusConflict, ErrCodeConflict, conflictMessage(err)}
	case errors.Is(err, portfolio.ErrDeliveryFailed):
		return Classified{http.StatusInternalServerError, ErrCodeInternalServer, MsgDeliveryFailed}

	case errors.Is(err, documents.ErrInvalidType):
		return Classified{http.StatusBadRequest, ErrCodeBadRequest, documents.ErrInvalidType.Error()}
	case errors.Is(err, documents.ErrNotPDF):
		return Classified{http.StatusBadRequest, ErrCodeBadRequest, documents.ErrNotPDF.Error()}
	case errors.Is(err, documents.ErrTooLarge):
		return Classified{http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge, documents.ErrTooLarge.Error()}

	case errors.Is(err, auth.ErrInvalidPassword):
		return Classified{http.StatusUnauthorized, ErrCodeUnauthorized, auth.ErrInvalidPassword.Error()}
	case errors.Is(err, auth.ErrTokenExpired):
		return Classified{http.StatusUnauthorized, ErrCodeUnauthorized, auth.ErrTokenExpired.Error()}
	case errors.Is(err, auth.ErrInvalidToken):
		return Classified{http.StatusUnauthorized, ErrCodeUnauthorized, auth.ErrInvalidToken.Error()}
	case errors.Is(err, auth.ErrInvalidCredentials):
		return Classified{http.StatusUnauthorized, ErrCodeUnauthorized, auth.ErrInvalidCredentials.Error()}

	case errors.Is(err, ErrInvalidInput):
		return Classified{http.StatusBadRequest, ErrCodeBadRequest, err.Error()}
	case errors.Is(err, ErrTimeout):
		return Classified{http.StatusGatewayTimeout, ErrCodeGatewayTimeout, "Request timeout"}
	default:
		return Classified{http.StatusInternalServerError, ErrCodeInternalServer, MsgInternal}
	}
}

func conflictMessage(err error) string {
	var c *portfolio.ConflictError
	if errors.As(err, &c) {
		return c.Message
	}
	return "Conflict"
}

// ErrorCodeFromStatus returns an error code for the given HTTP status.
func ErrorCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeBadRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusMethodNotAllowed:
		return ErrCodeMethodNotAllowed
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusRequestEntityTooLarge:
		return ErrCodePayloadTooLarge
	case http.StatusTooManyRequests:
		return ErrCodeRateLimited
	case http.StatusServiceUnavailable:
		return ErrCodeServiceUnavailable
	case http.StatusGatewayTimeout:
		return ErrCodeGatewayTimeout
	default:
		return ErrCodeInternalServer
	}
}

// HandleError classifies err and writes the error envelope. 401 responses
// carry a Bearer challenge.
func HandleError(w http.ResponseWriter, err error, requestID string) {
	c := Classify(err)
	if c.Status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	Error(w, c.Status, c.Code, c.Message, requestID)
}
