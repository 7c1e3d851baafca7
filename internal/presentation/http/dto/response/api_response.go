package response

import (
	"time"

	"github.com/adiwira/kasirpos/pkg/apperror"
	"github.com/adiwira/kasirpos/pkg/pagination"
	"github.com/adiwira/kasirpos/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Envelope is the JSON body every endpoint responds with.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// Meta carries the response timestamp and the request correlation ID.
type Meta struct {
	Timestamp string `json:"timestamp"`
	RequestID string `json:"request_id"`
}

// newMeta picks up the correlation ID set by the request logger. Responses
// written before that middleware ran, or from tests driving a bare context,
// get a fresh one.
func newMeta(c *gin.Context) *Meta {
	requestID := c.GetString("request_id")
	if requestID == "" {
		requestID = utils.NewRequestID()
	}
	return &Meta{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		RequestID: requestID,
	}
}

// Success sends a success envelope with the given status code.
func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Envelope{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    newMeta(c),
	})
}

// SuccessWithPagination sends a success envelope around one page of results.
func SuccessWithPagination[T any](c *gin.Context, statusCode int, message string, result *pagination.PaginatedResult[T]) {
	c.JSON(statusCode, Envelope{
		Success: true,
		Message: message,
		Data:    result,
		Meta:    newMeta(c),
	})
}

// OK sends a 200 success envelope.
func OK(c *gin.Context, message string, data interface{}) {
	Success(c, 200, message, data)
}

// Created sends a 201 success envelope.
func Created(c *gin.Context, message string, data interface{}) {
	Success(c, 201, message, data)
}

// NoContent responds 204 with no body.
func NoContent(c *gin.Context) {
	c.Status(204)
}

// Error maps err onto the envelope. Errors that are not application errors
// are attached to the context first so the request logger records them before
// they collapse into a 500.
func Error(c *gin.Context, err error) {
	if !apperror.IsAppError(err) {
		_ = c.Error(err)
	}
	appErr := apperror.GetAppError(err)
	c.JSON(appErr.Code, Envelope{
		Success: false,
		Message: appErr.Message,
		Errors:  appErr.Errors,
		Meta:    newMeta(c),
	})
}

// ErrorWithCode sends an error envelope with a specific status code.
func ErrorWithCode(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Envelope{
		Success: false,
		Message: message,
		Meta:    newMeta(c),
	})
}

// ValidationError reports per-field request validation failures.
func ValidationError(c *gin.Context, errors []apperror.FieldError) {
	c.JSON(422, Envelope{
		Success: false,
		Message: "Validation failed",
		Errors:  errors,
		Meta:    newMeta(c),
	})
}

// BadRequest sends a 400 error envelope.
func BadRequest(c *gin.Context, message string) {
	ErrorWithCode(c, 400, message)
}

// Unauthorized sends a 401 error envelope.
func Unauthorized(c *gin.Context, message string) {
	ErrorWithCode(c, 401, message)
}
