package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pdrims-http-service/internal/domain/services"
	"pdrims-http-service/internal/error/code"
	"pdrims-http-service/pkg/logger"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error  string            `json:"error" example:"validation failed"`
	Code   int               `json:"code" example:"100003"`
	Fields map[string]string `json:"fields,omitempty"`
}

// SuccessResponse acknowledges a write
type SuccessResponse struct {
	Success bool        `json:"success" example:"true"`
	ID      interface{} `json:"id,omitempty"`
}

// Success writes data as the body with status 200
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// OK acknowledges a write that returns no identifier
func OK(c *gin.Context) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// Created acknowledges a write and returns the new identifier
func Created(c *gin.Context, id interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true, ID: id})
}

// Fail writes the default message of errorCode
func Fail(c *gin.Context, errorCode int) {
	FailWithMessage(c, errorCode, code.GetMessage(errorCode))
}

// FailWithMessage writes a custom message
func FailWithMessage(c *gin.Context, errorCode int, message string) {
	c.AbortWithStatusJSON(code.GetStatus(errorCode), ErrorResponse{
		Error: message,
		Code:  errorCode,
	})
}

// ValidationFailed writes field-level problems
func ValidationFailed(c *gin.Context, fields map[string]string) {
	c.AbortWithStatusJSON(code.GetStatus(code.ErrValidation), ErrorResponse{
		Error:  code.GetMessage(code.ErrValidation),
		Code:   code.ErrValidation,
		Fields: fields,
	})
}

// ServerError writes a generic 500
func ServerError(c *gin.Context) {
	Fail(c, code.ErrUnknown)
}

// Unauthorized writes a 401
func Unauthorized(c *gin.Context) {
	Fail(c, code.ErrTokenInvalid)
}

// Forbidden writes a 403
func Forbidden(c *gin.Context) {
	Fail(c, code.ErrForbidden)
}

// HandleError maps a service error to its response. notFoundCode is used for
// services.ErrNotFound so each resource reports its own code.
func HandleError(c *gin.Context, err error, notFoundCode int) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		ValidationFailed(c, verr.Fields)
	case errors.Is(err, services.ErrNotFound):
		if notFoundCode == 0 {
			notFoundCode = code.ErrRecordNotFound
		}
		Fail(c, notFoundCode)
	case errors.Is(err, services.ErrConflict):
		// conflict messages are composed by the services, never by a driver
		FailWithMessage(c, code.ErrConflict, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		Fail(c, code.ErrUserPasswordIncorrect)
	case errors.Is(err, services.ErrAccountPending):
		Fail(c, code.ErrUserPending)
	case errors.Is(err, services.ErrInvalidToken):
		Fail(c, code.ErrTokenInvalid)
	case errors.Is(err, services.ErrStorageTimeout):
		Fail(c, code.ErrDatabaseTimeout)
	case errors.Is(err, services.ErrStorageUnavailable):
		Fail(c, code.ErrDatabase)
	default:
		logger.Error("unhandled error on %s %s: %v", c.Request.Method, c.FullPath(), err)
		ServerError(c)
	}
}
