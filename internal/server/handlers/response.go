// Package handlers implements the HTTP endpoints of the rechenmodul API.
//
// Every response uses the envelope {"success": true, "data": ...} or
// {"success": false, "error": {"code": ..., "message": ...}}.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arloliu/rechenmodul/errs"
)

// Error codes of the response envelope.
const (
	CodeBadRequest      = "BAD_REQUEST"
	CodeInvalidValue    = "INVALID_VALUE"
	CodeInvalidTable    = "INVALID_TABLE"
	CodeInvalidToken    = "INVALID_TOKEN"
	CodeLimitExceeded   = "LIMIT_EXCEEDED"
	CodeNotFound        = "NOT_FOUND"
	CodeRequestTooLarge = "REQUEST_TOO_LARGE"
	CodeUnavailable     = "UNAVAILABLE"
	CodeInternal        = "INTERNAL_ERROR"
)

func success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

func fail(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "error": gin.H{"code": code, "message": message}})
}

func badRequest(c *gin.Context, message string) {
	fail(c, http.StatusBadRequest, CodeBadRequest, message)
}

// respondError maps err to a status code and error code.
func respondError(c *gin.Context, err error) {
	var maxBytesErr *http.MaxBytesError

	switch {
	case errors.As(err, &maxBytesErr):
		fail(c, http.StatusRequestEntityTooLarge, CodeRequestTooLarge, "request body too large")
	case errors.Is(err, errs.ErrPointNotFound):
		fail(c, http.StatusNotFound, CodeNotFound, err.Error())
	case errors.Is(err, errs.ErrSampleTooLarge), errors.Is(err, errs.ErrTooManyDistinctValues):
		fail(c, http.StatusUnprocessableEntity, CodeLimitExceeded, err.Error())
	case errors.Is(err, errs.ErrInvalidValue):
		fail(c, http.StatusBadRequest, CodeInvalidValue, err.Error())
	case errors.Is(err, errs.ErrInvalidTable):
		fail(c, http.StatusBadRequest, CodeInvalidTable, err.Error())
	case errors.Is(err, errs.ErrInvalidToken),
		errors.Is(err, errs.ErrChecksumMismatch),
		errors.Is(err, errs.ErrInvalidCompression):
		fail(c, http.StatusBadRequest, CodeInvalidToken, err.Error())
	default:
		_ = c.Error(err)
		fail(c, http.StatusInternalServerError, CodeInternal, "internal server error")
	}
}

// bindJSON decodes the request body into dst and writes the error response
// on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) || errors.Is(err, errs.ErrInvalidValue) {
			respondError(c, err)
			return false
		}
		badRequest(c, err.Error())

		return false
	}

	return true
}
