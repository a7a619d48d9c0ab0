package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ftzops/internal/domain"
)

// APIResponse is the standard envelope for all API responses. Error is a
// human-readable string; AvailableActions accompanies unknown-action errors
// and Action echoes the offending action on server errors.
type APIResponse struct {
	Success          bool        `json:"success"`
	Data             interface{} `json:"data,omitempty"`
	Meta             interface{} `json:"meta,omitempty"`
	Error            string      `json:"error,omitempty"`
	Action           string      `json:"action,omitempty"`
	AvailableActions []string    `json:"available_actions,omitempty"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondWithMeta sends a 200 success response with metadata.
func RespondWithMeta(c *gin.Context, data, meta interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, msg string) {
	c.JSON(status, APIResponse{Success: false, Error: msg})
}

// MapDomainError translates domain errors to HTTP status codes and messages.
func MapDomainError(err error) (status int, msg string) {
	switch {
	case errors.Is(err, domain.ErrCodeNotFound),
		errors.Is(err, domain.ErrRateNotFound),
		errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrMissingParameter),
		errors.Is(err, domain.ErrMissingAction),
		errors.Is(err, domain.ErrUnknownAction):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed, err.Error()
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	default:
		return http.StatusInternalServerError, "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%v] internal error: %v", requestID, err)
	}
	RespondError(c, status, msg)
}

func actionNames() []string {
	names := make([]string, len(domain.Actions))
	for i, a := range domain.Actions {
		names[i] = string(a)
	}
	return names
}
