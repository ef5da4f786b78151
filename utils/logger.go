package utils

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GetAPIHitter identifies who is hitting the endpoint: the authenticated
// subject when present, otherwise the client IP.
func GetAPIHitter(c *gin.Context) string {
	if subject, exists := c.Get("subject"); exists {
		if s, ok := subject.(string); ok && s != "" {
			return s
		}
	}
	return c.ClientIP()
}

func PrintLogInfo(username *string, statusCode int, functionName string, opErr *error) {
	var logColor string

	switch statusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		logColor = Green
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		logColor = Yellow
	case http.StatusInternalServerError, http.StatusNotImplemented, http.StatusBadGateway, http.StatusServiceUnavailable:
		logColor = Red
	default:
		logColor = Reset
	}

	user := "Unknown"
	if username != nil {
		user = *username
	}

	event := log.Info()
	if statusCode >= http.StatusInternalServerError {
		event = log.Error()
	}
	if opErr != nil && *opErr != nil {
		event = event.Err(*opErr)
	}
	event.Msg(fmt.Sprintf("User: %s | Status: %d | Function: %s", user, statusCode, functionName))
	fmt.Printf("%sUser: %s | Status: %s | Function: %s%s\n", logColor, user, ColorStatus(statusCode), functionName, Reset)
}
