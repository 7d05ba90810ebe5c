package server

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/jiji-learning/jiji-backend/pkg/sanitize"
)

// Query length bounds enforced before any storage work happens.
const (
	MinQueryLength = 2
	MaxQueryLength = 1000
)

// Context keys under which the validated request values are stashed.
const (
	ctxKeyQuery  = "query"
	ctxKeyUserID = "userId"
)

// ValidateAskRequest checks the /ask-jiji body and aborts with a 400 envelope
// on the first failing rule. On success the sanitized query (and userId, if
// any) are stored on the gin context for the handler.
//
// The body is read as a generic map rather than bound to a struct so that a
// wrong-typed query field produces its own message instead of a bind error.
func ValidateAskRequest(c *gin.Context) {
	var body map[string]interface{}
	// A missing or unparseable body behaves like a body without a query.
	_ = c.ShouldBindJSON(&body)

	rawQuery, ok := body["query"]
	if !ok || isFalsy(rawQuery) {
		abortValidation(c, "Query is required")
		return
	}

	query, ok := rawQuery.(string)
	if !ok {
		abortValidation(c, "Query must be a string")
		return
	}

	if utf8.RuneCountInString(strings.TrimSpace(query)) < MinQueryLength {
		abortValidation(c, "Query must be at least 2 characters long")
		return
	}

	if utf8.RuneCountInString(query) > MaxQueryLength {
		abortValidation(c, "Query must not exceed 1000 characters")
		return
	}

	userID := ""
	if rawUserID, ok := body["userId"]; ok && !isFalsy(rawUserID) {
		userID, ok = rawUserID.(string)
		if !ok {
			abortValidation(c, "userId must be a string")
			return
		}
	}

	c.Set(ctxKeyQuery, sanitize.Clean(query))
	c.Set(ctxKeyUserID, userID)
	c.Next()
}

// isFalsy mirrors the truthiness rules the API contract was written against:
// absent, null, empty string, false and zero all count as "no value".
func isFalsy(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return !val
	case float64:
		return val == 0
	default:
		return false
	}
}

func abortValidation(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Success: false,
		Error: &APIError{
			Code:    "VALIDATION_ERROR",
			Message: message,
		},
	})
}
