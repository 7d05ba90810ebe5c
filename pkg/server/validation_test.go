package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// validationEngine mounts the middleware in front of a handler that echoes
// the values stashed on the context.
func validationEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/ask-jiji", ValidateAskRequest, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"query":  c.GetString(ctxKeyQuery),
			"userId": c.GetString(ctxKeyUserID),
		})
	})
	return r
}

func postJSON(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/ask-jiji", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error body %q: %v", w.Body.String(), err)
	}
	return resp
}

func TestValidateAskRequestRejections(t *testing.T) {
	r := validationEngine()

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"Missing query", `{}`, "Query is required"},
		{"Null query", `{"query": null}`, "Query is required"},
		{"Empty query", `{"query": ""}`, "Query is required"},
		{"False query", `{"query": false}`, "Query is required"},
		{"Zero query", `{"query": 0}`, "Query is required"},
		{"Empty body", ``, "Query is required"},
		{"Malformed JSON", `{not json`, "Query is required"},
		{"Numeric query", `{"query": 42}`, "Query must be a string"},
		{"Object query", `{"query": {"a": 1}}`, "Query must be a string"},
		{"Array query", `{"query": ["a"]}`, "Query must be a string"},
		{"Boolean true query", `{"query": true}`, "Query must be a string"},
		{"Single character", `{"query": "a"}`, "Query must be at least 2 characters long"},
		{"Whitespace padded single char", `{"query": "  a  "}`, "Query must be at least 2 characters long"},
		{"Whitespace only", `{"query": "     "}`, "Query must be at least 2 characters long"},
		{"Too long", `{"query": "` + strings.Repeat("a", 1001) + `"}`, "Query must not exceed 1000 characters"},
		{"Non-string userId", `{"query": "Explain RAG", "userId": 7}`, "userId must be a string"},
		{"Object userId", `{"query": "Explain RAG", "userId": {}}`, "userId must be a string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, r, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d (body %q)", w.Code, http.StatusBadRequest, w.Body.String())
			}
			resp := decodeError(t, w)
			if resp.Success {
				t.Error("success = true, want false")
			}
			if resp.Error == nil || resp.Error.Code != "VALIDATION_ERROR" {
				t.Fatalf("error = %+v, want code VALIDATION_ERROR", resp.Error)
			}
			if resp.Error.Message != tt.message {
				t.Errorf("message = %q, want %q", resp.Error.Message, tt.message)
			}
		})
	}
}

func TestValidateAskRequestAccepts(t *testing.T) {
	r := validationEngine()

	tests := []struct {
		name       string
		body       string
		wantQuery  string
		wantUserID string
	}{
		{"Simple query", `{"query": "Explain RAG"}`, "Explain RAG", ""},
		{"Trims whitespace", `{"query": "  Hello World  "}`, "Hello World", ""},
		{"Strips markup", `{"query": "<script>alert(1)</script>Hello"}`, "alert(1)Hello", ""},
		{"Strips quotes", `{"query": "what's a 'prompt'"}`, "whats a prompt", ""},
		{"Exactly max length", `{"query": "` + strings.Repeat("a", 1000) + `"}`, strings.Repeat("a", 1000), ""},
		{"With userId", `{"query": "Explain RAG", "userId": "user-1"}`, "Explain RAG", "user-1"},
		{"Falsy userId ignored", `{"query": "Explain RAG", "userId": ""}`, "Explain RAG", ""},
		{"Minimum length", `{"query": "ab"}`, "ab", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, r, tt.body)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d (body %q)", w.Code, http.StatusOK, w.Body.String())
			}

			var echoed struct {
				Query  string `json:"query"`
				UserID string `json:"userId"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &echoed); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if echoed.Query != tt.wantQuery {
				t.Errorf("sanitized query = %q, want %q", echoed.Query, tt.wantQuery)
			}
			if echoed.UserID != tt.wantUserID {
				t.Errorf("userId = %q, want %q", echoed.UserID, tt.wantUserID)
			}
		})
	}
}
