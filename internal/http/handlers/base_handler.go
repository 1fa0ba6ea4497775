// README: Base handler utilities (JSON helpers, validation error mapping).
package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type errorResponse struct {
	Error string `json:"error"`
}

// fieldErrorResponse carries field-tagged validation errors for the
// structured form path.
type fieldErrorResponse struct {
	Errors map[string]string `json:"errors"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeFieldErrors(c *gin.Context, status int, fields map[string]string) {
	writeJSON(c, status, fieldErrorResponse{Errors: fields})
}

// bindingFieldErrors maps gin's validator errors onto json field names.
func bindingFieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"body": "invalid json"}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := camelToSnake(fe.Field())
		switch fe.Tag() {
		case "required":
			out[field] = "required"
		case "min":
			out[field] = "must be at least " + fe.Param()
		default:
			out[field] = "invalid"
		}
	}
	return out
}

// camelToSnake keeps acronym runs together: "SessionID" -> "session_id",
// not "session_i_d".
func camelToSnake(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			prevLower := i > 0 && s[i-1] >= 'a' && s[i-1] <= 'z'
			nextLower := i+1 < len(s) && s[i+1] >= 'a' && s[i+1] <= 'z'
			if i > 0 && (prevLower || nextLower) {
				b.WriteByte('_')
			}
			b.WriteByte(c - 'A' + 'a')
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
