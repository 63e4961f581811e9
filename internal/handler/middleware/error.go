package middleware

import (
	"log/slog"
	"net/http"

	"rental-engine/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last public error if the handler did not write a
// body itself. Private errors are classified by their category.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		last := c.Errors.Last()
		if last.IsType(gin.ErrorTypePublic) {
			if resp, ok := last.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}

		status := httperr.StatusFor(last.Err)
		resp := httperr.Response{Status: status}
		resp.Error.Message = last.Err.Error()
		if status >= http.StatusInternalServerError {
			slog.ErrorContext(c.Request.Context(), "unhandled request error",
				"request_id", GetRequestID(c), "path", c.FullPath(), "error", last.Err)
			resp.Error.Message = "Internal server error"
		}
		c.JSON(status, resp)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.ErrorContext(c.Request.Context(), "recovered from panic",
					"error", err, "path", c.Request.URL.Path, "request_id", GetRequestID(c))

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"

				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
