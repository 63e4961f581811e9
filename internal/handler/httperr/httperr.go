package httperr

import (
	"net/http"

	"rental-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

var statusByMarker = []struct {
	marker error
	status int
}{
	{errs.ErrValidation, http.StatusBadRequest},
	{errs.ErrNotFound, http.StatusNotFound},
	{errs.ErrForbidden, http.StatusForbidden},
	{errs.ErrCapacityExceeded, http.StatusConflict},
	{errs.ErrCapacityConflict, http.StatusConflict},
	{errs.ErrInvalidTransition, http.StatusConflict},
	{errs.ErrDeadlinePassed, http.StatusUnprocessableEntity},
	{errs.ErrConflict, http.StatusConflict},
	{errs.ErrInternalInconsistency, http.StatusInternalServerError},
}

// StatusFor maps an error category to its HTTP status. Uncategorized errors
// are 500.
func StatusFor(err error) int {
	for _, m := range statusByMarker {
		if errs.Is(err, m.marker) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// AbortWithDomainError answers with the status of the error's category. The
// message of server-side failures is never exposed.
func AbortWithDomainError(c *gin.Context, err error) {
	status := StatusFor(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		msg = "Internal error"
	}
	AbortWithError(c, status, err, msg, nil)
}
