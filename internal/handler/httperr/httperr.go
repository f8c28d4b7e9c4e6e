package httperr

import (
	"net/http"

	"pricewatch/internal/pkg/errs"

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

// StatusFor maps the moderation error taxonomy onto HTTP.
func StatusFor(err error) (int, string) {
	switch {
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest, "Invalid request"
	case errs.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, "Forbidden"
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errs.Is(err, errs.ErrInvalidState):
		return http.StatusConflict, "Submission already reviewed"
	case errs.Is(err, errs.ErrConcurrentModification):
		return http.StatusConflict, "Submission was modified concurrently; reload and retry"
	case errs.Is(err, errs.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "Store unavailable; retry later"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// AbortWithDomainError aborts with the status StatusFor picks. Validation
// errors echo their message so clients can fix the input.
func AbortWithDomainError(c *gin.Context, err error) {
	status, msg := StatusFor(err)
	var detail any
	if status == http.StatusBadRequest {
		detail = err.Error()
	}
	AbortWithError(c, status, err, msg, detail)
}
