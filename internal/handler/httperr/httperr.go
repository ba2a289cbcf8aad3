package httperr

import (
	"net/http"

	"checkout-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Code    string `json:"code,omitempty"`
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
	resp.Error.Code = codeFor(err)
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps a usecase error onto a status by its category marker.
func Abort(c *gin.Context, err error, msg string) {
	AbortWithError(c, StatusOf(err), err, msg, nil)
}

func StatusOf(err error) int {
	switch errs.Category(err) {
	case errs.ErrCapacity:
		return http.StatusConflict
	case errs.ErrState:
		return http.StatusConflict
	case errs.ErrConfiguration:
		return http.StatusUnprocessableEntity
	case errs.ErrNotFound:
		return http.StatusNotFound
	case errs.ErrValidation:
		return http.StatusBadRequest
	case errs.ErrConcurrency:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func codeFor(err error) string {
	switch errs.Category(err) {
	case errs.ErrCapacity:
		return "capacity"
	case errs.ErrState:
		return "state"
	case errs.ErrConfiguration:
		return "configuration"
	case errs.ErrNotFound:
		return "not_found"
	case errs.ErrValidation:
		return "validation"
	case errs.ErrConcurrency:
		return "concurrency"
	default:
		return ""
	}
}
