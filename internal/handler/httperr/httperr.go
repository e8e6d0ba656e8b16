package httperr

import (
	"net/http"

	"drop-arbiter/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const internalMessage = "Internal server error"

type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status, Error: msg}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps an error class to its status; unclassified errors become 500
// without leaking their message.
func Abort(c *gin.Context, err error) {
	status := StatusOf(err)
	msg := internalMessage
	if status != http.StatusInternalServerError {
		msg = err.Error()
	}
	AbortWithError(c, status, err, msg)
}

func StatusOf(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
