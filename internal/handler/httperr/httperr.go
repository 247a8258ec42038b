package httperr

import (
	"net/http"

	"preloved-market/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	CodeInternal   = "INTERNAL_ERROR"
	codeBadRequest = "BAD_REQUEST"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

var kindStatus = map[errs.Kind]int{
	errs.KindNotFound:           http.StatusNotFound,
	errs.KindNotAuthorized:      http.StatusForbidden,
	errs.KindInvalidState:       http.StatusConflict,
	errs.KindCapacityExceeded:   http.StatusConflict,
	errs.KindAlreadyExists:      http.StatusConflict,
	errs.KindValidationFailed:   http.StatusBadRequest,
	errs.KindTransient:          http.StatusServiceUnavailable,
	errs.KindCompensationFailed: http.StatusInternalServerError,
}

// StatusOf maps an error kind to its HTTP status; unknown kinds are 500.
func StatusOf(kind errs.Kind) int {
	if status, ok := kindStatus[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, code, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Code = code
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort renders a use-case error with its stable code. Errors outside the taxonomy
// never leak their message.
func Abort(c *gin.Context, err error) {
	code := errs.CodeOf(err)
	if code == "" {
		AbortWithError(c, http.StatusInternalServerError, err, CodeInternal, "Internal server error", nil)
		return
	}
	AbortWithError(c, StatusOf(errs.KindOf(err)), err, code, errs.Reason(err), nil)
}

func BadRequest(c *gin.Context, err error, msg string) {
	AbortWithError(c, http.StatusBadRequest, err, codeBadRequest, msg, bindingDetail(err))
}

func Unauthorized(c *gin.Context, err error, msg string) {
	AbortWithError(c, http.StatusUnauthorized, err, "UNAUTHENTICATED", msg, nil)
}
