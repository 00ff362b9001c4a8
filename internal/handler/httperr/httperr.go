package httperr

import (
	"net/http"

	"gin-voucher-shop/internal/pkg/errs"

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

type category struct {
	marker error
	status int
	msg    string
}

// Order matters: an error carrying several markers takes the first match.
var categories = []category{
	{errs.ErrUnauthenticated, http.StatusUnauthorized, "Unauthorized"},
	{errs.ErrInvalidInput, http.StatusBadRequest, "Invalid request"},
	{errs.ErrNotFound, http.StatusNotFound, "Not found"},
	{errs.ErrWindowViolation, http.StatusUnprocessableEntity, "Outside the sale window"},
	{errs.ErrStockExhausted, http.StatusConflict, "Sold out"},
	{errs.ErrAlreadyPurchased, http.StatusConflict, "Already purchased"},
	{errs.ErrLockContention, http.StatusTooManyRequests, "Request already in progress"},
	{errs.ErrTransientStore, http.StatusServiceUnavailable, "Service temporarily unavailable"},
}

// Classify maps an error category to its status code and a default message.
func Classify(err error) (int, string) {
	for _, cat := range categories {
		if errs.Is(err, cat.marker) {
			return cat.status, cat.msg
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

// Abort responds with the status derived from err. A non-empty msg replaces
// the category message.
func Abort(c *gin.Context, err error, msg string) {
	status, fallback := Classify(err)
	if msg == "" || status == http.StatusInternalServerError {
		msg = fallback
	}
	AbortWithError(c, status, err, msg, nil)
}
