package response

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "item-api/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data wrapped in the envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Raw sends 200 JSON with data as the whole body.
func Raw(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// NewErrorResp builds the envelope for an HTTPError.
func NewErrorResp(err *pkgErrors.HTTPError) Resp {
	resp := Resp{
		ErrorCode: err.StatusCode,
		Message:   err.Message,
	}
	if len(err.Details) > 0 {
		resp.Errors = err.Details
	}
	return resp
}

// Error sends err with its own status when it is an *HTTPError, 500 otherwise.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if stderrors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, NewErrorResp(httpErr))
		return
	}
	InternalError(c, err)
}

// AbortWithError is Error for middleware: it stops the handler chain.
func AbortWithError(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}
