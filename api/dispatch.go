package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Dispatch runs the whole pipeline for one request: normalize, resolve
// the handler from the route table, invoke it inside the failure
// boundary and encode whatever came back.
func (a *API) Dispatch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	req := Normalize(c.Request)
	h := a.Routes.Resolve(req.Path)

	resp, err := invoke(h, req)
	if err != nil {
		status := http.StatusInternalServerError
		msg := "Internal server error"

		var apiErr *Error
		if errors.As(err, &apiErr) {
			status = apiErr.Status
			msg = apiErr.Message
		}

		if msg == "" {
			c.JSON(status, gin.H{})
			return
		}

		c.JSON(status, gin.H{
			"error":     msg,
			"requestID": requestID,
		})
		return
	}

	writeResponse(c, resp)
}

// invoke guards the handler's own call frame. A panic raised there
// becomes a plain 500; panics on goroutines a handler spawns are
// outside the boundary and will take the process down.
func invoke(h Handler, r *Request) (resp *Response, err error) {
	defer func() {
		if p := recover(); p != nil {
			zap.L().Error("Handler panicked",
				zap.Any("panic", p),
				zap.String("path", r.Path),
				zap.String("method", r.Method))

			resp = nil
			err = errInternal("Internal server error")
		}
	}()

	return h(r)
}
