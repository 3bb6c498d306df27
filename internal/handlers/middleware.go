package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	ctxRequestID    = "requestId"

	maxRequestIDLen = 128 // bytes; longer incoming ids are replaced
)

// requestLogger tags the request with an id and logs it once it completes.
func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()

	id := c.GetHeader(requestIDHeader)
	if id == "" || len(id) > maxRequestIDLen {
		id = uuid.NewString()
	}
	c.Set(ctxRequestID, id)
	c.Header(requestIDHeader, id)

	c.Next()

	if h.log == nil {
		return
	}
	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}
	h.log.Infow("http_request",
		"request_id", id,
		"method", c.Request.Method,
		"route", route,
		"status", c.Writer.Status(),
		"latency", time.Since(start),
		"client_ip", c.ClientIP(),
	)
}

func requestID(c *gin.Context) string {
	return c.GetString(ctxRequestID)
}
