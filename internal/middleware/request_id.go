package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-Id"

// RequestIDMiddleware tags each request with an id, echoed in the response
// header, so server log lines can be matched to client reports.
func (m Middleware) RequestIDMiddleware(ctx *gin.Context) {
	requestID := ctx.GetHeader(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	ctx.Set("request_id", requestID)
	ctx.Header(RequestIDHeader, requestID)
	ctx.Next()
}
