package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"aura/pkg/utils"
)

const TraceIDHeader = "X-Trace-ID"

// TraceIDMiddleware keeps a caller-supplied trace id when it is a UUID and
// mints one otherwise.
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(TraceIDHeader)
		if _, err := uuid.Parse(traceID); err != nil {
			traceID = uuid.New().String()
		}
		c.Set(utils.TraceIDKey, traceID)
		c.Writer.Header().Set(TraceIDHeader, traceID)
		c.Next()
	}
}
