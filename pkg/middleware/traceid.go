package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// TraceIDMiddleware assigns each request a trace id, echoes it in the
// X-Trace-ID header, and seeds a request-scoped log entry carrying it.
func TraceIDMiddleware(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := uuid.New().String()
		c.Set("trace_id", traceID)
		c.Set("log_entry", logger.WithFields(logrus.Fields{
			"trace_id": traceID,
			"method":   c.Request.Method,
			"path":     c.FullPath(),
		}))
		c.Writer.Header().Set("X-Trace-ID", traceID)
		c.Next()
	}
}

// RequestLogger returns the trace-scoped entry seeded by
// TraceIDMiddleware, or a bare entry when none is present.
func RequestLogger(c *gin.Context) *logrus.Entry {
	if entry, ok := c.Get("log_entry"); ok {
		if e, ok := entry.(*logrus.Entry); ok {
			return e
		}
	}
	return logrus.NewEntry(logrus.StandardLogger())
}
