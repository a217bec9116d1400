package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceIDMiddleware_SeedsHeaderAndLogEntry(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	r := gin.New()
	r.Use(TraceIDMiddleware(logger))

	var seenTraceID string
	var seenEntry *logrus.Entry
	r.GET("/ping", func(c *gin.Context) {
		seenTraceID = c.GetString("trace_id")
		seenEntry = RequestLogger(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	header := w.Header().Get("X-Trace-ID")
	require.NotEmpty(t, header)
	_, err := uuid.Parse(header)
	require.NoError(t, err)
	assert.Equal(t, header, seenTraceID)

	require.NotNil(t, seenEntry)
	assert.Equal(t, header, seenEntry.Data["trace_id"])
	assert.Equal(t, "/ping", seenEntry.Data["path"])
}

func TestRequestLogger_FallsBackWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.NotNil(t, RequestLogger(c))
}
