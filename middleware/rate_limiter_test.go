package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func contextWithRequest(headers map[string]string, remoteAddr string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = remoteAddr
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	return c
}

func TestClientIP(t *testing.T) {
	c := contextWithRequest(map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, "10.0.0.2:1234")
	assert.Equal(t, "203.0.113.7", clientIP(c))

	c = contextWithRequest(map[string]string{"X-Real-IP": " 203.0.113.9 "}, "10.0.0.2:1234")
	assert.Equal(t, "203.0.113.9", clientIP(c))

	c = contextWithRequest(nil, "10.0.0.2:1234")
	assert.Equal(t, "10.0.0.2", clientIP(c))

	c = contextWithRequest(nil, "10.0.0.3")
	assert.Equal(t, "10.0.0.3", clientIP(c))
}
