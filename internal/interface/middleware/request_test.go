package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, RequestID(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(w.Body.String())
	require.NoError(t, err)
	assert.Equal(t, w.Body.String(), w.Header().Get(headerRequestID))

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(headerRequestID, incoming)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, incoming, w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(headerRequestID, "<script>")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "<script>", w.Body.String())
}

func TestRealIP(t *testing.T) {
	cases := []struct {
		name     string
		proxies  []string
		platform string
		headers  map[string]string
		want     string
	}{
		{"untrusted peer ignores forwarding headers", nil, "",
			map[string]string{"X-Forwarded-For": "1.1.1.1", "CF-Connecting-IP": "198.51.100.9"}, "192.0.2.10"},
		{"trusted proxy", []string{"192.0.2.0/24"}, "",
			map[string]string{"X-Forwarded-For": "203.0.113.1"}, "203.0.113.1"},
		{"trusted proxy chain stops at first untrusted hop", []string{"192.0.2.0/24"}, "",
			map[string]string{"X-Forwarded-For": "203.0.113.1, 198.51.100.4"}, "198.51.100.4"},
		{"cloudflare", nil, "cloudflare",
			map[string]string{"CF-Connecting-IP": "198.51.100.9", "X-Forwarded-For": "203.0.113.1"}, "198.51.100.9"},
		{"peer", nil, "", nil, "192.0.2.10"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			require.NoError(t, TrustProxies(r, tc.proxies, tc.platform))
			r.Use(RealIP())
			r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, ClientIP(c)) })

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "192.0.2.10:5555"
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Body.String())
		})
	}
}

func TestTrustProxies_InvalidEntry(t *testing.T) {
	assert.Error(t, TrustProxies(gin.New(), []string{"not-an-ip"}, ""))
}

func TestAccessLog(t *testing.T) {
	logger, hook := test.NewNullLogger()
	r := gin.New()
	r.Use(RequestIDMiddleware(), AccessLog(logger))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/bad", func(c *gin.Context) {
		_ = c.Error(assert.AnError).SetType(gin.ErrorTypeBind).SetMeta(map[string]string{"payload": "invalid json"})
		c.Status(http.StatusBadRequest)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok?query=secret", nil))
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "/ok", entry.Data["path"])
	assert.Equal(t, http.StatusOK, entry.Data["status"])
	assert.NotEmpty(t, entry.Data["request_id"])

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.NotContains(t, hook.LastEntry().Data, "details")

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/bad", nil))
	assert.Equal(t, map[string]string{"payload": "invalid json"}, hook.LastEntry().Data["details"])
}
