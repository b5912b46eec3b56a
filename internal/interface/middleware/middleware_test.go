package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/recetario-api/pkg/helpers"
)

func init() { gin.SetMode(gin.TestMode) }

func TestBearerAuth(t *testing.T) {
	jwt := helpers.NewJWTManager("mw-secret", time.Hour)
	valid, _, err := jwt.Issue("u1", "ana@example.com")
	require.NoError(t, err)
	foreign, _, err := helpers.NewJWTManager("other", time.Hour).Issue("u1", "ana@example.com")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/me", BearerAuth(jwt), func(c *gin.Context) {
		c.String(http.StatusOK, UserID(c)+"|"+c.GetString(CtxUserEmailKey))
	})

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"valid", "Bearer " + valid, http.StatusOK, "u1|ana@example.com"},
		{"lowercase scheme", "bearer " + valid, http.StatusOK, "u1|ana@example.com"},
		{"missing", "", http.StatusUnauthorized, `{"message":"authentication failed"}`},
		{"no token", "Bearer ", http.StatusUnauthorized, `{"message":"authentication failed"}`},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized, `{"message":"authentication failed"}`},
		{"garbage", "Bearer abc.def.ghi", http.StatusUnauthorized, `{"message":"authentication failed"}`},
		{"wrong secret", "Bearer " + foreign, http.StatusUnauthorized, `{"message":"authentication failed"}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.body, w.Body.String())
		})
	}
}

func TestRealIP(t *testing.T) {
	r := gin.New()
	r.GET("/", RealIP(), func(c *gin.Context) { c.String(http.StatusOK, c.GetString(CtxRealIPKey)) })

	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"cloudflare", map[string]string{"CF-Connecting-IP": "203.0.113.7", "X-Forwarded-For": "198.51.100.1"}, "203.0.113.7"},
		{"forwarded", map[string]string{"X-Forwarded-For": "198.51.100.1, 10.0.0.1"}, "198.51.100.1"},
		{"invalid header", map[string]string{"CF-Connecting-IP": "nope"}, "192.0.2.1"},
		{"none", nil, "192.0.2.1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Body.String())
		})
	}
}

func TestAllowPrivateIP(t *testing.T) {
	allow := AllowPrivateIP()
	for ip, want := range map[string]bool{
		"127.0.0.1":   true,
		"10.1.2.3":    true,
		"192.168.0.9": true,
		"8.8.8.8":     false,
		"garbage":     false,
	} {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Set(CtxRealIPKey, ip)
		assert.Equal(t, want, allow(c), ip)
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.GET("/", RequestID(), func(c *gin.Context) { c.String(http.StatusOK, c.GetString(CtxRequestIDKey)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(w.Body.String())
	require.NoError(t, err)
	assert.Equal(t, w.Body.String(), w.Header().Get(HeaderRequestID))

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, incoming)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, incoming, w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "<script>")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "<script>", w.Body.String())
}

func TestRateLimit_DisabledAndFailOpen(t *testing.T) {
	unreachable := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = unreachable.Close() })

	for name, mw := range map[string]gin.HandlerFunc{
		"nil client": RateLimit(nil, 1, time.Minute, KeyByIP(), nil),
		"fail open":  RateLimit(unreachable, 1, time.Minute, KeyByIP(), nil),
	} {
		t.Run(name, func(t *testing.T) {
			r := gin.New()
			r.GET("/", mw, func(c *gin.Context) { c.Status(http.StatusNoContent) })
			for i := 0; i < 3; i++ {
				w := httptest.NewRecorder()
				r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
				assert.Equal(t, http.StatusNoContent, w.Code)
			}
		})
	}
}

func TestKeyFuncs(t *testing.T) {
	r := gin.New()
	var keys []string
	r.GET("/recetas/:id", RealIP(), func(c *gin.Context) {
		keys = []string{KeyByIP()(c), KeyByIPAndPath()(c), KeyByUserID()(c)}
		c.Set(CtxUserIDKey, "u1")
		keys = append(keys, KeyByUserID()(c))
	})
	req := httptest.NewRequest(http.MethodGet, "/recetas/42", nil)
	req.Header.Set("X-Forwarded-For", "198.51.100.1")
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, []string{
		"rl:ip:198.51.100.1",
		"rl:path:/recetas/:id:ip:198.51.100.1",
		"rl:user:anon:ip:198.51.100.1",
		"rl:user:u1",
	}, keys)
}
