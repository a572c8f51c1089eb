package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"study-tracker/internal/model"
	pkgLog "study-tracker/pkg/log"
)

func newTestEngine(mw Middleware, seen *model.Scope) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.Scope())
	r.GET("/", mw.RateLimit(), func(c *gin.Context) {
		*seen = model.GetScopeFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})
	return r
}

func TestScope(t *testing.T) {
	var seen model.Scope
	r := newTestEngine(New(pkgLog.NewNop(), 0), &seen)

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"explicit user", "alice", "alice"},
		{"trimmed", "  bob ", "bob"},
		{"missing header", "", model.DefaultUserID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(UserIDHeader, tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, seen.UserID)
		})
	}
}

func TestRateLimit(t *testing.T) {
	var seen model.Scope
	// 10 per minute gives a burst of one.
	r := newTestEngine(New(pkgLog.NewNop(), 10), &seen)

	do := func(user string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(UserIDHeader, user)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do("alice"))
	assert.Equal(t, http.StatusTooManyRequests, do("alice"))
	assert.Equal(t, http.StatusOK, do("bob"), "limits are per caller")
}

func TestRateLimiter_ConcurrentFirstRequests(t *testing.T) {
	// 10 per minute gives a burst of one; the next token is 6s away.
	rl := newRateLimiter(10)

	var (
		wg      sync.WaitGroup
		allowed atomic.Int32
		start   = make(chan struct{})
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if rl.Allow("alice|10.0.0.1") {
				allowed.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), allowed.Load(), "a new caller shares one bucket")
}
