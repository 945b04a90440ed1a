package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-comp/internal/middleware"
	"go-comp/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Tenant())
	return r
}

func TestTenant(t *testing.T) {
	companyID := uuid.NewString()

	r := newEngine()
	r.GET("/whoami", func(c *gin.Context) {
		ctx := c.Request.Context()
		c.JSON(http.StatusOK, gin.H{
			"company": contextutil.GetCompanyID(ctx),
			"actor":   contextutil.GetActorID(ctx),
			"request": contextutil.GetRequestID(ctx) != "",
		})
	})

	t.Run("missing company header", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "X-Company-ID header is required")
	})

	t.Run("malformed company header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(middleware.HeaderCompanyID, "acme")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("actor defaults to user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(middleware.HeaderCompanyID, companyID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"company":"`+companyID+`","actor":"user","request":true}`, w.Body.String())
		assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
	})

	t.Run("explicit actor and request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(middleware.HeaderCompanyID, companyID)
		req.Header.Set(middleware.HeaderActorID, "priya")
		req.Header.Set(middleware.HeaderRequestID, "req-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Contains(t, w.Body.String(), `"actor":"priya"`)
		assert.Equal(t, "req-1", w.Header().Get(middleware.HeaderRequestID))
	})
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, contextutil.GetRequestID(c.Request.Context()))
	})

	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{name: "printable id is kept", header: "batch-2026-10/42", keep: true},
		{name: "too long id is replaced", header: strings.Repeat("a", 65)},
		{name: "id with spaces is replaced", header: "two words"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header.Set(middleware.HeaderRequestID, tt.header)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			got := w.Header().Get(middleware.HeaderRequestID)
			assert.Equal(t, got, w.Body.String())
			if tt.keep {
				assert.Equal(t, tt.header, got)
				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestRateLimitByActor(t *testing.T) {
	companyID := uuid.NewString()

	r := newEngine()
	r.GET("/limited", middleware.RateLimitByActor(0.001, 1), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	call := func(actor string) int {
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		req.Header.Set(middleware.HeaderCompanyID, companyID)
		req.Header.Set(middleware.HeaderActorID, actor)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, call("a"))
	assert.Equal(t, http.StatusTooManyRequests, call("a"))
	assert.Equal(t, http.StatusNoContent, call("b"))
}

func TestIdempotency(t *testing.T) {
	companyID := uuid.NewString()
	cacheKey := "idemp:/release:" + companyID + ":user:key-1"
	lockKey := cacheKey + ":lock"
	body := `{"released":true}`

	newRouter := func(calls *int, status int) (*gin.Engine, redismock.ClientMock) {
		rdb, mock := redismock.NewClientMock()
		r := newEngine()
		r.POST("/release", middleware.Idempotency(rdb, nil), func(c *gin.Context) {
			*calls++
			c.JSON(status, gin.H{"released": status == http.StatusOK})
		})
		return r, mock
	}

	post := func(r *gin.Engine, key string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/release", nil)
		req.Header.Set(middleware.HeaderCompanyID, companyID)
		if key != "" {
			req.Header.Set(middleware.HeaderIdempotencyKey, key)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("first request stores the response", func(t *testing.T) {
		calls := 0
		r, mock := newRouter(&calls, http.StatusOK)
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(cacheKey, []byte(body), 24*time.Hour).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)

		w := post(r, "key-1")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("replay skips the handler", func(t *testing.T) {
		calls := 0
		r, mock := newRouter(&calls, http.StatusOK)
		mock.ExpectGet(cacheKey).SetVal(body)

		w := post(r, "key-1")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 0, calls)
		assert.JSONEq(t, body, w.Body.String())
		assert.Equal(t, "true", w.Header().Get("Idempotent-Replay"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("in flight duplicate is rejected", func(t *testing.T) {
		calls := 0
		r, mock := newRouter(&calls, http.StatusOK)
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(false)

		w := post(r, "key-1")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "PROCESSING")
		assert.Equal(t, 0, calls)
	})

	t.Run("failed response is not stored", func(t *testing.T) {
		calls := 0
		r, mock := newRouter(&calls, http.StatusUnprocessableEntity)
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
		mock.ExpectDel(lockKey).SetVal(1)

		w := post(r, "key-1")

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no key passes through", func(t *testing.T) {
		calls := 0
		r, mock := newRouter(&calls, http.StatusOK)

		w := post(r, "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
