package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/domain"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/middleware"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return token
}

type envelope struct {
	Ok    bool `json:"ok"`
	Error struct {
		Code string `json:"code"`
	} `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestAuthMiddleware(t *testing.T) {
	newRouter := func() *gin.Engine {
		r := gin.New()
		r.GET("/me", middleware.AuthMiddleware(testSecret), func(c *gin.Context) {
			actor := middleware.ActorFrom(c)
			c.JSON(http.StatusOK, gin.H{"user_id": actor.UserID, "role": actor.Role})
		})
		return r
	}

	t.Run("valid token exposes actor", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"user_id": "u-1", "role": domain.RoleManager, "exp": time.Now().Add(time.Hour).Unix()})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":"u-1","role":"manager"}`, w.Body.String())
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "UNAUTHORIZED", decode(t, w).Error.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"user_id": "u-1", "role": "manager", "exp": time.Now().Add(-time.Hour).Unix()})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})

		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "TOKEN_EXPIRED", decode(t, w).Error.Code)
	})

	t.Run("missing role claim", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"user_id": "u-1"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "INVALID_TOKEN", decode(t, w).Error.Code)
	})
}

type fakeRBAC struct {
	allowed bool
	got     domain.EnforceRequest
}

func (f *fakeRBAC) Enforce(req domain.EnforceRequest) (bool, error) {
	f.got = req
	return f.allowed, nil
}

func TestRBACAuthorize(t *testing.T) {
	run := func(rbac *fakeRBAC, role string) *httptest.ResponseRecorder {
		r := gin.New()
		r.GET("/wages", func(c *gin.Context) {
			c.Set(middleware.ContextRole, role)
			c.Next()
		}, middleware.RBACAuthorize(rbac, "wage", "read"), func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/wages", nil))
		return w
	}

	t.Run("allowed", func(t *testing.T) {
		rbac := &fakeRBAC{allowed: true}
		w := run(rbac, domain.RoleAccountant)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, domain.EnforceRequest{Role: "accountant", Resource: "wage", Action: "read"}, rbac.got)
	})

	t.Run("forbidden", func(t *testing.T) {
		w := run(&fakeRBAC{allowed: false}, domain.RoleEngineer)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "FORBIDDEN", decode(t, w).Error.Code)
	})

	t.Run("no role", func(t *testing.T) {
		w := run(&fakeRBAC{allowed: true}, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestIdempotency(t *testing.T) {
	const ttl = 24 * time.Hour

	newRouter := func(handlerCalls *int) (*gin.Engine, redismock.ClientMock) {
		rdb, mock := redismock.NewClientMock()
		r := gin.New()
		r.POST("/wages/generate", func(c *gin.Context) {
			c.Set(middleware.ContextUserID, "u-1")
			c.Next()
		}, middleware.Idempotency(rdb, ttl), func(c *gin.Context) {
			*handlerCalls++
			c.Data(http.StatusCreated, "application/json", []byte(`{"ok":true}`))
		})
		return r, mock
	}
	cacheKey := middleware.IdempotencyCacheKey("/wages/generate", "u-1", "key-1")

	t.Run("first call stores response", func(t *testing.T) {
		calls := 0
		r, mock := newRouter(&calls)
		payload, _ := json.Marshal(middleware.CachedResponse{Status: http.StatusCreated, Body: json.RawMessage(`{"ok":true}`)})

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(cacheKey, payload, ttl).SetVal("OK")
		mock.ExpectDel(cacheKey + ":lock").SetVal(1)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/wages/generate", nil)
		req.Header.Set(middleware.HeaderIdempotencyKey, "key-1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("replay skips handler", func(t *testing.T) {
		calls := 0
		r, mock := newRouter(&calls)
		payload, _ := json.Marshal(middleware.CachedResponse{Status: http.StatusCreated, Body: json.RawMessage(`{"ok":true}`)})

		mock.ExpectGet(cacheKey).SetVal(string(payload))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/wages/generate", nil)
		req.Header.Set(middleware.HeaderIdempotencyKey, "key-1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
		assert.Equal(t, 0, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("in-flight duplicate is rejected", func(t *testing.T) {
		calls := 0
		r, mock := newRouter(&calls)

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/wages/generate", nil)
		req.Header.Set(middleware.HeaderIdempotencyKey, "key-1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, 0, calls)
	})

	t.Run("no header passes through", func(t *testing.T) {
		calls := 0
		r, mock := newRouter(&calls)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/wages/generate", nil))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRequestID(t *testing.T) {
	tests := map[string]struct {
		header string
		keep   bool
	}{
		"caller id kept":         {header: "mr-approval.42", keep: true},
		"missing id generated":   {header: ""},
		"oversized id replaced":  {header: strings.Repeat("a", 65)},
		"control chars replaced": {header: "abc\ninjected=1"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var seen string
			r := gin.New()
			r.Use(middleware.RequestID())
			r.GET("/", func(c *gin.Context) {
				seen = contextutil.GetRequestID(c.Request.Context())
				c.Status(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set(middleware.HeaderRequestID, tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, seen, w.Header().Get(middleware.HeaderRequestID))
			if tc.keep {
				assert.Equal(t, tc.header, seen)
				return
			}
			_, err := uuid.Parse(seen)
			assert.NoError(t, err)
		})
	}
}
