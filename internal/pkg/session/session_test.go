package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appAuth "github.com/yigit/collegeportal/internal/app/auth"
	"github.com/yigit/collegeportal/internal/app/models"
)

func newEngine(t *testing.T, storeKind string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := NewStore(Options{Secret: "test-secret-test-secret-test-sec", Store: storeKind, MaxAge: 3600})
	require.NoError(t, err)

	r := gin.New()
	r.Use(Middleware("test_session", store))
	r.GET("/login", func(c *gin.Context) {
		_ = Establish(c, appAuth.Identity{UserID: 42, UserType: models.RoleStudent, Username: "ann"})
		c.Status(http.StatusNoContent)
	})
	r.GET("/rename", func(c *gin.Context) {
		_ = SetUsername(c, "ann_b")
		c.Status(http.StatusNoContent)
	})
	r.GET("/logout", func(c *gin.Context) {
		_ = Destroy(c)
		c.Status(http.StatusNoContent)
	})
	r.GET("/whoami", func(c *gin.Context) {
		id := Current(c)
		c.String(http.StatusOK, "%d|%s|%s", id.UserID, id.UserType, id.Username)
	})
	return r
}

func do(r http.Handler, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSessionRoundTrip(t *testing.T) {
	for _, kind := range []string{"cookie", "memory"} {
		t.Run(kind, func(t *testing.T) {
			r := newEngine(t, kind)

			assert.Equal(t, "0||", do(r, "/whoami", nil).Body.String())

			cookies := do(r, "/login", nil).Result().Cookies()
			require.NotEmpty(t, cookies)
			assert.Equal(t, "42|student|ann", do(r, "/whoami", cookies).Body.String())

			if renamed := do(r, "/rename", cookies).Result().Cookies(); len(renamed) > 0 {
				cookies = renamed
			}
			assert.Equal(t, "42|student|ann_b", do(r, "/whoami", cookies).Body.String())

			logout := do(r, "/logout", cookies)
			if cleared := logout.Result().Cookies(); len(cleared) > 0 {
				cookies = cleared
			}
			assert.Equal(t, "0||", do(r, "/whoami", cookies).Body.String())
		})
	}
}

func TestMemoryStoreIssuesNewIDOnLogin(t *testing.T) {
	r := newEngine(t, "memory")

	first := do(r, "/login", nil).Result().Cookies()
	require.NotEmpty(t, first)

	// logging in again while holding the first id must not keep it alive
	second := do(r, "/login", first).Result().Cookies()
	require.NotEmpty(t, second)
	assert.NotEqual(t, first[0].Value, second[0].Value)

	assert.Equal(t, "0||", do(r, "/whoami", first).Body.String())
	assert.Equal(t, "42|student|ann", do(r, "/whoami", second).Body.String())
}

func TestNewStoreRejectsUnknownKind(t *testing.T) {
	_, err := NewStore(Options{Secret: "s", Store: "redis"})
	assert.Error(t, err)
}
