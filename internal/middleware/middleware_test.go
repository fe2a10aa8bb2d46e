package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func teapot(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusTeapot)
}

func TestWrapOrder(t *testing.T) {
	var order []string
	tag := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Wrap(http.HandlerFunc(teapot), tag("inner"), tag("outer"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestLogging(t *testing.T) {
	log, hook := test.NewNullLogger()
	h := Logging(log)(http.HandlerFunc(teapot))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/play?width=3", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "handled request", entry.Message)
	assert.Equal(t, http.StatusTeapot, entry.Data["statusCode"])
	assert.Equal(t, "/play?width=3", entry.Data["uri"])
	assert.Equal(t, false, entry.Data["hijacked"])
}

func TestCors(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")

	rec := httptest.NewRecorder()
	Cors(true)(ok).ServeHTTP(rec, req)
	assert.Equal(t, "http://example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	Cors(false, "http://mines.example")(ok).ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	req.Header.Set("Origin", "http://mines.example")
	rec = httptest.NewRecorder()
	Cors(false, "http://mines.example")(ok).ServeHTTP(rec, req)
	assert.Equal(t, "http://mines.example", rec.Header().Get("Access-Control-Allow-Origin"))
}
