package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/bilingua/internal/metrics"
	"github.com/aretw0/bilingua/internal/runtime"
	"github.com/aretw0/bilingua/pkg/adapters/memory"
	"github.com/aretw0/bilingua/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, left, right string) (http.Handler, *runtime.Store, *memory.Backend) {
	t.Helper()
	backend := memory.NewBackendWith(left, right)
	store, err := runtime.Open(context.Background(), backend)
	require.NoError(t, err)
	return NewHandler(store), store, backend
}

func do(t *testing.T, h http.Handler, method, target string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestGetHealth(t *testing.T) {
	h, _, _ := newTestHandler(t, "", "")
	rr := do(t, h, "GET", "/health", "")

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestGetInfo(t *testing.T) {
	h, _, _ := newTestHandler(t, "", "")
	rr := do(t, h, "GET", "/info", "")

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "bilingua-http", resp["app"])
	assert.NotEmpty(t, resp["version"])
	assert.Equal(t, "0.0.1", resp["api_version"])
}

func TestPointerEndpoints(t *testing.T) {
	h, store, backend := newTestHandler(t, "A\n\nB", "C\n\nD")

	rr := do(t, h, "GET", "/ptr", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "0", rr.Body.String())

	rr = do(t, h, "POST", "/ptr?n=1", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, store.Pointer())

	text, err := backend.LoadPointer(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1", text)

	rr = do(t, h, "GET", "/ptr", "")
	assert.JSONEq(t, "1", rr.Body.String())
}

func TestSetPointer_BadRequests(t *testing.T) {
	h, store, backend := newTestHandler(t, "A", "B")

	tests := []struct {
		name   string
		target string
	}{
		{"negative", "/ptr?n=-1"},
		{"missing", "/ptr"},
		{"not a number", "/ptr?n=abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, h, "POST", tt.target, "")
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, 0, store.Pointer())
		})
	}
	assert.Equal(t, 0, backend.Writes("ptr"))
}

func TestGetParagraphs(t *testing.T) {
	h, store, _ := newTestHandler(t, "L0\n\nL1", "R0")
	require.NoError(t, store.SetPointer(context.Background(), 1))

	tests := []struct {
		target string
		want   domain.ParagraphPair
	}{
		{"/pars", domain.ParagraphPair{Left: "L1"}},
		{"/pars?shift=0", domain.ParagraphPair{Left: "L1"}},
		{"/pars?shift=-1", domain.ParagraphPair{Left: "L0", Right: "R0"}},
		{"/pars?shift=5", domain.ParagraphPair{}},
	}
	for _, tt := range tests {
		rr := do(t, h, "GET", tt.target, "")
		require.Equal(t, http.StatusOK, rr.Code, tt.target)

		var got domain.ParagraphPair
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, tt.want, got, tt.target)
	}

	rr := do(t, h, "GET", "/pars?shift=x", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetParagraphs_EmptyFieldsAreSerialized(t *testing.T) {
	h, _, _ := newTestHandler(t, "", "")
	rr := do(t, h, "GET", "/pars", "")
	assert.JSONEq(t, `{"left":"","right":""}`, rr.Body.String())
}

func TestSaveParagraphs(t *testing.T) {
	h, store, backend := newTestHandler(t, "A\n\nB", "C\n\nD")

	rr := do(t, h, "POST", "/save", `{"left":"A2","right":"C"}`)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, domain.ParagraphPair{Left: "A2", Right: "C"}, store.Pair(0))
	assert.Equal(t, 1, backend.Writes("left"))
	assert.Equal(t, 0, backend.Writes("right"))

	rr = do(t, h, "POST", "/save", `{"left":`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// failingStore fails every mutation with an IO error.
type failingStore struct {
	*runtime.Store
}

func (f failingStore) SetPointer(ctx context.Context, n int) error {
	if n < 0 {
		return domain.ErrInvalidArgument
	}
	return domain.IOFailure("store pointer", errors.New("read-only file system"))
}

func (f failingStore) Save(ctx context.Context, pair domain.ParagraphPair) error {
	return domain.IOFailure("store left book", errors.New("read-only file system"))
}

func TestIOFailuresMapTo500(t *testing.T) {
	store, err := runtime.Open(context.Background(), memory.NewBackend())
	require.NoError(t, err)
	h := NewHandler(failingStore{store})

	rr := do(t, h, "POST", "/ptr?n=3", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "read-only", "filesystem details are not leaked")

	rr = do(t, h, "POST", "/ptr?n=-3", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, h, "POST", "/save", `{"left":"x","right":"y"}`)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestOpenAPIDocument(t *testing.T) {
	swagger, err := GetSwagger()
	require.NoError(t, err)
	assert.Equal(t, "Bilingua Server API", swagger.Info.Title)
	for _, path := range []string{"/ptr", "/pars", "/save"} {
		assert.NotNil(t, swagger.Paths.Find(path), path)
	}

	h, _, _ := newTestHandler(t, "", "")

	rr := do(t, h, "GET", "/openapi.yaml", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Bilingua Server API")

	rr = do(t, h, "GET", "/openapi.json", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &doc))
	assert.Equal(t, "3.0.3", doc["openapi"])

	rr = do(t, h, "GET", "/swagger", "")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	collectors := metrics.New()
	backend := memory.NewBackendWith("A", "B")
	store, err := runtime.Open(context.Background(), backend, runtime.WithHooks(collectors.Hooks(nil)))
	require.NoError(t, err)

	h := NewHandler(store, WithMetrics(collectors.Handler()))
	do(t, h, "POST", "/ptr?n=2", "")

	rr := do(t, h, "GET", "/metrics", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "bilingua_pointer 2")
	assert.Contains(t, rr.Body.String(), `bilingua_paragraphs{side="left"} 1`)

	rr = do(t, NewHandler(store), "GET", "/metrics", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCORSPreflight(t *testing.T) {
	h, _, _ := newTestHandler(t, "", "")
	rr := do(t, h, "OPTIONS", "/save", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}
