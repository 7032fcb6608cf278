package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/channel-console/internal/logger"
	"github.com/MKhiriev/channel-console/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Helpers ----

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return NewHandler(logger.Nop()).Init()
}

func doRequest(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeTo[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	dec := json.NewDecoder(rr.Body)
	dec.UseNumber()
	require.NoError(t, dec.Decode(&out))
	return out
}

// ---- Channels ----

func TestChannels_CRUD(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodPost, "/channels/",
		`{"name":"Ops","type":"slack","config":{"bot_token":"x","retries":3}}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	created := decodeTo[map[string]any](t, rr)
	assert.Equal(t, json.Number("1"), created["id"])
	assert.Equal(t, map[string]any{"bot_token": "x", "retries": json.Number("3")}, created["config"])

	rr = doRequest(t, router, http.MethodPut, "/channels/1", `{"name":"Ops 2","type":"slack","config":null}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Nil(t, decodeTo[map[string]any](t, rr)["config"])

	rr = doRequest(t, router, http.MethodGet, "/channels/1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Ops 2", decodeTo[map[string]any](t, rr)["name"])

	rr = doRequest(t, router, http.MethodDelete, "/channels/1", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Zero(t, rr.Body.Len())

	rr = doRequest(t, router, http.MethodGet, "/channels/1", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"detail":"Channel not found"}`, rr.Body.String())
}

func TestChannels_ValidationDetail(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodPost, "/channels/", `{"name":"","type":""}`)

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.JSONEq(t, `{"detail":[
		{"loc":["body","name"],"msg":"Field required","type":"missing"},
		{"loc":["body","type"],"msg":"Field required","type":"missing"}
	]}`, rr.Body.String())
}

func TestChannels_ListSearchAndPaging(t *testing.T) {
	router := newTestRouter(t)
	for _, name := range []string{"alpha", "beta", "alphabet", "gamma"} {
		rr := doRequest(t, router, http.MethodPost, "/channels/", `{"name":"`+name+`","type":"other"}`)
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	rr := doRequest(t, router, http.MethodGet, "/channels/?search=ALPHA", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decodeTo[[]map[string]any](t, rr), 2)

	rr = doRequest(t, router, http.MethodGet, "/channels/?skip=1&limit=2", "")
	page := decodeTo[[]map[string]any](t, rr)
	require.Len(t, page, 2)
	assert.Equal(t, "beta", page[0]["name"])
	assert.Equal(t, "alphabet", page[1]["name"])

	rr = doRequest(t, router, http.MethodGet, "/channels/?skip=10", "")
	assert.Equal(t, "[]", strings.TrimSpace(rr.Body.String()))

	rr = doRequest(t, router, http.MethodGet, "/channels/?limit=many", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

// ---- Users and mappings ----

func TestUserChannels_FiltersAndCascade(t *testing.T) {
	router := newTestRouter(t)

	require.Equal(t, http.StatusCreated, doRequest(t, router, http.MethodPost, "/users/", `{"name":"Ann","email":"ann@example.com"}`).Code)
	require.Equal(t, http.StatusCreated, doRequest(t, router, http.MethodPost, "/users/", `{"name":"Bob"}`).Code)
	require.Equal(t, http.StatusCreated, doRequest(t, router, http.MethodPost, "/channels/", `{"name":"Mail","type":"gmail"}`).Code)
	require.Equal(t, http.StatusCreated, doRequest(t, router, http.MethodPost, "/channels/", `{"name":"WA","type":"whatsapp"}`).Code)

	// ids: users 1,2 channels 3,4
	require.Equal(t, http.StatusCreated, doRequest(t, router, http.MethodPost, "/user-channels/",
		`{"user_id":1,"channel_id":3,"contact_details":{"email":"ann@example.com"},"is_preferred":true}`).Code)
	require.Equal(t, http.StatusCreated, doRequest(t, router, http.MethodPost, "/user-channels/",
		`{"user_id":1,"channel_id":4,"contact_details":{"phone":"+1"}}`).Code)
	require.Equal(t, http.StatusCreated, doRequest(t, router, http.MethodPost, "/user-channels/",
		`{"user_id":2,"channel_id":4,"contact_details":{"phone":"+2"}}`).Code)

	rr := doRequest(t, router, http.MethodGet, "/user-channels/?user_id=1", "")
	assert.Len(t, decodeTo[[]map[string]any](t, rr), 2)

	rr = doRequest(t, router, http.MethodGet, "/user-channels/?channel_type=WhatsApp", "")
	assert.Len(t, decodeTo[[]map[string]any](t, rr), 2)

	rr = doRequest(t, router, http.MethodPost, "/user-channels/", `{"user_id":1,"channel_id":3,"contact_details":{}}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doRequest(t, router, http.MethodPost, "/user-channels/", `{"user_id":9,"channel_id":3,"contact_details":{}}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"detail":"User not found"}`, rr.Body.String())

	require.Equal(t, http.StatusNoContent, doRequest(t, router, http.MethodDelete, "/channels/4", "").Code)
	rr = doRequest(t, router, http.MethodGet, "/user-channels/", "")
	assert.Len(t, decodeTo[[]map[string]any](t, rr), 1)
}

func TestUsers_EmailRules(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodPost, "/users/", `{"email":"nope"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	require.Equal(t, http.StatusCreated, doRequest(t, router, http.MethodPost, "/users/", `{"email":"a@b.com"}`).Code)
	rr = doRequest(t, router, http.MethodPost, "/users/", `{"email":"A@b.com"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"detail":"Email already registered"}`, rr.Body.String())

	rr = doRequest(t, router, http.MethodPut, "/users/1", `{"name":"Ann","email":"a@b.com"}`)
	assert.Equal(t, http.StatusOK, rr.Code)
}

// ---- Routing ----

func TestRouting_Errors(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodPatch, "/users/1", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.JSONEq(t, `{"detail":"Method Not Allowed"}`, rr.Body.String())
	assert.ElementsMatch(t, []string{http.MethodGet, http.MethodPut, http.MethodDelete}, rr.Header().Values("Allow"))

	rr = doRequest(t, router, http.MethodGet, "/nowhere", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"detail":"Not Found"}`, rr.Body.String())

	rr = doRequest(t, router, http.MethodGet, "/users/abc", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	rr = doRequest(t, router, http.MethodPost, "/users/", `{"name":`)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

// ---- Middleware ----

func TestWithRequestID(t *testing.T) {
	tests := []struct {
		name      string
		requestID string
	}{
		{name: "request id from header is reused", requestID: "my-request-id"},
		{name: "no request id, one is generated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: logger.Nop()}
			var seen string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = utils.GetRequestIDFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.requestID != "" {
				req.Header.Set(utils.RequestIDHeader, tt.requestID)
			}
			rr := httptest.NewRecorder()
			h.withRequestID(next).ServeHTTP(rr, req)

			got := rr.Header().Get(utils.RequestIDHeader)
			assert.NotEmpty(t, got)
			assert.Equal(t, got, seen)
			if tt.requestID != "" {
				assert.Equal(t, tt.requestID, got)
			}
		})
	}
}

func TestWithLogging_WritesAccessLog(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.New(&buf, "fakeapi")}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("ok"))
	})

	req := httptest.NewRequest(http.MethodPost, "/users/", nil)
	req.Header.Set(utils.RequestIDHeader, "rid-1")
	h.withRequestID(h.withLogging(next)).ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, `"method":"POST"`)
	assert.Contains(t, out, `"uri":"/users/"`)
	assert.Contains(t, out, `"status":201`)
	assert.Contains(t, out, `"size":2`)
	assert.Contains(t, out, `"request_id":"rid-1"`)
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte("abc"))

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, 3, w.size)
}
