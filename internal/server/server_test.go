package server

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/types"
)

const sampleResume = `Jane Doe
jane.doe@example.com | (555) 123-4567 | San Francisco, CA

EXPERIENCE
Acme Corp - Senior Software Engineer
January 2020 - Present
Led migration of billing services to Go

EDUCATION
Bachelor of Science - Computer Science
Stanford University - 2016

SKILLS
Technical Skills: Go, Python
Soft Skills: Leadership
`

// fakeStore is an in-memory Store.
type fakeStore struct {
	mu      sync.Mutex
	results map[uuid.UUID]*db.ParseResult
	order   []uuid.UUID
}

func newFakeStore() *fakeStore {
	return &fakeStore{results: make(map[uuid.UUID]*db.ParseResult)}
}

func (f *fakeStore) SaveParseResult(_ context.Context, in *db.ParseResultInput) (*db.ParseResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	res := &db.ParseResult{
		ID:         uuid.New(),
		SourceName: in.SourceName,
		SourceHash: db.HashContent(in.SourceText),
		Record:     in.Record,
		Provenance: in.Provenance,
		Enhanced:   in.Enhanced,
		CreatedAt:  time.Now(),
	}
	f.results[res.ID] = res
	f.order = append(f.order, res.ID)
	return res, nil
}

func (f *fakeStore) GetParseResult(_ context.Context, id uuid.UUID) (*db.ParseResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.results[id], nil
}

func (f *fakeStore) ListParseResults(_ context.Context, limit, offset int) ([]db.ParseResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db.ParseResult
	for i := len(f.order) - 1 - offset; i >= 0 && len(out) < limit; i-- {
		out = append(out, *f.results[f.order[i]])
	}
	return out, nil
}

func (f *fakeStore) DeleteParseResult(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.results[id]; !ok {
		return false, nil
	}
	delete(f.results, id)
	return true, nil
}

func newTestServer(t *testing.T, store Store, maxUpload int64) *Server {
	t.Helper()
	s := NewWithStore(Config{
		MaxUploadBytes: maxUpload,
		Logger:         slog.New(slog.DiscardHandler),
	}, store)
	t.Cleanup(s.Close)
	return s
}

func do(t *testing.T, s *Server, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func uploadRequest(t *testing.T, filename string, content []byte, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/parse", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

type parseResponse struct {
	ID         *uuid.UUID          `json:"id"`
	Source     string              `json:"source"`
	Record     *types.ResumeRecord `json:"record"`
	Provenance types.Provenance    `json:"provenance"`
	Enhanced   bool                `json:"enhanced"`
	Metadata   map[string]any      `json:"metadata"`
	Issues     []map[string]string `json:"issues"`
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, nil, 0)
	w := do(t, s, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[map[string]any](t, w)
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, false, resp["storage"])
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, nil, 0)
	w := do(t, s, httptest.NewRequest(http.MethodOptions, "/parse", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}

func TestParse_Text(t *testing.T) {
	s := newTestServer(t, nil, 0)
	w := do(t, s, jsonRequest(t, http.MethodPost, "/parse", ParseRequest{Text: sampleResume}))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[parseResponse](t, w)
	assert.Nil(t, resp.ID)
	assert.Equal(t, "Jane Doe", resp.Record.FullName)
	assert.Equal(t, "jane.doe@example.com", resp.Record.Email)
	require.Len(t, resp.Record.Experience, 1)
	assert.Equal(t, "Acme Corp", resp.Record.Experience[0].Company)
	assert.NotEmpty(t, resp.Provenance.Successes)
	assert.NotNil(t, resp.Issues)
	assert.False(t, resp.Enhanced)
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Limit"))
}

func TestParse_BlankTextIsUnparseable(t *testing.T) {
	s := newTestServer(t, nil, 0)
	w := do(t, s, jsonRequest(t, http.MethodPost, "/parse", ParseRequest{Text: "   "}))

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[parseResponse](t, w)
	assert.Len(t, resp.Provenance.Errors, 1)
	assert.Empty(t, resp.Record.FullName)
}

func TestParse_Enhanced(t *testing.T) {
	s := newTestServer(t, nil, 0)
	seed := int64(42)
	w := do(t, s, jsonRequest(t, http.MethodPost, "/parse", ParseRequest{Text: sampleResume, Enhance: true, Seed: &seed}))

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[parseResponse](t, w)
	assert.True(t, resp.Enhanced)
}

func TestParse_StoresWhenConfigured(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(t, store, 0)
	w := do(t, s, jsonRequest(t, http.MethodPost, "/parse", ParseRequest{Name: "jane.txt", Text: sampleResume}))

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[parseResponse](t, w)
	require.NotNil(t, resp.ID)
	stored := store.results[*resp.ID]
	require.NotNil(t, stored)
	assert.Equal(t, "jane.txt", stored.SourceName)
}

func TestParse_RequestValidation(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{"empty", ParseRequest{}},
		{"text and url", ParseRequest{Text: "x", URL: "https://example.com/cv"}},
		{"bad scheme", ParseRequest{URL: "ftp://example.com/cv.pdf"}},
		{"relative url", ParseRequest{URL: "/cv.pdf"}},
	}
	s := newTestServer(t, nil, 0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, s, jsonRequest(t, http.MethodPost, "/parse", tt.body))
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, decode[map[string]string](t, w)["error"], "validation error")
		})
	}
}

func TestParse_InvalidJSON(t *testing.T) {
	s := newTestServer(t, nil, 0)
	req := httptest.NewRequest(http.MethodPost, "/parse", strings.NewReader("{not json"))
	w := do(t, s, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParse_JSONTooLarge(t *testing.T) {
	s := newTestServer(t, nil, 100)
	w := do(t, s, jsonRequest(t, http.MethodPost, "/parse", ParseRequest{Text: strings.Repeat("a", 500)}))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestParse_Upload(t *testing.T) {
	s := newTestServer(t, nil, 0)
	w := do(t, s, uploadRequest(t, "jane.txt", []byte(sampleResume), map[string]string{"enhance": "false"}))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[parseResponse](t, w)
	assert.Equal(t, "jane.txt", resp.Source)
	assert.Equal(t, "Jane Doe", resp.Record.FullName)
	assert.Equal(t, "jane.txt", resp.Metadata["filename"])
	assert.Equal(t, "text", resp.Metadata["format"])
}

func TestParse_UploadTooLarge(t *testing.T) {
	s := newTestServer(t, nil, 100)
	w := do(t, s, uploadRequest(t, "big.txt", bytes.Repeat([]byte("a"), 500), nil))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestParse_UploadUnsupported(t *testing.T) {
	s := newTestServer(t, nil, 0)
	png := append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 64)...)
	w := do(t, s, uploadRequest(t, "photo.png", png, nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[map[string]string](t, w)["error"], "unsupported file type")
}

func TestParse_UploadMissingFile(t *testing.T) {
	s := newTestServer(t, nil, 0)
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("enhance", "true"))
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(http.MethodPost, "/parse", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	w := do(t, s, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParse_URL(t *testing.T) {
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(sampleResume))
	}))
	defer origin.Close()

	s := newTestServer(t, nil, 0)
	w := do(t, s, jsonRequest(t, http.MethodPost, "/parse", ParseRequest{URL: origin.URL + "/jane.txt"}))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[parseResponse](t, w)
	assert.Equal(t, "Jane Doe", resp.Record.FullName)
	assert.Equal(t, origin.URL+"/jane.txt", resp.Metadata["url"])
}

func TestParse_URLUpstreamFailure(t *testing.T) {
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer origin.Close()

	s := newTestServer(t, nil, 0)
	w := do(t, s, jsonRequest(t, http.MethodPost, "/parse", ParseRequest{URL: origin.URL + "/missing.pdf"}))
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestParseStream(t *testing.T) {
	s := newTestServer(t, nil, 0)
	w := do(t, s, jsonRequest(t, http.MethodPost, "/parse/stream", ParseRequest{Text: sampleResume}))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	body := w.Body.String()
	assert.Contains(t, body, "event: progress\n")
	assert.Contains(t, body, `"step":"acquire"`)
	assert.Contains(t, body, "event: result\n")
	assert.Contains(t, body, "Jane Doe")
}

func TestParseStream_ValidationErrorIsPlainJSON(t *testing.T) {
	s := newTestServer(t, nil, 0)
	w := do(t, s, jsonRequest(t, http.MethodPost, "/parse/stream", ParseRequest{}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
}

func TestEnhance(t *testing.T) {
	s := newTestServer(t, nil, 0)
	seed := int64(7)
	record := &types.ResumeRecord{
		FullName: "Jane Doe",
		Summary:  "I worked on payment systems and helped the team.",
	}
	w := do(t, s, jsonRequest(t, http.MethodPost, "/enhance", EnhanceRequest{Record: record, Text: "worked on Go services", Seed: &seed}))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[EnhanceResponse](t, w)
	assert.Equal(t, int64(7), resp.Seed)
	assert.Equal(t, "Jane Doe", resp.Record.FullName)
	assert.NotContains(t, resp.Record.Summary, "worked on")
	assert.NotEmpty(t, resp.Suggestions)
	assert.Equal(t, "I worked on payment systems and helped the team.", record.Summary)
}

func TestEnhance_MissingRecord(t *testing.T) {
	s := newTestServer(t, nil, 0)
	w := do(t, s, jsonRequest(t, http.MethodPost, "/enhance", map[string]string{"text": "x"}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParses_StorageDisabled(t *testing.T) {
	s := newTestServer(t, nil, 0)
	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/parses", nil),
		httptest.NewRequest(http.MethodGet, "/parses/"+uuid.NewString(), nil),
		httptest.NewRequest(http.MethodDelete, "/parses/"+uuid.NewString(), nil),
	} {
		w := do(t, s, req)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code, req.Method+" "+req.URL.Path)
	}
}

func TestParses_CRUD(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(t, store, 0)

	w := do(t, s, jsonRequest(t, http.MethodPost, "/parse", ParseRequest{Text: sampleResume}))
	require.Equal(t, http.StatusOK, w.Code)
	id := decode[parseResponse](t, w).ID
	require.NotNil(t, id)

	w = do(t, s, httptest.NewRequest(http.MethodGet, "/parses", nil))
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[ListParsesResponse](t, w)
	require.Len(t, list.Parses, 1)
	assert.Equal(t, *id, list.Parses[0].ID)
	assert.Equal(t, db.DefaultListLimit, list.Limit)

	w = do(t, s, httptest.NewRequest(http.MethodGet, "/parses/"+id.String(), nil))
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[db.ParseResult](t, w)
	assert.Equal(t, "Jane Doe", got.Record.FullName)

	w = do(t, s, httptest.NewRequest(http.MethodDelete, "/parses/"+id.String(), nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, s, httptest.NewRequest(http.MethodGet, "/parses/"+id.String(), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, s, httptest.NewRequest(http.MethodDelete, "/parses/"+id.String(), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestParses_BadInput(t *testing.T) {
	s := newTestServer(t, newFakeStore(), 0)

	w := do(t, s, httptest.NewRequest(http.MethodGet, "/parses/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, s, httptest.NewRequest(http.MethodGet, "/parses?limit=abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, s, httptest.NewRequest(http.MethodGet, "/parses?limit=1000", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, db.MaxListLimit, decode[ListParsesResponse](t, w).Limit)
}

func TestRateLimit_Parse(t *testing.T) {
	t.Setenv("RATE_LIMIT_PARSE_LIMIT", "6")
	s := newTestServer(t, nil, 0)
	h := s.Handler()

	first := httptest.NewRecorder()
	h.ServeHTTP(first, jsonRequest(t, http.MethodPost, "/parse", ParseRequest{Text: sampleResume}))
	require.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	h.ServeHTTP(second, jsonRequest(t, http.MethodPost, "/parse", ParseRequest{Text: sampleResume}))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get("Retry-After"))
	assert.Equal(t, "rate_limit_exceeded", decode[map[string]any](t, second)["error"])

	health := httptest.NewRecorder()
	h.ServeHTTP(health, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, health.Code)
}
