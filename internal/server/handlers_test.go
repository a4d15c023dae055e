package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohitbhoir789/resume-builder/internal/optimizer"
	"github.com/mohitbhoir789/resume-builder/internal/profile"
	"github.com/mohitbhoir789/resume-builder/internal/storage"
	"github.com/mohitbhoir789/resume-builder/internal/types"
)

// stubPipeline returns canned results for the API surface.
type stubPipeline struct {
	generate func(profileName string, job types.JobDescription) (*types.RunResult, error)
	score    func(profileName string, job types.JobDescription) (*types.ATSScoreResult, error)
}

func (s *stubPipeline) Generate(_ context.Context, profileName string, job types.JobDescription) (*types.RunResult, error) {
	return s.generate(profileName, job)
}

func (s *stubPipeline) Score(_ context.Context, profileName string, job types.JobDescription) (*types.ATSScoreResult, error) {
	return s.score(profileName, job)
}

type stubLoader struct {
	names []string
}

func (l *stubLoader) Load(_ context.Context, name string) (*types.Profile, error) {
	return nil, &profile.NotFoundError{Name: name}
}

func (l *stubLoader) List(_ context.Context) ([]string, error) {
	return l.names, nil
}

func newTestServer(t *testing.T, pipeline Pipeline) (*Server, *storage.LocalArtifactStore) {
	t.Helper()
	store, err := storage.NewLocalArtifactStore(t.TempDir())
	require.NoError(t, err)
	return &Server{
		pipeline: pipeline,
		profiles: &stubLoader{names: []string{"jane"}},
		store:    store,
	}, store
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func validGenerateBody() map[string]any {
	return map[string]any{
		"profile": "jane",
		"job": map[string]any{
			"title": "Backend Engineer",
			"text":  "Python and Docker required.",
		},
	}
}

func TestHandleGenerate(t *testing.T) {
	pipeline := &stubPipeline{
		generate: func(profileName string, job types.JobDescription) (*types.RunResult, error) {
			assert.Equal(t, "jane", profileName)
			assert.Equal(t, "Backend Engineer", job.Title)
			return &types.RunResult{
				RunID:          "run-1",
				FinalScore:     66.7,
				RenderAttempts: 1,
				TerminalState:  types.TerminalAccepted,
			}, nil
		},
	}
	srv, _ := newTestServer(t, pipeline)

	rec := postJSON(t, srv.Routes(), "/v1/resume", validGenerateBody())

	require.Equal(t, http.StatusOK, rec.Code)
	var result types.RunResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "run-1", result.RunID)
	assert.Equal(t, types.TerminalAccepted, result.TerminalState)
}

func TestHandleGenerateValidation(t *testing.T) {
	srv, _ := newTestServer(t, &stubPipeline{})

	t.Run("missing profile", func(t *testing.T) {
		rec := postJSON(t, srv.Routes(), "/v1/resume", map[string]any{
			"job": map[string]any{"text": "some text"},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing job text", func(t *testing.T) {
		rec := postJSON(t, srv.Routes(), "/v1/resume", map[string]any{
			"profile": "jane",
			"job":     map[string]any{"title": "Engineer"},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/resume", bytes.NewReader([]byte("{broken")))
		rec := httptest.NewRecorder()
		srv.Routes().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleGenerateErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"unknown profile", &profile.NotFoundError{Name: "ghost"}, http.StatusNotFound},
		{"invalid job", &optimizer.InvalidJobDescriptionError{Message: "empty"}, http.StatusBadRequest},
		{"invalid profile artifact", &profile.InvalidProfileError{Name: "bad", Message: "schema"}, http.StatusUnprocessableEntity},
		{"internal failure", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pipeline := &stubPipeline{
				generate: func(string, types.JobDescription) (*types.RunResult, error) {
					return nil, tt.err
				},
			}
			srv, _ := newTestServer(t, pipeline)

			rec := postJSON(t, srv.Routes(), "/v1/resume", validGenerateBody())
			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}

func TestHandleScore(t *testing.T) {
	pipeline := &stubPipeline{
		score: func(profileName string, _ types.JobDescription) (*types.ATSScoreResult, error) {
			return &types.ATSScoreResult{Score: 75.0}, nil
		},
	}
	srv, _ := newTestServer(t, pipeline)

	rec := postJSON(t, srv.Routes(), "/v1/score", validGenerateBody())

	require.Equal(t, http.StatusOK, rec.Code)
	var detail types.ATSScoreResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.InDelta(t, 75.0, detail.Score, 1e-9)
}

func TestHandleGetRun(t *testing.T) {
	srv, store := newTestServer(t, &stubPipeline{})
	_, err := store.SaveAudit("run-9", &types.RunResult{RunID: "run-9", FinalScore: 50})
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/runs/run-9", nil)
		rec := httptest.NewRecorder()
		srv.Routes().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var result types.RunResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, "run-9", result.RunID)
	})

	t.Run("not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/runs/absent", nil)
		rec := httptest.NewRecorder()
		srv.Routes().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandleListProfiles(t *testing.T) {
	srv, _ := newTestServer(t, &stubPipeline{})

	req := httptest.NewRequest(http.MethodGet, "/v1/profiles", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var payload map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, []string{"jane"}, payload["profiles"])
}

func TestHandleHealth(t *testing.T) {
	srv, _ := newTestServer(t, &stubPipeline{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
