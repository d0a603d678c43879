package restapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiddeb/obsidian-local-rest-api/internal/types"
)

// newTestClient spins up a TLS server with a self-signed certificate, which
// is exactly what the real endpoint presents. The client must accept it
// without any extra trust configuration.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewTLSServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, "secret", Options{Logger: zerolog.Nop()})
}

func TestGetNote(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/vault/notes%2Ftodo.md", r.URL.EscapedPath())
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/vnd.olrapi.note+json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":"hello","tags":["x"]}`))
	})

	env := client.GetNote(context.Background(), "notes/todo.md")

	require.True(t, env.OK)
	note, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "hello", note["content"])
}

func TestSearch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/search/simple/", r.URL.Path)
		assert.Equal(t, "quarterly report", r.URL.Query().Get("query"))
		assert.Equal(t, "100", r.URL.Query().Get("contextLength"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	env := client.Search(context.Background(), "quarterly report", 0)

	require.True(t, env.OK)
	assert.Equal(t, []any{}, env.Data)
}

func TestListDirectory(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"files":["a.md","sub/"]}`))
	})

	env := client.ListDirectory(context.Background(), "")
	require.True(t, env.OK)
	assert.Equal(t, "/vault/", gotPath)

	env = client.ListDirectory(context.Background(), "Daily Notes")
	require.True(t, env.OK)
	assert.Equal(t, "/vault/Daily%20Notes/", gotPath)
}

func TestCreateNote(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/vault/new.md", r.URL.EscapedPath())
		assert.Equal(t, "text/markdown", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Equal(t, "# New", string(body))

		w.WriteHeader(http.StatusNoContent)
	})

	env := client.CreateNote(context.Background(), "new.md", "# New")
	require.True(t, env.OK)
	assert.Nil(t, env.Data)
}

func TestAppendNote(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "text/markdown", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusNoContent)
	})

	env := client.AppendNote(context.Background(), "log.md", "- entry")
	require.True(t, env.OK)
}

func TestPatchNote(t *testing.T) {
	tests := []struct {
		name            string
		target          types.PatchTarget
		wantContentType string
	}{
		{
			name:            "heading target sends markdown",
			target:          types.PatchTarget{Type: types.TargetHeading, Value: "Log::Today"},
			wantContentType: "text/markdown",
		},
		{
			name:            "frontmatter target sends JSON",
			target:          types.PatchTarget{Type: types.TargetFrontmatter, Value: "tags"},
			wantContentType: "application/json",
		},
		{
			name:            "block target sends markdown",
			target:          types.PatchTarget{Type: types.TargetBlock, Value: "^abc123"},
			wantContentType: "text/markdown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPatch, r.Method)
				assert.Equal(t, tt.wantContentType, r.Header.Get("Content-Type"))
				assert.Equal(t, "append", r.Header.Get("Operation"))
				assert.Equal(t, string(tt.target.Type), r.Header.Get("Target-Type"))
				assert.Equal(t, tt.target.Value, r.Header.Get("Target"))
				w.WriteHeader(http.StatusOK)
			})

			env := client.PatchNote(context.Background(), "note.md", tt.target, types.OpAppend, "content")
			require.True(t, env.OK)
		})
	}
}

func TestAppendPeriodic(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "text/markdown", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusNoContent)
	})

	env := client.AppendPeriodic(context.Background(), types.PeriodDaily, nil, "note")
	require.True(t, env.OK)
	assert.Equal(t, "/periodic/daily/", gotPath)

	env = client.AppendPeriodic(context.Background(), types.PeriodDaily, &types.PeriodicDate{Year: 2024, Month: 3, Day: 5}, "note")
	require.True(t, env.OK)
	assert.Equal(t, "/periodic/daily/2024/3/5/", gotPath)
}

func TestDeleteNote(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	env := client.DeleteNote(context.Background(), "old.md")
	require.True(t, env.OK)
}

func TestNonJSONBodyFallsBackToRawText(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/markdown")
		_, _ = w.Write([]byte("# Heading\n\nBody text"))
	})

	env := client.GetNote(context.Background(), "plain.md")

	require.True(t, env.OK)
	assert.Equal(t, "# Heading\n\nBody text", env.Data)
}

func TestHTTPErrorWithJSONMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"errorCode":40400,"message":"File does not exist."}`))
	})

	env := client.GetNote(context.Background(), "missing.md")

	require.False(t, env.OK)
	assert.Equal(t, "File does not exist.", env.Error)
	assert.Equal(t, http.StatusNotFound, env.Code)
	assert.Nil(t, env.Data)
}

func TestHTTPErrorWithoutJSONBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	})

	env := client.GetNote(context.Background(), "note.md")

	require.False(t, env.OK)
	assert.Equal(t, "500 Internal Server Error", env.Error)
	assert.Equal(t, http.StatusInternalServerError, env.Code)
}

func TestConnectionFailure(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := New(url, "secret", Options{Logger: zerolog.Nop()})
	env := client.GetNote(context.Background(), "note.md")

	require.False(t, env.OK)
	assert.Contains(t, env.Error, "Connection failed:")
	assert.Zero(t, env.Code)
	assert.Nil(t, env.Data)
}
