package manifest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const scenarioManifest = `[
	{"title": "solitaire", "description": "cards", "date": "2025-01-01", "path": "solitaire/index.html"},
	{"title": "tracker", "description": "habits", "date": "2025-10-21", "path": "tracker/index.html"},
	{"title": "mixer", "description": "colors", "date": "2025-05-05", "path": "mixer/index.html"}
]`

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "apps.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	c, err := NewLoader().Load(context.Background(), writeManifest(t, scenarioManifest))
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())

	// newest first
	require.Equal(t, "tracker", c.At(0).Title)
	require.Equal(t, "mixer", c.At(1).Title)
	require.Equal(t, "solitaire", c.At(2).Title)
	require.Equal(t, "2025-10-21", c.At(0).Date.Format("2006-01-02"))
}

func TestLoadIgnoresUnknownFields(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, `[
		{"title": "a", "description": "d", "date": "2025-01-02", "path": "a.html", "author": "x", "tags": ["y"]}
	]`)
	c, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())
}

func TestLoadMissingFieldFailsWhole(t *testing.T) {
	t.Parallel()

	// second record has no path; nothing may load
	path := writeManifest(t, `[
		{"title": "a", "description": "d", "date": "2025-01-02", "path": "a.html"},
		{"title": "b", "description": "d", "date": "2025-01-03"}
	]`)
	c, err := NewLoader().Load(context.Background(), path)
	require.Error(t, err)
	require.Equal(t, 0, c.Len())

	var le *LoadError
	require.True(t, errors.As(err, &le))
	require.Contains(t, le.Error(), "missing required field")
}

func TestLoadRejectsBadDate(t *testing.T) {
	t.Parallel()

	for _, bad := range []string{"2025-13-01", "21/10/2025", "2025-10", "not a date"} {
		path := writeManifest(t, `[{"title":"a","description":"d","date":"`+bad+`","path":"a.html"}]`)
		_, err := NewLoader().Load(context.Background(), path)
		require.Error(t, err, "date %q should fail", bad)
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(context.Background(), writeManifest(t, `{"not": "an array"`))
	var le *LoadError
	require.True(t, errors.As(err, &le))
}

func TestLoadEmptyManifest(t *testing.T) {
	t.Parallel()

	// structurally valid, zero entries: not a load error
	c, err := NewLoader().Load(context.Background(), writeManifest(t, `[]`))
	require.NoError(t, err)
	require.Equal(t, 0, c.Len())
}

func TestLoadUnreachableFile(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	var le *LoadError
	require.True(t, errors.As(err, &le))
}

func TestLoadOverHTTP(t *testing.T) {
	t.Parallel()

	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(scenarioManifest))
	}))
	t.Cleanup(srv.Close)

	c, err := NewLoader().Load(context.Background(), srv.URL+"/apps.json")
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())
	require.Equal(t, userAgent, gotAgent)
}

func TestLoadHTTPErrorStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)

	_, err := NewLoader().Load(context.Background(), srv.URL+"/apps.json")
	var le *LoadError
	require.True(t, errors.As(err, &le))
	require.Contains(t, err.Error(), "404")
}

func TestReadDocumentLimits(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "doc.html")
	require.NoError(t, os.WriteFile(path, make([]byte, 10_000), 0o644))

	data, err := NewLoader().ReadDocument(context.Background(), path, 1024)
	require.NoError(t, err)
	require.Len(t, data, 1024)
}

func TestResolveRef(t *testing.T) {
	t.Parallel()

	cases := []struct {
		source, ref, want string
	}{
		{"https://example.com/showcase/apps.json", "tracker/index.html", "https://example.com/showcase/tracker/index.html"},
		{"https://example.com/showcase/apps.json", "https://other.example/x.html", "https://other.example/x.html"},
		{"/srv/showcase/apps.json", "tracker/index.html", "/srv/showcase/tracker/index.html"},
		{"/srv/showcase/apps.json", "/abs/x.html", "/abs/x.html"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, ResolveRef(c.source, c.ref), "source %q ref %q", c.source, c.ref)
	}
}
