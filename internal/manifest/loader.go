// Package manifest loads app manifests into catalogs. A manifest is a JSON
// array of records; loading is all-or-nothing.
package manifest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vitrinedev/vitrine/internal/catalog"
)

const (
	dateFormat = "2006-01-02"
	userAgent  = "vitrine/0.1"
)

// LoadError reports a failed manifest load. Loading is all-or-nothing: a
// LoadError means no catalog was produced, partial or otherwise.
type LoadError struct {
	Source string
	Cause  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load manifest %s: %v", e.Source, e.Cause)
}

func (e *LoadError) Unwrap() error { return e.Cause }

// record mirrors one manifest entry. Pointer fields distinguish a missing
// key from an empty value; unknown keys are ignored by the decoder.
type record struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Path        *string `json:"path"`
}

// Loader retrieves and parses app manifests and the opaque documents they
// reference.
type Loader struct {
	client *http.Client
}

func NewLoader() *Loader {
	return &Loader{client: &http.Client{Timeout: 10 * time.Second}}
}

// Load retrieves source (an http(s) URL or a local file path), parses it as
// a JSON array of app records and returns the date-sorted catalog. Any
// retrieval or parse failure returns a *LoadError and no catalog.
func (l *Loader) Load(ctx context.Context, source string) (catalog.Catalog, error) {
	raw, err := l.fetch(ctx, source, 0)
	if err != nil {
		return catalog.Catalog{}, &LoadError{Source: source, Cause: err}
	}
	entries, err := parse(raw)
	if err != nil {
		return catalog.Catalog{}, &LoadError{Source: source, Cause: err}
	}
	return catalog.New(entries), nil
}

// ReadDocument retrieves up to limit bytes of the document at ref. The
// content is opaque: it is returned raw, never interpreted.
func (l *Loader) ReadDocument(ctx context.Context, ref string, limit int64) ([]byte, error) {
	if limit <= 0 {
		limit = 64 << 10
	}
	return l.fetch(ctx, ref, limit)
}

// fetch retrieves ref from HTTP or the filesystem. limit <= 0 reads the
// whole resource.
func (l *Loader) fetch(ctx context.Context, ref string, limit int64) ([]byte, error) {
	var r io.ReadCloser
	if isHTTP(ref) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", userAgent)
		resp, err := l.client.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			resp.Body.Close()
			return nil, fmt.Errorf("http status %s", resp.Status)
		}
		r = resp.Body
	} else {
		f, err := os.Open(ref)
		if err != nil {
			return nil, err
		}
		r = f
	}
	defer r.Close()

	var src io.Reader = r
	if limit > 0 {
		src = io.LimitReader(src, limit)
	}
	return io.ReadAll(src)
}

func parse(raw []byte) ([]catalog.AppEntry, error) {
	var records []record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	entries := make([]catalog.AppEntry, 0, len(records))
	for i, r := range records {
		if r.Title == nil || r.Description == nil || r.Date == nil || r.Path == nil {
			return nil, fmt.Errorf("record %d: missing required field", i)
		}
		// Dates are parsed once here; everything downstream compares the
		// structured value.
		date, err := time.ParseInLocation(dateFormat, *r.Date, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("record %d: bad date %q", i, *r.Date)
		}
		entries = append(entries, catalog.AppEntry{
			Title:       *r.Title,
			Description: *r.Description,
			Date:        date,
			Path:        *r.Path,
		})
	}
	return entries, nil
}

// ResolveRef resolves an entry's relative path against the manifest source,
// so embedded documents are addressed the same way the manifest was.
func ResolveRef(source, ref string) string {
	if isHTTP(ref) {
		return ref
	}
	if isHTTP(source) {
		base, err := url.Parse(source)
		if err != nil {
			return ref
		}
		rel, err := url.Parse(ref)
		if err != nil {
			return ref
		}
		return base.ResolveReference(rel).String()
	}
	if filepath.IsAbs(ref) {
		return ref
	}
	return filepath.Join(filepath.Dir(source), ref)
}

func isHTTP(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
