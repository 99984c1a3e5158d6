package opener

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	apperrors "devtoolsx/internal/infrastructure/errors"
	"devtoolsx/internal/testutils"
)

type recorder struct {
	urls  []string
	paths []string
	fail  error
}

func (r *recorder) openURL(_ context.Context, u string) { r.urls = append(r.urls, u) }
func (r *recorder) openFile(p string) error {
	r.paths = append(r.paths, p)
	return r.fail
}

func newStarted(t *testing.T) (*Plugin, *API, *recorder, *testutils.RecordingLogger) {
	t.Helper()
	rec := &recorder{}
	logs := &testutils.RecordingLogger{}
	p := Init(WithLogger(logs), WithOpeners(rec.openURL, rec.openFile))
	if err := p.Startup(context.Background()); err != nil {
		t.Fatalf("Startup() error = %v", err)
	}
	return p, p.Bindings()[0].(*API), rec, logs
}

func TestPlugin_Identity(t *testing.T) {
	p := Init()
	if p.Name() != "opener" {
		t.Errorf("Name() = %q", p.Name())
	}
	bindings := p.Bindings()
	if len(bindings) != 1 {
		t.Fatalf("expected a single binding, got %d", len(bindings))
	}
	if _, ok := bindings[0].(*API); !ok {
		t.Errorf("expected *API binding, got %T", bindings[0])
	}
}

func TestAPI_OpenURL(t *testing.T) {
	_, api, rec, logs := newStarted(t)

	for _, target := range []string{"https://tauri.app", "http://localhost:8080/x?y=1", "mailto:dev@example.com", " HTTPS://Example.com "} {
		if err := api.OpenURL(target); err != nil {
			t.Errorf("OpenURL(%q) error = %v", target, err)
		}
	}
	if len(rec.urls) != 4 {
		t.Fatalf("expected 4 opened URLs, got %v", rec.urls)
	}
	if rec.urls[3] != "https://Example.com" {
		t.Errorf("expected trimmed, normalised URL, got %q", rec.urls[3])
	}
	if len(logs.Calls("INFO")) != 4 {
		t.Errorf("expected one info entry per opened URL")
	}
}

func TestAPI_OpenURL_Rejects(t *testing.T) {
	_, api, rec, _ := newStarted(t)

	for _, target := range []string{"", "file:///etc/passwd", "javascript:alert(1)", "https://", "::bad"} {
		err := api.OpenURL(target)
		if !apperrors.IsValidation(err) {
			t.Errorf("OpenURL(%q) error = %v, want validation error", target, err)
		}
	}
	if len(rec.urls) != 0 {
		t.Errorf("rejected URLs must not be opened: %v", rec.urls)
	}
}

func TestAPI_NotReadyBeforeStartupAndAfterShutdown(t *testing.T) {
	rec := &recorder{}
	p := Init(WithLogger(&testutils.RecordingLogger{}), WithOpeners(rec.openURL, rec.openFile))
	api := p.Bindings()[0].(*API)

	if err := api.OpenURL("https://example.com"); !apperrors.IsNotReady(err) {
		t.Errorf("expected not-ready error before startup, got %v", err)
	}

	if err := p.Startup(context.Background()); err != nil {
		t.Fatal(err)
	}
	p.Shutdown(context.Background())

	if err := api.OpenURL("https://example.com"); !apperrors.IsNotReady(err) {
		t.Errorf("expected not-ready error after shutdown, got %v", err)
	}
	if len(rec.urls) != 0 {
		t.Errorf("nothing should have been opened: %v", rec.urls)
	}
}

func TestPlugin_StartupNilContext(t *testing.T) {
	var ctx context.Context
	if err := Init().Startup(ctx); !apperrors.IsPlugin(err) {
		t.Errorf("expected plugin error, got %v", err)
	}
}

func TestAPI_OpenPath(t *testing.T) {
	_, api, rec, _ := newStarted(t)

	file := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := api.OpenPath(file); err != nil {
		t.Fatalf("OpenPath() error = %v", err)
	}
	if len(rec.paths) != 1 || rec.paths[0] != file {
		t.Errorf("unexpected opened paths: %v", rec.paths)
	}

	if err := api.OpenPath(""); !apperrors.IsValidation(err) {
		t.Errorf("expected validation error for empty path, got %v", err)
	}
	if err := api.OpenPath(filepath.Join(t.TempDir(), "missing")); !apperrors.IsValidation(err) {
		t.Errorf("expected validation error for missing path, got %v", err)
	}
}

func TestAPI_OpenPath_HandlerFailure(t *testing.T) {
	_, api, rec, logs := newStarted(t)
	rec.fail = errors.New("xdg-open not found")

	err := api.OpenPath(t.TempDir())
	if !apperrors.IsInternal(err) || !errors.Is(err, rec.fail) {
		t.Errorf("expected internal error wrapping handler failure, got %v", err)
	}
	if len(logs.Calls("ERROR")) != 1 {
		t.Errorf("expected handler failure to be logged")
	}
}
