package router

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func testRoutes(t *testing.T) *Routes {
	t.Helper()

	fs := afero.NewMemMapFs()
	files := map[string]string{
		"public/index.html":    "<html>{{html-template-content}}</html>",
		"public/app.js":        "console.log('hi');",
		"public/app.css":       "body {}",
		"templates/home.html":  "<h1>Home</h1>",
		"templates/login.html": "<h1>Login</h1>",
	}
	for name, content := range files {
		if err := afero.WriteFile(fs, name, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	renderer := NewRenderer(fs, "public", "templates", nil, zap.NewNop())

	echo := func(ctx context.Context, req *Request) *Result {
		var payload map[string]any
		req.Bind(&payload)
		return Success(map[string]any{"method": req.Method, "payload": payload})
	}

	return &Routes{
		API: map[string]MethodHandlers{
			"login":      {http.MethodPost: echo},
			"menu-items": {http.MethodGet: echo},
			"boom": {http.MethodGet: func(ctx context.Context, req *Request) *Result {
				panic("handler exploded")
			}},
		},
		Pages: map[string]PageHandler{
			"":      renderer.Page("home"),
			"login": renderer.Page("login"),
		},
		Assets: NewAssetResolver(fs, "public", zap.NewNop()),
	}
}

func serve(t *testing.T, method, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	server := NewServer(testRoutes(t), zap.NewNop())
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(method, target, body))
	return rec
}

func TestResolvePrecedence(t *testing.T) {
	routes := testRoutes(t)

	cases := []struct {
		path string
		want RouteKind
	}{
		{"", KindPage},
		{"api/login", KindAPI},
		{"api/menu-items", KindAPI},
		{"login", KindPage},
		{"api/no-such-route", KindAsset},
		{"no-such-page", KindAsset},
		{"app.js", KindAsset},
		{"some/deep/path", KindAsset},
	}
	for _, tc := range cases {
		kind, _, _ := routes.Resolve(tc.path)
		if kind != tc.want {
			t.Errorf("Resolve(%q) = %v, want %v", tc.path, kind, tc.want)
		}
	}
}

func TestAPIRouteDispatch(t *testing.T) {
	rec := serve(t, http.MethodPost, "/api/login", strings.NewReader(`{"email":"a@b.c"}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("got %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("got content type %q, want application/json", ct)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body["method"] != "POST" {
		t.Errorf("got method %v, want POST", body["method"])
	}
}

func TestAPIMethodNotSupported(t *testing.T) {
	rec := serve(t, http.MethodDelete, "/api/login", nil)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("got %d, want 405", rec.Code)
	}
	if got := rec.Body.String(); got != "DELETE method not supported." {
		t.Errorf("got body %q", got)
	}
}

func TestPageNonGETMethodNotSupported(t *testing.T) {
	rec := serve(t, http.MethodPost, "/login", nil)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("got %d, want 405", rec.Code)
	}
	if got := rec.Body.String(); got != "POST method not supported." {
		t.Errorf("got body %q", got)
	}
}

func TestPageRendered(t *testing.T) {
	rec := serve(t, http.MethodGet, "/login", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("got %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html" {
		t.Errorf("got content type %q, want text/html", ct)
	}
	if !strings.Contains(rec.Body.String(), "<h1>Login</h1>") {
		t.Errorf("template content missing from %q", rec.Body.String())
	}
}

func TestDefaultPage(t *testing.T) {
	rec := serve(t, http.MethodGet, "/", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("got %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<h1>Home</h1>") {
		t.Errorf("home content missing from %q", rec.Body.String())
	}
}

func TestAssetServed(t *testing.T) {
	rec := serve(t, http.MethodGet, "/app.js", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("got %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/javascript" {
		t.Errorf("got content type %q, want application/javascript", ct)
	}
}

func TestMissingAssetIs404(t *testing.T) {
	rec := serve(t, http.MethodGet, "/no-such-page", nil)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("got %d, want 404", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("got body %q, want empty", rec.Body.String())
	}
}

func TestUnregisteredAPIFallsThroughTo404(t *testing.T) {
	rec := serve(t, http.MethodGet, "/api/no-such-route", nil)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("got %d, want 404", rec.Code)
	}
}

func TestPanicBecomesFixed500(t *testing.T) {
	rec := serve(t, http.MethodGet, "/api/boom", nil)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("got %d, want 500", rec.Code)
	}
	if got := rec.Body.String(); got != "Something went wrong!" {
		t.Errorf("got body %q", got)
	}
}

func TestBindIsLenient(t *testing.T) {
	req := &Request{body: []byte("{definitely not json")}

	var out map[string]any
	req.Bind(&out)
	if out != nil {
		t.Errorf("got %v, want nil from malformed body", out)
	}
}

func TestAssetContentTypes(t *testing.T) {
	cases := map[string]string{
		"app.js":       "application/javascript",
		"app.css":      "text/css",
		"index.html":   "text/html",
		"favicon.icon": "image/x-icon",
		"notes.txt":    "plain/text",
	}
	for name, want := range cases {
		if got := contentTypeFor(name); got != want {
			t.Errorf("contentTypeFor(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestAssetPathEscapeRejected(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "secret.txt", []byte("sensitive"), 0644); err != nil {
		t.Fatal(err)
	}
	resolver := NewAssetResolver(fs, "public", zap.NewNop())

	if data, _ := resolver.Get("../secret.txt"); data != nil {
		t.Error("path escape served a file outside the public directory")
	}
}
