package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"regexp"

	"pizza-delivery/internal/data/entity"
)

// Route classification. The precedence is fixed: the empty path is the
// default page, then API prefix match, then generic page match, then
// static asset fallback.
type RouteKind int

const (
	KindAPI RouteKind = iota
	KindPage
	KindAsset
)

var (
	apiPathPattern  = regexp.MustCompile(`^api/(\w+(?:-\w+)*)$`)
	pagePathPattern = regexp.MustCompile(`^(\w+(?:-\w+)*)?$`)
)

// Request is the per-request context handed to API handlers.
type Request struct {
	Headers http.Header
	Method  string
	Query   url.Values

	// User is the resolved caller, attached by the authentication
	// middleware. Nil on public routes.
	User *entity.User

	body []byte
}

// Token returns the bearer credential from the `token` header.
func (r *Request) Token() string {
	return r.Headers.Get("token")
}

// Bind decodes the request body into out. The body is parsed leniently:
// malformed JSON binds as an empty object and never produces an error,
// leaving validation to the caller.
func (r *Request) Bind(out any) {
	if len(r.body) == 0 {
		return
	}
	// Decode errors leave out at its zero value, same as an empty body.
	_ = json.Unmarshal(r.body, out)
}

// Result is what an API handler produces: a status code and a JSON body.
type Result struct {
	StatusCode int
	Data       any
}

// Success wraps data in a 200 result.
func Success(data any) *Result {
	return &Result{StatusCode: http.StatusOK, Data: data}
}

// SuccessWith wraps data in a result with an explicit status code.
func SuccessWith(statusCode int, data any) *Result {
	return &Result{StatusCode: statusCode, Data: data}
}

// Error wraps a human-readable message in a 400 result.
func Error(message string) *Result {
	return ErrorWith(http.StatusBadRequest, message)
}

// ErrorWith wraps a message in a result with an explicit status code.
func ErrorWith(statusCode int, message string) *Result {
	return &Result{
		StatusCode: statusCode,
		Data:       map[string]string{"message": message},
	}
}

// APIHandler handles one HTTP method of one API route.
type APIHandler func(ctx context.Context, req *Request) *Result

// MethodHandlers maps an HTTP method name to its handler. A method
// missing from the map yields 405.
type MethodHandlers map[string]APIHandler

// PageHandler renders one server-side page to HTML.
type PageHandler func(ctx context.Context) (string, error)

// Routes is the immutable route configuration, built once at startup and
// passed into the dispatcher.
type Routes struct {
	API    map[string]MethodHandlers
	Pages  map[string]PageHandler
	Assets *AssetResolver
}

// Resolve classifies a normalized path (leading/trailing slashes already
// stripped) and returns the matched handler table or page handler. An API
// or page name that matches the shape but is not registered falls through
// to the next classification, ending at the asset fallback.
func (rt *Routes) Resolve(path string) (RouteKind, MethodHandlers, PageHandler) {
	if path == "" {
		if page, ok := rt.Pages[""]; ok {
			return KindPage, nil, page
		}
	}

	if matches := apiPathPattern.FindStringSubmatch(path); matches != nil {
		if handlers, ok := rt.API[matches[1]]; ok {
			return KindAPI, handlers, nil
		}
	}

	if matches := pagePathPattern.FindStringSubmatch(path); matches != nil {
		if page, ok := rt.Pages[matches[1]]; ok {
			return KindPage, nil, page
		}
	}

	return KindAsset, nil, nil
}
