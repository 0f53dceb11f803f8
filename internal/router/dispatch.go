package router

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Server is the dispatcher shared by the plaintext and TLS listeners. It
// buffers the request body, classifies the path, enforces method support
// and serializes the handler result. Any panic escaping a handler is
// converted into a fixed 500 response.
type Server struct {
	routes *Routes
	log    *zap.Logger
}

func NewServer(routes *Routes, log *zap.Logger) *Server {
	return &Server{
		routes: routes,
		log:    log.With(zap.String("component", "dispatcher")),
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if err := recover(); err != nil {
			s.log.Error("PANIC recovered",
				zap.Any("error", err),
				zap.String("path", r.URL.Path),
				zap.String("method", r.Method),
				zap.Stack("stack"),
			)
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("Something went wrong!"))
		}
	}()

	path := strings.Trim(r.URL.Path, "/")
	method := strings.ToUpper(r.Method)

	// The whole body is buffered up front; handlers never stream.
	body, err := io.ReadAll(r.Body)
	if err != nil {
		body = nil
	}

	kind, handlers, page := s.routes.Resolve(path)

	switch kind {
	case KindAPI:
		handler, ok := handlers[method]
		if !ok {
			s.writeMethodNotSupported(w, method)
			return
		}

		req := &Request{
			Headers: r.Header,
			Method:  method,
			Query:   r.URL.Query(),
			body:    body,
		}

		result := handler(r.Context(), req)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(result.StatusCode)
		json.NewEncoder(w).Encode(result.Data)

	case KindPage:
		if method != http.MethodGet {
			s.writeMethodNotSupported(w, method)
			return
		}

		html, err := page(r.Context())
		if err != nil {
			s.log.Error("Page render failed",
				zap.Error(err), zap.String("path", path))
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("Something went wrong!"))
			return
		}

		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(html))

	case KindAsset:
		if method != http.MethodGet {
			s.writeMethodNotSupported(w, method)
			return
		}

		data, contentType := s.routes.Assets.Get(path)
		if data == nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}

func (s *Server) writeMethodNotSupported(w http.ResponseWriter, method string) {
	w.WriteHeader(http.StatusMethodNotAllowed)
	fmt.Fprintf(w, "%s method not supported.", method)
}
