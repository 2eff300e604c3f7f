package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type HandlerFunc func(http.ResponseWriter, *http.Request)

// Router is a method-aware mux with wildcard path segments and a structured
// access log. Routes are registered as METHOD:PATH; a "*" segment matches any
// one segment and a trailing "*" matches the rest of the path.
type Router struct {
	mux      *http.ServeMux
	routes   map[string]HandlerFunc // key = METHOD:PATH
	paths    map[string]bool        // track registered paths
	log      *logrus.Logger
	onServed func(path string, status int, duration time.Duration)
}

func New(log *logrus.Logger) *Router {
	r := &Router{
		mux:    http.NewServeMux(),
		routes: make(map[string]HandlerFunc),
		paths:  make(map[string]bool),
		log:    log,
	}
	r.mux.HandleFunc("/", r.dispatch)
	return r
}

// OnServed registers a hook invoked after every request, e.g. for metrics.
func (r *Router) OnServed(fn func(path string, status int, duration time.Duration)) {
	r.onServed = fn
}

func (r *Router) dispatch(w http.ResponseWriter, req *http.Request) {
	start := time.Now()
	requestID := uuid.NewString()
	w.Header().Set("X-Request-ID", requestID)
	lrw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

	h, ok := r.routes[req.Method+":"+req.URL.Path]
	if !ok {
		h = r.matchWildcard(req.Method, req.URL.Path)
	}

	switch {
	case h != nil:
		h(lrw, req)
	case r.paths[req.URL.Path]:
		http.Error(lrw, "Method Not Allowed", http.StatusMethodNotAllowed)
	default:
		http.Error(lrw, "Not Found", http.StatusNotFound)
	}

	duration := time.Since(start)
	r.log.WithFields(logrus.Fields{
		"request_id":  requestID,
		"method":      req.Method,
		"path":        req.URL.Path,
		"status":      lrw.status,
		"duration_ms": duration.Milliseconds(),
	}).Info("request served")

	if r.onServed != nil {
		r.onServed(req.URL.Path, lrw.status, duration)
	}
}

// matchWildcard finds a handler registered under a wildcard route that
// matches path for the given method.
func (r *Router) matchWildcard(method, path string) HandlerFunc {
	for routePath := range r.paths {
		if !strings.Contains(routePath, "*") {
			continue
		}
		if matchWildcardRoute(path, routePath) {
			if h, ok := r.routes[method+":"+routePath]; ok {
				return h
			}
		}
	}
	return nil
}

// matchWildcardRoute checks if a request path matches a wildcard route
// pattern segment by segment.
func matchWildcardRoute(requestPath, routePattern string) bool {
	requestSegments := strings.Split(strings.Trim(requestPath, "/"), "/")
	routeSegments := strings.Split(strings.Trim(routePattern, "/"), "/")

	// A trailing "*" matches any number of remaining segments.
	if len(routeSegments) > 0 && routeSegments[len(routeSegments)-1] == "*" {
		if len(requestSegments) < len(routeSegments)-1 {
			return false
		}
		for i := 0; i < len(routeSegments)-1; i++ {
			if requestSegments[i] != routeSegments[i] {
				return false
			}
		}
		return true
	}

	if len(requestSegments) != len(routeSegments) {
		return false
	}
	for i, routeSegment := range routeSegments {
		if routeSegment == "*" {
			continue
		}
		if requestSegments[i] != routeSegment {
			return false
		}
	}
	return true
}

// --- Register paths ---

func (r *Router) register(method, path string, handler HandlerFunc) {
	r.routes[method+":"+path] = handler
	r.paths[path] = true
}

func (r *Router) GET(path string, handler HandlerFunc)  { r.register(http.MethodGet, path, handler) }
func (r *Router) POST(path string, handler HandlerFunc) { r.register(http.MethodPost, path, handler) }
func (r *Router) PUT(path string, handler HandlerFunc)  { r.register(http.MethodPut, path, handler) }
func (r *Router) DELETE(path string, handler HandlerFunc) {
	r.register(http.MethodDelete, path, handler)
}

// Handle mounts a plain http.Handler, e.g. the swagger UI or /metrics.
func (r *Router) Handle(method, path string, h http.Handler) {
	r.register(method, path, func(w http.ResponseWriter, req *http.Request) {
		h.ServeHTTP(w, req)
	})
}

// ServeHTTP makes the Router usable directly with httptest.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// Start blocks serving on addr.
func (r *Router) Start(addr string) error {
	r.log.WithField("addr", addr).Info("server started")
	return http.ListenAndServe(addr, r.mux)
}

// --- Status-recording response writer for the access log ---

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}
