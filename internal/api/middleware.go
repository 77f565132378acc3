package api

import (
	"log"
	"net/http"

	"github.com/protocol7/claudebook/pkg/httputil"
)

// Recoverer catches panics escaping a handler and renders them as the
// standard 500 JSON envelope, so a single bad request never kills the
// process and every failure body stays valid JSON.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}
				log.Printf("ERROR [Recoverer] panic handling %s %s: %v", r.Method, r.URL.Path, rvr)
				httputil.RespondError(w, http.StatusInternalServerError, "Internal server error: unexpected failure")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// AllowOptions terminates any OPTIONS request with a 200, empty body, and
// the allowed-methods headers, regardless of path.
func AllowOptions(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			httputil.WriteCORSHeaders(w)
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
