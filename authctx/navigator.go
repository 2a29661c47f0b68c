package authctx

import (
	"net/http"
	"sync"

	"github.com/jrsteele09/fringe-portal/internal/redirect"
	"github.com/rs/zerolog/log"
)

// Navigator moves the client to another page.
type Navigator interface {
	Navigate(path string)
}

// HTTPNavigator writes a redirect on the response. Only the first navigation
// of a request is written.
type HTTPNavigator struct {
	w          http.ResponseWriter
	r          *http.Request
	mu         sync.Mutex
	redirected string
}

var _ Navigator = (*HTTPNavigator)(nil)

func NewHTTPNavigator(w http.ResponseWriter, r *http.Request) *HTTPNavigator {
	return &HTTPNavigator{w: w, r: r}
}

func (n *HTTPNavigator) Navigate(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.redirected != "" {
		log.Debug().Str("path", path).Str("previous", n.redirected).Msg("navigation ignored, response already redirected")
		return
	}
	n.redirected = path
	redirect.To(n.w, n.r, path)
}

// Redirected reports whether a redirect has been written.
func (n *HTTPNavigator) Redirected() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.redirected != ""
}

// Location returns the path of the written redirect, if any.
func (n *HTTPNavigator) Location() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.redirected
}
