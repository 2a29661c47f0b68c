package session

import (
	"net/http"
	"sync"
	"time"
)

// CookieReader is satisfied by *http.Request.
type CookieReader interface {
	Cookie(name string) (*http.Cookie, error)
}

// Value returns the value of the named cookie, or "" when it is absent.
func Value(r CookieReader, name string) string {
	if r == nil {
		return ""
	}
	c, err := r.Cookie(name)
	if err != nil || c == nil {
		return ""
	}
	return c.Value
}

// Options are the attributes written with a cookie.
type Options struct {
	MaxAge   time.Duration
	Path     string
	SameSite http.SameSite
	Secure   bool
	HttpOnly bool
}

// CookieStore reads and writes cookies by name.
type CookieStore interface {
	CookieReader
	Set(name, value string, opts Options)
	Delete(name string)
}

// HTTPCookieStore reads cookies from a request and writes Set-Cookie headers on
// the response. Cookies written during the request are visible to later reads.
type HTTPCookieStore struct {
	r       *http.Request
	w       http.ResponseWriter
	mu      sync.RWMutex
	written map[string]*http.Cookie
}

var _ CookieStore = (*HTTPCookieStore)(nil)

func NewHTTPCookieStore(w http.ResponseWriter, r *http.Request) *HTTPCookieStore {
	return &HTTPCookieStore{
		r:       r,
		w:       w,
		written: make(map[string]*http.Cookie),
	}
}

func (s *HTTPCookieStore) Cookie(name string) (*http.Cookie, error) {
	s.mu.RLock()
	c, ok := s.written[name]
	s.mu.RUnlock()
	if ok {
		if c.MaxAge < 0 {
			return nil, http.ErrNoCookie
		}
		return c, nil
	}
	return s.r.Cookie(name)
}

func (s *HTTPCookieStore) Set(name, value string, opts Options) {
	path := opts.Path
	if path == "" {
		path = "/"
	}
	c := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		MaxAge:   int(opts.MaxAge / time.Second),
		SameSite: opts.SameSite,
		Secure:   opts.Secure,
		HttpOnly: opts.HttpOnly,
	}
	s.write(c)
}

func (s *HTTPCookieStore) Delete(name string) {
	s.write(&http.Cookie{
		Name:   name,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
}

func (s *HTTPCookieStore) write(c *http.Cookie) {
	s.mu.Lock()
	s.written[c.Name] = c
	s.mu.Unlock()
	http.SetCookie(s.w, c)
}
