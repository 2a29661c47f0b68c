package server

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/jrsteele09/fringe-portal/session"
	"github.com/rs/zerolog/log"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeJSON = "application/json; charset=utf-8"
)

//go:embed templates/*
var templateFiles embed.FS

func TemplateFilesFS() fs.FS {
	subFS, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		panic("Failed to create templates sub filesystem: " + err.Error())
	}
	return subFS
}

// ParseTemplate parses a page from the embedded filesystem together with the
// shared layout blocks.
func ParseTemplate(name string) (*template.Template, error) {
	return template.New(name).ParseFS(TemplateFilesFS(), "layout.html", name)
}

// mustParseTemplate panics on a missing or broken embedded template.
func mustParseTemplate(name string) *template.Template {
	tmpl, err := ParseTemplate(name)
	if err != nil {
		panic("Failed to parse " + name + " template: " + err.Error())
	}
	return tmpl
}

// pageData is shared by every page.
type pageData struct {
	AppName         string
	Title           string
	User            *session.User
	IsAuthenticated bool
	IsAdmin         bool
	Error           string
}

func (s *Server) newPageData(r *http.Request, title string) pageData {
	data := pageData{
		AppName: s.config.GetAppName(),
		Title:   title,
	}
	if p := providerFrom(r); p != nil {
		data.User = p.User()
		data.IsAuthenticated = p.IsAuthenticated()
		data.IsAdmin = p.IsAdmin()
	}
	return data
}

// renderPage executes tmpl into a buffer first so a template error never
// leaves a half-written page.
func renderPage(w http.ResponseWriter, tmpl *template.Template, status int, data any) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		log.Err(err).Str("template", tmpl.Name()).Msg("Failed to render template")
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
