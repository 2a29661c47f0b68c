package redirect

import "net/http"

// IsHTMX checks if the request was initiated by HTMX
func IsHTMX(r *http.Request) bool {
	return r != nil && r.Header.Get("HX-Request") == "true"
}

// To sends the client to path. HTMX requests get an HX-Redirect header with a
// 204, everything else a 303.
func To(w http.ResponseWriter, r *http.Request, path string) {
	if IsHTMX(r) {
		w.Header().Set("HX-Redirect", path)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}
