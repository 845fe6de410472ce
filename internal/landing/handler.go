package landing

import (
	"embed"
	"io/fs"
	"net/http"

	g "maragu.dev/gomponents"

	"github.com/titans986/waiting-list-site/internal/landing/components"
	"github.com/titans986/waiting-list-site/internal/logging"
)

//go:embed static
var staticFS embed.FS

// Static serves the embedded stylesheet and script. Mount it under /static/
// with the prefix stripped.
func Static() (http.Handler, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}
	return http.FileServer(http.FS(sub)), nil
}

// View renders the whole page for the given form state. Page uses the same
// components for the initial state.
func View(f *Form) g.Node {
	return components.Layout(
		components.PageConfig{},
		components.Hero(f.Email(), f.Submitted()),
	)
}

// Page renders the landing page in its initial state: empty input, form
// shown. From there waitlist.js owns the state in the browser.
func Page(w http.ResponseWriter, r *http.Request) {
	page := components.Layout(
		components.PageConfig{},
		components.Hero("", false),
	)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(w); err != nil {
		logging.FromContext(r.Context()).WithError(err).Error("render landing page")
	}
}
