package api

import (
	"embed"
	"html/template"
	"net/http"

	"log/slog"
)

//go:embed web/*.html
var webFS embed.FS

// PagesHandler serves the minimal HTML shells for the submission form, the
// admin login and the dashboard. Markup stays deliberately bare; the pages
// exist so the cookie gate and the browser flows have a surface.
type PagesHandler struct {
	tmpl    *template.Template
	baseURL string
}

type pageData struct {
	BaseURL string
}

func NewPagesHandler(baseURL string) (*PagesHandler, error) {
	tmpl, err := template.ParseFS(webFS, "web/*.html")
	if err != nil {
		return nil, err
	}

	return &PagesHandler{tmpl: tmpl, baseURL: baseURL}, nil
}

func (h *PagesHandler) render(w http.ResponseWriter, name string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, name, pageData{BaseURL: h.baseURL}); err != nil {
		logger.Error("render page", slog.String("page", name), slog.Any("err", err))
	}
}

func (h *PagesHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, "index.html")
}

func (h *PagesHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	h.render(w, "admin_login.html")
}

func (h *PagesHandler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	h.render(w, "dashboard.html")
}
