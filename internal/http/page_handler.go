package http

import (
	"bookmanager/internal/book"
	"bytes"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html"))

const alertMissingFields = "Please fill in all fields"

type pageData struct {
	View  book.View
	Alert string
}

// PageHandler serves the book manager page and turns its form posts into
// Manager events.
type PageHandler struct {
	manager *book.Manager
	log     *slog.Logger
}

func NewPageHandler(manager *book.Manager, logger *slog.Logger) *PageHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PageHandler{manager: manager, log: logger}
}

// Register mounts the page routes on mux.
func (h *PageHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Index)
	mux.HandleFunc("POST /books/new", h.OpenAddDialog)
	mux.HandleFunc("POST /draft", h.SubmitDraft)
	mux.HandleFunc("POST /draft/cancel", h.CancelDraft)
	mux.HandleFunc("POST /books/{id}/delete", h.RequestDelete)
	mux.HandleFunc("POST /delete/confirm", h.ConfirmDelete)
	mux.HandleFunc("POST /delete/cancel", h.CancelDelete)
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, pageData{View: h.manager.View()})
}

// OpenAddDialog handles POST /books/new
func (h *PageHandler) OpenAddDialog(w http.ResponseWriter, r *http.Request) {
	h.manager.OpenAddDialog()
	redirectHome(w, r)
}

// SubmitDraft handles POST /draft
func (h *PageHandler) SubmitDraft(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	fields := make(map[string]string, 3)
	for _, name := range []string{book.FieldTitle, book.FieldAuthor, book.FieldPublishedYear} {
		if _, ok := r.PostForm[name]; ok {
			fields[name] = r.PostForm.Get(name)
		}
	}

	if _, err := h.manager.SubmitDraft(fields); err != nil {
		if errors.Is(err, book.ErrValidation) {
			h.render(w, http.StatusUnprocessableEntity, pageData{
				View:  h.manager.View(),
				Alert: alertMissingFields,
			})
			return
		}
		h.log.Error("submit draft", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	redirectHome(w, r)
}

// CancelDraft handles POST /draft/cancel
func (h *PageHandler) CancelDraft(w http.ResponseWriter, r *http.Request) {
	h.manager.CancelDraft()
	redirectHome(w, r)
}

// RequestDelete handles POST /books/{id}/delete
func (h *PageHandler) RequestDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.manager.RequestDelete(r.PathValue("id")); err != nil {
		if errors.Is(err, book.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	redirectHome(w, r)
}

// ConfirmDelete handles POST /delete/confirm
func (h *PageHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	h.manager.ConfirmDelete()
	redirectHome(w, r)
}

// CancelDelete handles POST /delete/cancel
func (h *PageHandler) CancelDelete(w http.ResponseWriter, r *http.Request) {
	h.manager.CancelDelete()
	redirectHome(w, r)
}

func (h *PageHandler) render(w http.ResponseWriter, status int, data pageData) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		h.log.Error("render page", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
