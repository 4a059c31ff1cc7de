package book

import (
	"bookmanager/internal/httpx"
	"encoding/json"
	"errors"
	"net/http"
)

type HTTPHandler struct {
	manager *Manager
}

func NewHTTPHandler(manager *Manager) *HTTPHandler {
	return &HTTPHandler{manager: manager}
}

// Register mounts the JSON routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/books", h.List)
	mux.HandleFunc("POST /v1/books", h.Create)
	mux.HandleFunc("DELETE /v1/books/{id}", h.Delete)
	mux.HandleFunc("GET /v1/state", h.State)
}

// List handles GET /v1/books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books := h.manager.Books()
	httpx.JSONSuccessWithRequest(r, w, books, map[string]any{
		"total": len(books),
	})
}

type createRequest struct {
	Title         string `json:"title"`
	Author        string `json:"author"`
	PublishedYear int    `json:"publishedYear"`
}

// Create handles POST /v1/books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body", nil)
		return
	}

	b, err := h.manager.AddBook(Draft{
		Title:         req.Title,
		Author:        req.Author,
		PublishedYear: req.PublishedYear,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSONSuccessCreatedWithRequest(r, w, b)
}

// Delete handles DELETE /v1/books/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		http.NotFound(w, r)
		return
	}

	if err := h.manager.DeleteBook(id); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

// State handles GET /v1/state
func (h *HTTPHandler) State(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccessWithRequest(r, w, h.manager.View(), nil)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		details := make([]httpx.ErrorDetail, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			details = append(details, httpx.ErrorDetail{Field: f, Message: f + " is required"})
		}
		httpx.JSONErrorWithRequest(r, w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Please fill in all fields", details)
	case errors.Is(err, ErrNotFound):
		httpx.JSONErrorWithRequest(r, w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
	case errors.Is(err, ErrUnknownField):
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "UNKNOWN_FIELD", err.Error(), nil)
	default:
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
