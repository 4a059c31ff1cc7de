package http

import (
	"bookmanager/internal/book"
	"bookmanager/internal/testutil"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, cfg book.Config) (*book.Manager, http.Handler) {
	t.Helper()
	cfg.Logger = testutil.DiscardLogger()
	cfg.Now = testutil.FixedClock
	m := book.NewManager(cfg)
	return m, NewRouter(m, RouterConfig{Logger: cfg.Logger})
}

func do(h http.Handler, method, target string, form url.Values) *httptest.ResponseRecorder {
	if form != nil {
		return testutil.Serve(h, testutil.NewFormRequest(target, form))
	}
	return testutil.Serve(h, testutil.NewRequest(method, target, nil))
}

func TestPage_IndexListsSeedBooks(t *testing.T) {
	_, h := newTestServer(t, book.Config{})

	w := do(h, http.MethodGet, "/", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	body := w.Body.String()
	assert.Contains(t, body, "To Kill a Mockingbird")
	assert.Contains(t, body, "George Orwell")
	assert.Contains(t, body, "Pride and Prejudice")
	assert.NotContains(t, body, "No books found")
	assert.NotContains(t, body, `id="add-book"`)
	assert.NotContains(t, body, `id="confirm-delete"`)
}

func TestPage_EmptyState(t *testing.T) {
	m, h := newTestServer(t, book.Config{})
	for _, id := range []string{"1", "2", "3"} {
		require.NoError(t, m.DeleteBook(id))
	}

	w := do(h, http.MethodGet, "/", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No books found. Add your first book!")
}

func TestPage_AddBookFlow(t *testing.T) {
	m, h := newTestServer(t, book.Config{})

	w := do(h, http.MethodPost, "/books/new", url.Values{})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	w = do(h, http.MethodGet, "/", nil)
	assert.Contains(t, w.Body.String(), `id="add-book"`)
	assert.Contains(t, w.Body.String(), `value="2024"`)

	w = do(h, http.MethodPost, "/draft", url.Values{
		"title":         {"Dune"},
		"author":        {"Frank Herbert"},
		"publishedYear": {"1965"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)

	books := m.Books()
	require.Len(t, books, 4)
	assert.Equal(t, "Dune", books[3].Title)

	w = do(h, http.MethodGet, "/", nil)
	assert.Contains(t, w.Body.String(), "Frank Herbert")
	assert.NotContains(t, w.Body.String(), `id="add-book"`)
}

func TestPage_AddBookValidationAlert(t *testing.T) {
	m, h := newTestServer(t, book.Config{})
	do(h, http.MethodPost, "/books/new", url.Values{})

	w := do(h, http.MethodPost, "/draft", url.Values{
		"title":         {"Dune"},
		"author":        {""},
		"publishedYear": {"abc"},
	})

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Please fill in all fields")
	assert.Contains(t, body, `value="Dune"`)
	assert.Contains(t, body, `id="add-book"`)
	assert.Len(t, m.Books(), 3)
}

func TestPage_CancelAddKeepsDraft(t *testing.T) {
	m, h := newTestServer(t, book.Config{})
	do(h, http.MethodPost, "/books/new", url.Values{})
	require.NoError(t, m.UpdateDraftField(book.FieldTitle, "Dune"))

	w := do(h, http.MethodPost, "/draft/cancel", url.Values{})
	require.Equal(t, http.StatusSeeOther, w.Code)

	v := m.View()
	assert.False(t, v.AddDialogOpen)
	assert.Equal(t, "Dune", v.Draft.Title)
}

func TestPage_DeleteFlow(t *testing.T) {
	m, h := newTestServer(t, book.Config{})

	w := do(h, http.MethodPost, "/books/2/delete", url.Values{})
	require.Equal(t, http.StatusSeeOther, w.Code)

	w = do(h, http.MethodGet, "/", nil)
	body := w.Body.String()
	assert.Contains(t, body, `id="confirm-delete"`)
	assert.Contains(t, body, "Are you sure you want to delete")
	assert.Contains(t, body, "George Orwell")

	w = do(h, http.MethodPost, "/delete/confirm", url.Values{})
	require.Equal(t, http.StatusSeeOther, w.Code)

	books := m.Books()
	require.Len(t, books, 2)
	for _, b := range books {
		assert.NotEqual(t, "2", b.ID)
	}
	assert.Nil(t, m.View().PendingDelete)
}

func TestPage_DeleteCancel(t *testing.T) {
	m, h := newTestServer(t, book.Config{})

	do(h, http.MethodPost, "/books/1/delete", url.Values{})
	w := do(h, http.MethodPost, "/delete/cancel", url.Values{})
	require.Equal(t, http.StatusSeeOther, w.Code)

	assert.Nil(t, m.View().PendingDelete)
	assert.Len(t, m.Books(), 3)
}

func TestPage_DeleteUnknownBook(t *testing.T) {
	_, h := newTestServer(t, book.Config{})

	w := do(h, http.MethodPost, "/books/404/delete", url.Values{})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_HealthzAndHeaders(t *testing.T) {
	_, h := newTestServer(t, book.Config{})

	w := do(h, http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestRouter_APIAndPageShareState(t *testing.T) {
	m, h := newTestServer(t, book.Config{})

	w := do(h, http.MethodDelete, "/v1/books/1", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(h, http.MethodGet, "/", nil)
	assert.NotContains(t, w.Body.String(), "To Kill a Mockingbird")
	assert.Len(t, m.Books(), 2)
}
