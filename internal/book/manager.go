package book

import (
	"log/slog"
	"sync"
	"time"
)

// View is a snapshot of everything the page needs to render.
type View struct {
	Books         []Book `json:"books"`
	Draft         Draft  `json:"draft"`
	AddDialogOpen bool   `json:"addDialogOpen"`
	PendingDelete *Book  `json:"pendingDelete,omitempty"`
}

// Config holds Manager construction options.
type Config struct {
	IDs                IDGenerator
	Now                func() time.Time
	ResetDraftOnCancel bool
	Logger             *slog.Logger
}

// Manager owns the book list, the draft editor and the deletion confirmer.
// Each method is one user event; events are applied one at a time.
type Manager struct {
	mu        sync.Mutex
	store     *Store
	editor    *Editor
	confirmer *Confirmer
	log       *slog.Logger
}

// NewManager builds a Manager with a freshly seeded store.
func NewManager(cfg Config) *Manager {
	opts := []EditorOption{WithResetOnCancel(cfg.ResetDraftOnCancel)}
	if cfg.Now != nil {
		opts = append(opts, WithClock(cfg.Now))
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	m := &Manager{
		store:     NewStore(cfg.IDs),
		editor:    NewEditor(opts...),
		confirmer: NewConfirmer(),
		log:       logger,
	}
	m.store.Initialize()
	return m
}

// Books returns the current list in display order.
func (m *Manager) Books() []Book {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.List()
}

// Book returns the book with the given ID.
func (m *Manager) Book(id string) (Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.store.Get(id)
	if !ok {
		return Book{}, ErrNotFound
	}
	return b, nil
}

func (m *Manager) View() View {
	m.mu.Lock()
	defer m.mu.Unlock()

	v := View{
		Books:         m.store.List(),
		Draft:         m.editor.Draft(),
		AddDialogOpen: m.editor.IsOpen(),
	}
	if id, ok := m.confirmer.PendingID(); ok {
		// The reference is by ID; a book that is gone no longer has a prompt.
		if b, found := m.store.Get(id); found {
			v.PendingDelete = &b
		}
	}
	return v
}

func (m *Manager) OpenAddDialog() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.editor.Open()
	m.log.Debug("add dialog opened")
}

func (m *Manager) UpdateDraftField(name, raw string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.editor.UpdateField(name, raw)
}

// SubmitDraft applies every field in fields and then commits, as one event.
func (m *Manager) SubmitDraft(fields map[string]string) (Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, name := range []string{FieldTitle, FieldAuthor, FieldPublishedYear} {
		if raw, ok := fields[name]; ok {
			if err := m.editor.UpdateField(name, raw); err != nil {
				return Book{}, err
			}
		}
	}
	return m.commitLocked()
}

func (m *Manager) CommitDraft() (Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.commitLocked()
}

func (m *Manager) commitLocked() (Book, error) {
	b, err := m.editor.Commit(m.store)
	if err != nil {
		m.log.Debug("draft rejected", "error", err)
		return Book{}, err
	}
	m.log.Info("book added", "book_id", b.ID, "title", b.Title)
	return b, nil
}

// AddBook appends d directly, bypassing the dialog state but not validation.
func (m *Manager) AddBook(d Draft) (Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := ValidateDraft(d); err != nil {
		return Book{}, err
	}
	b := m.store.Append(d)
	m.log.Info("book added", "book_id", b.ID, "title", b.Title)
	return b, nil
}

func (m *Manager) CancelDraft() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.editor.Cancel()
	m.log.Debug("add dialog cancelled")
}

// RequestDelete opens the confirmation prompt for the book with the given ID.
func (m *Manager) RequestDelete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.store.Get(id)
	if !ok {
		return ErrNotFound
	}
	m.confirmer.Request(b)
	m.log.Debug("delete requested", "book_id", id)
	return nil
}

// ConfirmDelete removes the pending book. It reports whether anything was removed.
func (m *Manager) ConfirmDelete() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	id, _ := m.confirmer.PendingID()
	removed := m.confirmer.Confirm(m.store)
	if removed {
		m.log.Info("book deleted", "book_id", id)
	}
	return removed
}

func (m *Manager) CancelDelete() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.confirmer.Cancel()
}

// DeleteBook removes a book by ID without going through the prompt.
func (m *Manager) DeleteBook(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.store.Remove(id) {
		return ErrNotFound
	}
	m.log.Info("book deleted", "book_id", id)
	return nil
}
