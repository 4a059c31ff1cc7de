package book

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Editor holds the add dialog's draft and visibility.
type Editor struct {
	draft         Draft
	open          bool
	resetOnCancel bool
	now           func() time.Time
}

// EditorOption configures an Editor.
type EditorOption func(*Editor)

// WithClock sets the clock used for the default published year.
func WithClock(now func() time.Time) EditorOption {
	return func(e *Editor) {
		e.now = now
	}
}

// WithResetOnCancel makes Cancel discard the draft instead of keeping it for
// the next time the dialog opens.
func WithResetOnCancel(reset bool) EditorOption {
	return func(e *Editor) {
		e.resetOnCancel = reset
	}
}

func NewEditor(opts ...EditorOption) *Editor {
	e := &Editor{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	e.Reset()
	return e
}

// Draft returns the current draft values.
func (e *Editor) Draft() Draft {
	return e.draft
}

func (e *Editor) IsOpen() bool {
	return e.open
}

func (e *Editor) Open() {
	e.open = true
}

// Reset restores the draft defaults: empty strings and the current year.
func (e *Editor) Reset() {
	e.draft = Draft{PublishedYear: e.now().Year()}
}

// UpdateField sets one draft field from raw form input. A year that does not
// parse as an integer is stored as zero.
func (e *Editor) UpdateField(name, raw string) error {
	switch name {
	case FieldTitle:
		e.draft.Title = raw
	case FieldAuthor:
		e.draft.Author = raw
	case FieldPublishedYear:
		year, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			year = 0
		}
		e.draft.PublishedYear = year
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

func (e *Editor) Validate() error {
	return ValidateDraft(e.draft)
}

// Commit appends the draft to the store when it validates, then resets the
// draft and closes the dialog. On a validation error nothing changes.
func (e *Editor) Commit(store *Store) (Book, error) {
	if err := e.Validate(); err != nil {
		return Book{}, err
	}

	b := store.Append(e.draft)
	e.Reset()
	e.open = false
	return b, nil
}

// Cancel hides the dialog.
func (e *Editor) Cancel() {
	e.open = false
	if e.resetOnCancel {
		e.Reset()
	}
}
