package book

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when no book carries the requested ID.
	ErrNotFound = errors.New("book not found")
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("required field missing")
	// ErrUnknownField is returned when a draft field name is not recognised.
	ErrUnknownField = errors.New("unknown draft field")
)

// Draft field names as submitted by the add-book form.
const (
	FieldTitle         = "title"
	FieldAuthor        = "author"
	FieldPublishedYear = "publishedYear"
)

// Book represents a book record held by the Store.
type Book struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	PublishedYear int    `json:"publishedYear"`
}

// ShortID returns the last three characters of the ID, as shown in the list view.
func (b Book) ShortID() string {
	if len(b.ID) <= 3 {
		return b.ID
	}
	return b.ID[len(b.ID)-3:]
}

// Draft is a book that has not been committed to the Store yet.
type Draft struct {
	Title         string `json:"title" validate:"required"`
	Author        string `json:"author" validate:"required"`
	PublishedYear int    `json:"publishedYear" validate:"required"`
}

// ValidationError lists the draft fields that are missing.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	return ErrValidation.Error() + ": " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
