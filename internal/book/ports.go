package book

import "github.com/google/uuid"

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=book

// IDGenerator produces identifiers for newly appended books.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues time-ordered UUIDv7 identifiers.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
