package book

import "strconv"

const maxIDAttempts = 8

// Store holds the ordered list of books. It is not safe for concurrent use;
// Manager serializes access to it.
type Store struct {
	books  []Book
	issued map[string]struct{}
	ids    IDGenerator
}

// NewStore constructs an empty Store. A nil generator falls back to UUIDGenerator.
func NewStore(ids IDGenerator) *Store {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	return &Store{
		issued: make(map[string]struct{}),
		ids:    ids,
	}
}

// Initialize replaces the contents of the store with the seed records.
func (s *Store) Initialize() {
	seed := SeedData()
	s.books = make([]Book, 0, len(seed))
	for _, b := range seed {
		s.books = append(s.books, b)
		s.issued[b.ID] = struct{}{}
	}
}

// Append assigns a fresh ID to the draft and adds it to the end of the list.
func (s *Store) Append(d Draft) Book {
	b := Book{
		ID:            s.nextID(),
		Title:         d.Title,
		Author:        d.Author,
		PublishedYear: d.PublishedYear,
	}
	s.books = append(s.books, b)
	return b
}

// Remove deletes the book with the given ID, keeping the order of the rest.
func (s *Store) Remove(id string) bool {
	for i, b := range s.books {
		if b.ID == id {
			s.books = append(s.books[:i], s.books[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the book with the given ID.
func (s *Store) Get(id string) (Book, bool) {
	for _, b := range s.books {
		if b.ID == id {
			return b, true
		}
	}
	return Book{}, false
}

// List returns a copy of the books in display order.
func (s *Store) List() []Book {
	result := make([]Book, len(s.books))
	copy(result, s.books)
	return result
}

func (s *Store) Len() int {
	return len(s.books)
}

// nextID never hands out an ID the store has issued before, even if it has
// since been removed.
func (s *Store) nextID() string {
	var id string
	for i := 0; i < maxIDAttempts; i++ {
		id = s.ids.NewID()
		if _, taken := s.issued[id]; id != "" && !taken {
			s.issued[id] = struct{}{}
			return id
		}
	}

	for n := 1; ; n++ {
		candidate := id + "-" + strconv.Itoa(n)
		if _, taken := s.issued[candidate]; !taken {
			s.issued[candidate] = struct{}{}
			return candidate
		}
	}
}
