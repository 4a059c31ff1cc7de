package book

// SeedData returns the records the store starts with.
func SeedData() []Book {
	return []Book{
		{
			ID:            "1",
			Title:         "To Kill a Mockingbird",
			Author:        "Harper Lee",
			PublishedYear: 1960,
		},
		{
			ID:            "2",
			Title:         "1984",
			Author:        "George Orwell",
			PublishedYear: 1949,
		},
		{
			ID:            "3",
			Title:         "Pride and Prejudice",
			Author:        "Jane Austen",
			PublishedYear: 1813,
		},
	}
}
