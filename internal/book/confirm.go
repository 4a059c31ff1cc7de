package book

// Confirmer tracks the book awaiting delete confirmation by ID.
type Confirmer struct {
	pendingID string
	pending   bool
}

func NewConfirmer() *Confirmer {
	return &Confirmer{}
}

// Request marks b for deletion, which shows the confirmation prompt.
func (c *Confirmer) Request(b Book) {
	c.pendingID = b.ID
	c.pending = true
}

// PendingID returns the ID awaiting confirmation, if any.
func (c *Confirmer) PendingID() (string, bool) {
	return c.pendingID, c.pending
}

// Confirm removes the pending book from store and clears the reference.
// It reports whether a book was removed.
func (c *Confirmer) Confirm(store *Store) bool {
	if !c.pending {
		return false
	}
	removed := store.Remove(c.pendingID)
	c.Cancel()
	return removed
}

// Cancel clears the pending reference without touching the store.
func (c *Confirmer) Cancel() {
	c.pendingID = ""
	c.pending = false
}
