package store

// Limit caps the capacity a container may grow to.
//
// Go has no observable allocation failure, so a Limit is how callers get
// the "growth failed, nothing changed" behaviour: once a container would
// need more than Limit slots, the growing operation returns ErrCapacity
// and leaves the container as it was.
//
// The zero value means unlimited.
type Limit int

// Check returns ErrCapacity if a capacity of n is not allowed.
func (l Limit) Check(n int) error {
	if l > 0 && n > int(l) {
		return ErrCapacity
	}
	return nil
}

// Fit returns the largest capacity <= want that the limit allows, and
// whether that is at least need. Growth uses it to fall back from the
// preferred growth step to just enough room.
func (l Limit) Fit(want, need int) (int, bool) {
	if l > 0 && want > int(l) {
		want = int(l)
	}
	return want, want >= need
}
