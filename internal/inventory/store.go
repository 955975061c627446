package inventory

// Store is an ordered collection of records.
//
// Records are held by pointer so a restock can mutate the quantity of the
// record a query returned.
type Store struct {
	records []*Record
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add appends a record to the end of the collection.
func (s *Store) Add(r *Record) {
	s.records = append(s.records, r)
}

// Reset drops every record.
func (s *Store) Reset() {
	s.records = nil
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Records returns the records in collection order.
// The slice is a copy; the records are shared.
func (s *Store) Records() []*Record {
	out := make([]*Record, len(s.records))
	copy(out, s.records)
	return out
}

// FindMinQuantity returns the record with the smallest quantity.
// On ties the earliest record wins. Returns false if the store is empty.
func (s *Store) FindMinQuantity() (*Record, bool) {
	var found *Record
	for _, r := range s.records {
		if found == nil || r.Quantity < found.Quantity {
			found = r
		}
	}
	return found, found != nil
}

// FindMaxQuantity returns the record with the largest positive quantity.
//
// The scan starts from a threshold of zero, so a record whose quantity is
// zero or less is never reported. On ties the earliest record wins.
func (s *Store) FindMaxQuantity() (*Record, bool) {
	best := 0
	var found *Record
	for _, r := range s.records {
		if r.Quantity > best {
			best = r.Quantity
			found = r
		}
	}
	return found, found != nil
}

// FindByCode returns the first record whose code equals code exactly.
func (s *Store) FindByCode(code string) (*Record, bool) {
	for _, r := range s.records {
		if r.Code == code {
			return r, true
		}
	}
	return nil, false
}
