package business

// RecipientField is one caller-defined (name, value) pair on a recipient.
// Field order is preserved so records round-trip through the editing
// surface unchanged.
type RecipientField struct {
	Name  string
	Value string
}

// Recipient is one addressee plus its custom placeholder fields for one
// dispatch. Email is mandatory and kept outside the field list; every other
// field is an opaque placeholder source.
type Recipient struct {
	Email  string
	Fields []RecipientField
}

// Field returns the value of the named field. When the same name was written
// more than once the later write wins, matching the key-unique record
// invariant.
func (r Recipient) Field(name string) (string, bool) {
	value, found := "", false
	for _, f := range r.Fields {
		if f.Name == name {
			value, found = f.Value, true
		}
	}
	return value, found
}

// Clone returns a deep copy so a batch snapshot cannot be mutated through
// the session's recipient store.
func (r Recipient) Clone() Recipient {
	fields := make([]RecipientField, len(r.Fields))
	copy(fields, r.Fields)
	return Recipient{Email: r.Email, Fields: fields}
}

// DispatchBatch is one submission: a subject, a message template, an
// optional CC list applied identically to every send, and an immutable
// snapshot of the recipient list taken at submission time.
type DispatchBatch struct {
	Subject    string
	Template   string
	CC         []string
	Recipients []Recipient
}

// SendResult is the per-recipient outcome of one batch. Results are ordered
// by the batch's recipient snapshot, one entry per recipient.
type SendResult struct {
	Email  string
	Status string
	Error  string
}

// BatchSummary is the aggregate view over a batch's send results.
type BatchSummary struct {
	Success int
	Failed  int
}
