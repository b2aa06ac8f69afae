package reminder

// Reminder is a payment reminder issued or scheduled for a customer. Once
// sent it is a read-only historical record; it does not participate in the
// balance invariant.
type Reminder struct {
	ID           string
	CustomerID   string
	TemplateID   int // 0 when the message was written free-form
	MessageText  string
	SentAt       int64 // Unix seconds, 0 when not yet sent
	ScheduledFor int64 // Unix seconds, 0 when sent immediately
	CreatedAt    int64
}
