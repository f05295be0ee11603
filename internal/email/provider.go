package email

// Email is one outbound message.
type Email struct {
	To      []string
	Subject string
	Body    string
	IsHTML  bool
}

// Provider abstracts the outbound mail transport.
type Provider interface {
	Send(email *Email) error
	Validate() error
	Close() error
}
