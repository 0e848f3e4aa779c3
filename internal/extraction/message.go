package extraction

import "context"

// Message is a normalized mail message: the adapter flattens whatever the
// mail API returns into a subject heading plus a plain-text body.
type Message struct {
	ID      string
	Subject string
	Body    string
}

// Content returns the single content string fed to the extractor, with the
// subject as the leading heading.
func (m Message) Content() string {
	if m.Subject == "" {
		return m.Body
	}
	return m.Subject + "\n\n" + m.Body
}

// MessageSource fetches recent messages from a mail account. Implementations
// live under internal/platform; the extraction pipeline never talks to a
// mail API directly.
type MessageSource interface {
	FetchRecent(ctx context.Context, max int) ([]Message, error)
}
