package gmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"

	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/taskmind/taskmind-api/internal/extraction"
)

// Source implements extraction.MessageSource over the Gmail API.
type Source struct {
	service *gmailapi.Service
	logger  *slog.Logger
}

// NewSource authenticates against Gmail and returns a message source.
func NewSource(ctx context.Context, credentialsFile, tokenFile string, logger *slog.Logger) (*Source, error) {
	client, err := newHTTPClient(ctx, credentialsFile, tokenFile)
	if err != nil {
		return nil, fmt.Errorf("failed to get authenticated client for Gmail API: %w", err)
	}

	srv, err := gmailapi.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve Gmail service: %w", err)
	}

	return &Source{
		service: srv,
		logger:  logger.With("component", "gmail_source"),
	}, nil
}

// FetchRecent returns up to max messages received in the last day, each
// flattened to subject plus plain-text body.
func (s *Source) FetchRecent(ctx context.Context, max int) ([]extraction.Message, error) {
	list, err := s.service.Users.Messages.List("me").
		Q("newer_than:1d").
		MaxResults(int64(max)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	messages := make([]extraction.Message, 0, len(list.Messages))
	for _, ref := range list.Messages {
		full, err := s.service.Users.Messages.Get("me", ref.Id).
			Format("full").
			Context(ctx).
			Do()
		if err != nil {
			// One unreadable message should not sink the whole fetch.
			s.logger.WarnContext(ctx, "failed to fetch message, skipping",
				"message_id", ref.Id,
				"error", err)
			continue
		}
		messages = append(messages, flatten(full))
	}
	return messages, nil
}

// flatten reduces a Gmail message to its subject and best-effort text body.
func flatten(msg *gmailapi.Message) extraction.Message {
	out := extraction.Message{ID: msg.Id}
	if msg.Payload == nil {
		out.Body = msg.Snippet
		return out
	}

	for _, h := range msg.Payload.Headers {
		if h.Name == "Subject" {
			out.Subject = h.Value
			break
		}
	}

	if body := partText(msg.Payload); body != "" {
		out.Body = body
	} else {
		out.Body = msg.Snippet
	}
	return out
}

// partText walks a MIME tree and returns the first decodable text part,
// preferring text/plain over text/html.
func partText(part *gmailapi.MessagePart) string {
	if part == nil {
		return ""
	}

	if part.MimeType == "text/plain" {
		if text := decodeBody(part.Body); text != "" {
			return text
		}
	}

	for _, child := range part.Parts {
		if text := partText(child); text != "" {
			return text
		}
	}

	if part.MimeType == "text/html" {
		return decodeBody(part.Body)
	}
	if part.Body != nil && part.Body.Data != "" && len(part.Parts) == 0 {
		return decodeBody(part.Body)
	}
	return ""
}

func decodeBody(body *gmailapi.MessagePartBody) string {
	if body == nil || body.Data == "" {
		return ""
	}
	data, err := base64.URLEncoding.WithPadding(base64.NoPadding).DecodeString(body.Data)
	if err != nil {
		return ""
	}
	return string(data)
}
