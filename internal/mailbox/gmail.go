// Package mailbox fetches statement emails with PDF attachments from
// Gmail. Authentication and token lifecycle live entirely here; the
// pipeline treats any failure to authenticate as fatal for the user's
// run.
package mailbox

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// Source is a discovered statement email attachment. Sources are
// immutable and discarded after processing; only the extracted record
// is persisted.
type Source struct {
	SenderDomain string
	Filename     string
	Raw          []byte
	ReceivedAt   time.Time
	MessageID    string
}

// Client wraps the Gmail API for statement discovery.
type Client struct {
	svc *gmail.Service
}

// NewClient authenticates against Gmail for the given user. It expects
// credentials.json and a previously issued token_<user>.json in
// credsDir; a missing or invalid token is a fatal precondition, not
// something the batch recovers from.
func NewClient(ctx context.Context, credsDir, user string) (*Client, error) {
	credBytes, err := os.ReadFile(filepath.Join(credsDir, "credentials.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials.json: %w", err)
	}
	cfg, err := google.ConfigFromJSON(credBytes, gmail.GmailReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OAuth client config: %w", err)
	}

	tokenPath := filepath.Join(credsDir, fmt.Sprintf("token_%s.json", user))
	tokenBytes, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read token for %s: %w", user, err)
	}
	var token oauth2.Token
	if err := json.Unmarshal(tokenBytes, &token); err != nil {
		return nil, fmt.Errorf("failed to parse token for %s: %w", user, err)
	}

	svc, err := gmail.NewService(ctx, option.WithTokenSource(cfg.TokenSource(ctx, &token)))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gmail service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// Search finds messages from any of the given sender domains carrying a
// PDF attachment, received within the last windowDays days, and
// downloads each attachment. Individual unreadable messages are skipped;
// only the search itself failing aborts.
func (c *Client) Search(ctx context.Context, domains []string, windowDays int) ([]Source, error) {
	if len(domains) == 0 {
		return nil, nil
	}

	froms := make([]string, len(domains))
	for i, d := range domains {
		froms[i] = "from:" + d
	}
	after := time.Now().AddDate(0, 0, -windowDays).Format("2006/01/02")
	query := fmt.Sprintf("(%s) has:attachment filename:pdf after:%s", strings.Join(froms, " OR "), after)

	var sources []Source
	pageToken := ""
	for {
		call := c.svc.Users.Messages.List("me").Q(query).Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("gmail search failed: %w", err)
		}
		for _, m := range resp.Messages {
			found, err := c.fetchMessage(ctx, m.Id)
			if err != nil {
				continue
			}
			sources = append(sources, found...)
		}
		if resp.NextPageToken == "" {
			break
		}
		pageToken = resp.NextPageToken
	}
	return sources, nil
}

// fetchMessage downloads every PDF attachment of one message.
func (c *Client) fetchMessage(ctx context.Context, id string) ([]Source, error) {
	msg, err := c.svc.Users.Messages.Get("me", id).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get message %s: %w", id, err)
	}

	senderDomain := headerDomain(msg.Payload)
	receivedAt := time.UnixMilli(msg.InternalDate)

	var sources []Source
	for _, part := range flattenParts(msg.Payload) {
		if !strings.HasSuffix(strings.ToLower(part.Filename), ".pdf") {
			continue
		}
		if part.Body == nil || part.Body.AttachmentId == "" {
			continue
		}
		att, err := c.svc.Users.Messages.Attachments.Get("me", id, part.Body.AttachmentId).Context(ctx).Do()
		if err != nil {
			continue
		}
		raw, err := decodeAttachment(att.Data)
		if err != nil {
			continue
		}
		sources = append(sources, Source{
			SenderDomain: senderDomain,
			Filename:     part.Filename,
			Raw:          raw,
			ReceivedAt:   receivedAt,
			MessageID:    id,
		})
	}
	return sources, nil
}

// flattenParts walks the MIME tree depth-first; attachments can hide
// inside nested multipart containers.
func flattenParts(payload *gmail.MessagePart) []*gmail.MessagePart {
	if payload == nil {
		return nil
	}
	parts := []*gmail.MessagePart{payload}
	for _, p := range payload.Parts {
		parts = append(parts, flattenParts(p)...)
	}
	return parts
}

// headerDomain extracts the lowercase domain of the From header.
func headerDomain(payload *gmail.MessagePart) string {
	if payload == nil {
		return ""
	}
	for _, h := range payload.Headers {
		if !strings.EqualFold(h.Name, "From") {
			continue
		}
		addr, err := mail.ParseAddress(h.Value)
		if err != nil {
			// Fall back to the raw header for senders with
			// non-RFC display names.
			if i := strings.LastIndex(h.Value, "@"); i >= 0 {
				return strings.ToLower(strings.Trim(h.Value[i+1:], "<> "))
			}
			return ""
		}
		if i := strings.LastIndex(addr.Address, "@"); i >= 0 {
			return strings.ToLower(addr.Address[i+1:])
		}
	}
	return ""
}

// decodeAttachment decodes Gmail's URL-safe base64 attachment payload.
func decodeAttachment(data string) ([]byte, error) {
	if raw, err := base64.URLEncoding.DecodeString(data); err == nil {
		return raw, nil
	}
	return base64.RawURLEncoding.DecodeString(data)
}
