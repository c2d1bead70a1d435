// Package webhook delivers order submissions to a Discord-compatible chat
// webhook for manual staff review. Delivery is a single multipart POST with a
// structured embed payload and an optional proof-of-payment attachment; there
// is no retry and no deduplication downstream.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

const defaultBypassDelay = 2 * time.Second

// Message is the webhook payload envelope.
type Message struct {
	Username  string  `json:"username,omitempty"`
	AvatarURL string  `json:"avatar_url,omitempty"`
	Embeds    []Embed `json:"embeds"`
}

// Embed is a single rich-content block in the notification.
type Embed struct {
	Title       string  `json:"title,omitempty"`
	Description string  `json:"description,omitempty"`
	Color       int     `json:"color,omitempty"`
	Fields      []Field `json:"fields,omitempty"`
	Image       *Image  `json:"image,omitempty"`
	Footer      *Footer `json:"footer,omitempty"`
	Timestamp   string  `json:"timestamp,omitempty"`
}

// Field is one labeled value inside an embed.
type Field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// Image references either an uploaded attachment ("attachment://name") or an
// absolute URL.
type Image struct {
	URL string `json:"url"`
}

// Footer is the embed footer line.
type Footer struct {
	Text    string `json:"text,omitempty"`
	IconURL string `json:"icon_url,omitempty"`
}

// Attachment is a binary file uploaded alongside the payload.
type Attachment struct {
	Filename string
	Data     []byte
}

// Client posts messages to a configured webhook URL. An empty URL puts the
// client in bypass mode: Send waits briefly to simulate processing and then
// reports success, keeping the site demonstrable without a live endpoint.
type Client struct {
	url         string
	http        *http.Client
	bypassDelay time.Duration
}

// NewClient builds a webhook client for the given URL.
func NewClient(url string) *Client {
	return &Client{
		url:         strings.TrimSpace(url),
		http:        &http.Client{Timeout: 15 * time.Second},
		bypassDelay: defaultBypassDelay,
	}
}

// Configured reports whether a webhook endpoint is set.
func (c *Client) Configured() bool { return c != nil && c.url != "" }

// SetBypassDelay overrides the simulated processing delay (primarily for tests).
func (c *Client) SetBypassDelay(d time.Duration) {
	if d < 0 {
		d = 0
	}
	c.bypassDelay = d
}

// Send delivers one message, attaching proof when present. A non-2xx response
// or transport failure is returned as an error; the caller decides how to
// surface it. Send makes exactly one attempt.
func (c *Client) Send(ctx context.Context, msg Message, proof *Attachment) error {
	if !c.Configured() {
		select {
		case <-time.After(c.bypassDelay):
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("webhook: marshal payload: %w", err)
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if proof != nil && len(proof.Data) > 0 {
		part, err := w.CreateFormFile("file", proof.Filename)
		if err != nil {
			return fmt.Errorf("webhook: attach proof: %w", err)
		}
		if _, err := part.Write(proof.Data); err != nil {
			return fmt.Errorf("webhook: attach proof: %w", err)
		}
	}
	if err := w.WriteField("payload_json", string(payload)); err != nil {
		return fmt.Errorf("webhook: write payload: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("webhook: finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, &body)
	if err != nil {
		return fmt.Errorf("webhook: build request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("webhook: send: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook: status %d: %s", resp.StatusCode, drainError(resp.Body))
	}
	return nil
}

func drainError(r io.Reader) string {
	if r == nil {
		return ""
	}
	b, _ := io.ReadAll(io.LimitReader(r, 256))
	return strings.TrimSpace(string(b))
}
