// Package contact forwards contact-form messages to the external form-relay
// sink and builds outbound messaging deep links.
package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Message is the contact form payload.
type Message struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// Relay posts messages to a fixed external sink as {"data": {...}}.
type Relay struct {
	url string
	hc  *http.Client
}

func NewRelay(url string) *Relay {
	return &Relay{url: url, hc: &http.Client{Timeout: 15 * time.Second}}
}

// Send is fire-and-forget apart from the success/failure signal: the sink's
// response body is not consumed beyond the status code.
func (r *Relay) Send(ctx context.Context, m Message) error {
	if r.url == "" {
		return errors.New("contact relay not configured")
	}
	body, err := json.Marshal(map[string]Message{"data": m})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := r.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("relay responded %d", resp.StatusCode)
	}
	return nil
}

// Summary renders the message for an ops notification email.
func (m Message) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", m.Name)
	fmt.Fprintf(&b, "Email: %s\n", m.Email)
	fmt.Fprintf(&b, "Phone: %s\n", m.Phone)
	fmt.Fprintf(&b, "\n%s\n", m.Message)
	return b.String()
}
