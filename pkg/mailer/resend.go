// Package mailer delivers low-stock alert emails through a Resend-compatible
// HTTP API. The core only decides which items qualify; rendering and delivery
// live here so the domain stays free of transport concerns.
package mailer

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ghuser/stockledger/pkg/config"
)

// LowStockItem is one line of a low-stock alert email.
type LowStockItem struct {
	Name      string
	Quantity  int
	Threshold int
}

// Mailer sends low-stock alerts to a destination address.
type Mailer interface {
	SendLowStockAlert(ctx context.Context, to string, items []LowStockItem) error
}

// ResendMailer implements Mailer against the Resend transactional email API.
type ResendMailer struct {
	client *resty.Client
	from   string
}

type sendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendEmailResponse struct {
	ID string `json:"id"`
}

type apiError struct {
	Message string `json:"message"`
}

// NewResendMailer returns a Mailer configured from cfg.
// An empty API key is allowed in development; Send calls will fail with 401
// from the API, which callers treat as best-effort.
func NewResendMailer(cfg *config.Config) *ResendMailer {
	client := resty.New().
		SetBaseURL(cfg.MailerBaseURL).
		SetAuthToken(cfg.MailerAPIKey).
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)

	return &ResendMailer{client: client, from: cfg.AlertFrom}
}

// SendLowStockAlert emails the given items to the destination address.
// Returns an error with the API's message on non-2xx responses.
func (m *ResendMailer) SendLowStockAlert(ctx context.Context, to string, items []LowStockItem) error {
	if to == "" {
		return fmt.Errorf("mailer: destination address is empty")
	}
	if len(items) == 0 {
		return nil
	}

	var apiErr apiError
	resp, err := m.client.R().
		SetContext(ctx).
		SetBody(sendEmailRequest{
			From:    m.from,
			To:      []string{to},
			Subject: "Low Stock Alert - Action Required",
			HTML:    renderLowStockHTML(items),
		}).
		SetResult(&sendEmailResponse{}).
		SetError(&apiErr).
		Post("/emails")
	if err != nil {
		return fmt.Errorf("mailer: send: %w", err)
	}
	if resp.IsError() {
		if apiErr.Message != "" {
			return fmt.Errorf("mailer: send failed (%d): %s", resp.StatusCode(), apiErr.Message)
		}
		return fmt.Errorf("mailer: send failed (%d)", resp.StatusCode())
	}
	return nil
}

// renderLowStockHTML produces a minimal HTML body listing each item and the
// units remaining. Anything fancier belongs in a real template pipeline.
func renderLowStockHTML(items []LowStockItem) string {
	var b strings.Builder
	b.WriteString("<h2>Low Stock Alert</h2>")
	b.WriteString("<p>The following items have fallen to or below their restock threshold:</p><ul>")
	for _, it := range items {
		fmt.Fprintf(&b, "<li><strong>%s</strong>: %d left (threshold %d)</li>",
			html.EscapeString(it.Name), it.Quantity, it.Threshold)
	}
	b.WriteString("</ul><p>Restock soon to avoid missed sales.</p>")
	return b.String()
}
