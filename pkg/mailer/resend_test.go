package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ghuser/stockledger/pkg/config"
)

func newTestMailer(baseURL string) *ResendMailer {
	return NewResendMailer(&config.Config{
		MailerBaseURL: baseURL,
		MailerAPIKey:  "test-key",
		AlertFrom:     "Stockledger <alerts@stockledger.dev>",
	})
}

func TestSendLowStockAlert_PostsToEmailsEndpoint(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"email_123"}`))
	}))
	defer srv.Close()

	m := newTestMailer(srv.URL)
	err := m.SendLowStockAlert(context.Background(), "vendor@example.com", []LowStockItem{
		{Name: "Rice 5kg", Quantity: 2, Threshold: 5},
		{Name: "Beans", Quantity: 0, Threshold: 3},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/emails" {
		t.Errorf("expected POST /emails, got %q", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("expected bearer auth, got %q", gotAuth)
	}
	if to, _ := gotBody["to"].([]any); len(to) != 1 || to[0] != "vendor@example.com" {
		t.Errorf("unexpected to field: %v", gotBody["to"])
	}
	htmlBody, _ := gotBody["html"].(string)
	if !strings.Contains(htmlBody, "Rice 5kg") || !strings.Contains(htmlBody, "2 left") {
		t.Errorf("html body missing item details: %q", htmlBody)
	}
}

func TestSendLowStockAlert_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid api key"}`))
	}))
	defer srv.Close()

	m := newTestMailer(srv.URL)
	err := m.SendLowStockAlert(context.Background(), "vendor@example.com", []LowStockItem{
		{Name: "Rice", Quantity: 1, Threshold: 5},
	})
	if err == nil {
		t.Fatal("expected error on 401 response")
	}
	if !strings.Contains(err.Error(), "invalid api key") {
		t.Errorf("expected API message in error, got %v", err)
	}
}

func TestSendLowStockAlert_EmptyDestination(t *testing.T) {
	m := newTestMailer("http://localhost:0")
	err := m.SendLowStockAlert(context.Background(), "", []LowStockItem{{Name: "Rice", Quantity: 1, Threshold: 5}})
	if err == nil {
		t.Fatal("expected error for empty destination")
	}
}

func TestSendLowStockAlert_NoItemsIsNoop(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	m := newTestMailer(srv.URL)
	if err := m.SendLowStockAlert(context.Background(), "vendor@example.com", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if called {
		t.Fatal("expected no HTTP call for empty item list")
	}
}

func TestRenderLowStockHTML_EscapesNames(t *testing.T) {
	out := renderLowStockHTML([]LowStockItem{{Name: "<script>bad</script>", Quantity: 1, Threshold: 5}})
	if strings.Contains(out, "<script>") {
		t.Fatal("item names must be HTML-escaped")
	}
}
