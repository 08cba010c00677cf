package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Matias-sh/mi-portafolio/metal/env"
)

func sample() ContactNotification {
	return ContactNotification{
		Name:    "Ana",
		Email:   "ana@example.com",
		Subject: "Hola",
		Message: "Quiero contactarte",
	}
}

func TestContactNotificationFormatting(t *testing.T) {
	n := sample()

	if n.Title() != "Contacto Portfolio: Hola" {
		t.Fatalf("unexpected title %q", n.Title())
	}

	want := "Nombre: Ana\nEmail: ana@example.com\n\nMensaje:\nQuiero contactarte"
	if n.Body() != want {
		t.Fatalf("unexpected body %q", n.Body())
	}
}

func TestResendNotifierPostsPayload(t *testing.T) {
	var got resendPayload
	var auth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"id":"email-1"}`))
	}))
	defer server.Close()

	notifier, err := NewResendNotifier(env.MailEnvironment{
		ApiURL: server.URL,
		ApiKey: "re_test_key",
		From:   "portfolio@example.com",
		To:     "owner@example.com",
	}, nil)

	if err != nil {
		t.Fatalf("new notifier: %v", err)
	}

	if err := notifier.Notify(context.Background(), sample()); err != nil {
		t.Fatalf("notify: %v", err)
	}

	if auth != "Bearer re_test_key" {
		t.Fatalf("unexpected auth header %q", auth)
	}

	if got.Subject != "Contacto Portfolio: Hola" || len(got.To) != 1 || got.To[0] != "owner@example.com" || got.ReplyTo != "ana@example.com" {
		t.Fatalf("unexpected payload %+v", got)
	}
}

func TestResendNotifierReportsUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	notifier, _ := NewResendNotifier(env.MailEnvironment{ApiURL: server.URL, ApiKey: "re_test_key"}, nil)

	if err := notifier.Notify(context.Background(), sample()); err == nil {
		t.Fatalf("expected upstream error")
	}
}

func TestNewResendNotifierRequiresKey(t *testing.T) {
	if _, err := NewResendNotifier(env.MailEnvironment{}, nil); err == nil {
		t.Fatalf("expected error without api key")
	}
}

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := LogNotifier{Logger: slog.New(slog.NewTextHandler(&buf, nil))}

	if err := n.Notify(context.Background(), sample()); err != nil {
		t.Fatalf("notify: %v", err)
	}

	if !strings.Contains(buf.String(), "Contacto Portfolio: Hola") {
		t.Fatalf("expected subject in logs, got %q", buf.String())
	}
}
