package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"evercare-dental/internal/config"
)

func TestSendBookingConfirmation(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := NewNotificationService(config.WhatsAppConfig{
		Token:         "test-token",
		PhoneNumberID: "12345",
		APIBase:       server.URL,
		TemplateName:  "booking_confirmed",
		CountryPrefix: "2",
	})

	err := svc.SendBookingConfirmation(context.Background(), "01014283454", "John Carter", "2026-09-01", "03:30")
	if err != nil {
		t.Fatalf("SendBookingConfirmation() error = %v", err)
	}

	if gotPath != "/12345/messages" {
		t.Errorf("path = %q, want /12345/messages", gotPath)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("auth header = %q", gotAuth)
	}
	if gotBody["messaging_product"] != "whatsapp" {
		t.Errorf("messaging_product = %v", gotBody["messaging_product"])
	}
	if gotBody["to"] != "201014283454" {
		t.Errorf("to = %v, want normalized 201014283454", gotBody["to"])
	}
	tmpl, _ := gotBody["template"].(map[string]interface{})
	if tmpl == nil || tmpl["name"] != "booking_confirmed" {
		t.Errorf("template = %v", gotBody["template"])
	}
}

func TestSendBookingConfirmationAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	svc := NewNotificationService(config.WhatsAppConfig{
		Token:         "bad-token",
		PhoneNumberID: "12345",
		APIBase:       server.URL,
		TemplateName:  "booking_confirmed",
		CountryPrefix: "2",
	})

	if err := svc.SendBookingConfirmation(context.Background(), "01014283454", "John Carter", "2026-09-01", "03:30"); err == nil {
		t.Error("SendBookingConfirmation() error = nil, want error on non-2xx")
	}
}

func TestNotificationDisabledWithoutToken(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	svc := NewNotificationService(config.WhatsAppConfig{
		APIBase:       server.URL,
		CountryPrefix: "2",
	})

	if svc.IsEnabled() {
		t.Error("IsEnabled() = true without token")
	}
	if err := svc.SendBookingConfirmation(context.Background(), "01014283454", "John Carter", "2026-09-01", "03:30"); err != nil {
		t.Errorf("SendBookingConfirmation() error = %v, want silent no-op", err)
	}
	if calls != 0 {
		t.Errorf("API called %d times while disabled", calls)
	}
}

func TestNotificationRequiredFlag(t *testing.T) {
	strict := NewNotificationService(config.WhatsAppConfig{Required: true})
	if !strict.IsRequired() {
		t.Error("IsRequired() = false, want true")
	}
	lax := NewNotificationService(config.WhatsAppConfig{})
	if lax.IsRequired() {
		t.Error("IsRequired() = true, want false")
	}
}
