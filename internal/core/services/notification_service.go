package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"evercare-dental/internal/config"
	"evercare-dental/internal/pkg/phone"
)

// Notifier sends booking messages to patients. AppointmentService and
// ReminderService depend on this interface so tests can fake it.
type Notifier interface {
	IsEnabled() bool
	IsRequired() bool
	SendBookingConfirmation(ctx context.Context, mobile, fullName, date, timeSlot string) error
	SendReminder(ctx context.Context, mobile, fullName, date, timeSlot string) error
}

// NotificationService sends WhatsApp template messages through the
// Cloud API. Disabled entirely when no token is configured.
type NotificationService struct {
	cfg    config.WhatsAppConfig
	client *http.Client
}

// NewNotificationService creates a new notification service
func NewNotificationService(cfg config.WhatsAppConfig) *NotificationService {
	return &NotificationService{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// IsEnabled checks if notification is enabled
func (s *NotificationService) IsEnabled() bool {
	return s.cfg.Token != "" && s.cfg.PhoneNumberID != ""
}

// IsRequired reports whether a failed send must fail the booking
// request instead of being logged and swallowed.
func (s *NotificationService) IsRequired() bool {
	return s.cfg.Required
}

// templateMessage is the WhatsApp Cloud API template payload
type templateMessage struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Template         template `json:"template"`
}

type template struct {
	Name       string      `json:"name"`
	Language   language    `json:"language"`
	Components []component `json:"components,omitempty"`
}

type language struct {
	Code string `json:"code"`
}

type component struct {
	Type       string      `json:"type"`
	Parameters []parameter `json:"parameters"`
}

type parameter struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// SendBookingConfirmation sends the booking confirmation template to
// the booking contact's normalized number.
func (s *NotificationService) SendBookingConfirmation(ctx context.Context, mobile, fullName, date, timeSlot string) error {
	return s.sendTemplate(ctx, mobile, fullName, date, timeSlot)
}

// SendReminder sends the appointment-day reminder
func (s *NotificationService) SendReminder(ctx context.Context, mobile, fullName, date, timeSlot string) error {
	return s.sendTemplate(ctx, mobile, fullName, date, timeSlot)
}

// sendTemplate posts one template message to the Cloud API
func (s *NotificationService) sendTemplate(ctx context.Context, mobile, fullName, date, timeSlot string) error {
	if !s.IsEnabled() {
		return nil
	}

	msg := templateMessage{
		MessagingProduct: "whatsapp",
		To:               phone.Normalize(mobile, s.cfg.CountryPrefix),
		Type:             "template",
		Template: template{
			Name:     s.cfg.TemplateName,
			Language: language{Code: "en_US"},
			Components: []component{
				{
					Type: "body",
					Parameters: []parameter{
						{Type: "text", Text: fullName},
						{Type: "text", Text: date},
						{Type: "text", Text: timeSlot},
					},
				},
			},
		},
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/%s/messages", s.cfg.APIBase, s.cfg.PhoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.Token)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("whatsapp api returned status %d", resp.StatusCode)
	}

	return nil
}
