package portfolio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// emailEndpoint is the EmailJS REST send endpoint. The service is a black
// box: a 200 means sent, anything else is a failure the operator retries by
// resubmitting the form.
const emailEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Mailer submits contact-form messages to the transactional-email service.
type Mailer struct {
	serviceID  string
	templateID string
	publicKey  string
	endpoint   string
	client     *http.Client
}

// NewMailer builds a Mailer from the configured EmailJS credentials.
func NewMailer(cfg SiteConfig) *Mailer {
	return &Mailer{
		serviceID:  cfg.EmailServiceID,
		templateID: cfg.EmailTemplateID,
		publicKey:  cfg.EmailPublicKey,
		endpoint:   emailEndpoint,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// ValidateMessage checks a submission before it is forwarded.
func ValidateMessage(msg ContactMessage) error {
	switch {
	case strings.TrimSpace(msg.Name) == "":
		return &ValidationError{Field: "name", Reason: "required"}
	case strings.TrimSpace(msg.Email) == "":
		return &ValidationError{Field: "email", Reason: "required"}
	case !emailRe.MatchString(msg.Email):
		return &ValidationError{Field: "email", Reason: "not a valid address"}
	case strings.TrimSpace(msg.Message) == "":
		return &ValidationError{Field: "message", Reason: "required"}
	}
	return nil
}

// Send forwards msg through the email service. The message content is the
// only thing logged upstream of this call; credentials never are.
func (m *Mailer) Send(ctx context.Context, msg ContactMessage) error {
	if m.serviceID == "" || m.templateID == "" || m.publicKey == "" {
		return fmt.Errorf("email service is not configured")
	}
	if err := ValidateMessage(msg); err != nil {
		return err
	}

	payload := map[string]interface{}{
		"service_id":      m.serviceID,
		"template_id":     m.templateID,
		"user_id":         m.publicKey,
		"template_params": msg,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("email service returned %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	return nil
}
