package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hubcompliance/compliance-hub/internal/config"
)

const emailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

type EmailServiceInterface interface {
	Send(ctx context.Context, msg EmailMessage) (*SendResult, error)
	SendVendorInvite(ctx context.Context, params VendorInviteParams) (*SendResult, error)
}

// EmailMessage carries the template parameters of a single outbound mail.
type EmailMessage struct {
	TemplateID string
	To         string
	Subject    string
	Params     map[string]string
}

// SendResult reports the provider outcome. Callers decide how to react,
// delivery failures are never swallowed here.
type SendResult struct {
	StatusCode int
	Body       string
	Accepted   bool
}

type VendorInviteParams struct {
	VendorName  string
	VendorEmail string
	CompanyName string
	PortalURL   string
}

type EmailJSService struct {
	client   *resty.Client
	config   *config.EmailJSConfig
	endpoint string
}

func NewEmailJSService() *EmailJSService {
	return &EmailJSService{
		client:   resty.New().SetTimeout(15 * time.Second),
		config:   config.LoadEmailJSConfig(),
		endpoint: emailJSEndpoint,
	}
}

func (s *EmailJSService) Send(ctx context.Context, msg EmailMessage) (*SendResult, error) {
	if s.config.ServiceID == "" || s.config.PublicKey == "" {
		return nil, fmt.Errorf("emailjs credentials not configured")
	}
	if msg.To == "" {
		return nil, fmt.Errorf("recipient address cannot be empty")
	}

	templateID := msg.TemplateID
	if templateID == "" {
		templateID = s.config.TemplateID
	}

	templateParams := map[string]string{
		"to_email": msg.To,
		"subject":  msg.Subject,
	}
	for k, v := range msg.Params {
		templateParams[k] = v
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"service_id":      s.config.ServiceID,
			"template_id":     templateID,
			"user_id":         s.config.PublicKey,
			"accessToken":     s.config.PrivateKey,
			"template_params": templateParams,
		}).
		Post(s.endpoint)
	if err != nil {
		return nil, fmt.Errorf("emailjs request failed: %w", err)
	}

	result := &SendResult{
		StatusCode: resp.StatusCode(),
		Body:       resp.String(),
		Accepted:   resp.StatusCode() == 200,
	}
	if !result.Accepted {
		slog.Error("emailjs rejected message", "status", result.StatusCode, "body", result.Body, "to", msg.To)
		return result, fmt.Errorf("emailjs returned status %d", result.StatusCode)
	}

	slog.Info("email sent", "to", msg.To, "template", templateID)
	return result, nil
}

func (s *EmailJSService) SendVendorInvite(ctx context.Context, params VendorInviteParams) (*SendResult, error) {
	return s.Send(ctx, EmailMessage{
		TemplateID: s.config.VendorTemplateID,
		To:         params.VendorEmail,
		Subject:    "Valutazione sicurezza fornitori",
		Params: map[string]string{
			"vendor_name":  params.VendorName,
			"company_name": params.CompanyName,
			"portal_url":   params.PortalURL,
		},
	})
}
