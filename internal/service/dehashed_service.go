package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hubcompliance/compliance-hub/internal/config"
	"github.com/tidwall/gjson"
)

type BreachServiceInterface interface {
	CheckDomain(ctx context.Context, domain string) (*BreachReport, error)
}

// BreachReport summarizes credential exposure found for a domain.
type BreachReport struct {
	Domain    string    `json:"domain"`
	Total     int64     `json:"total"`
	RiskLevel string    `json:"risk_level"`
	Samples   []string  `json:"samples"`
	CheckedAt time.Time `json:"checked_at"`
}

type DeHashedService struct {
	client *resty.Client
	config *config.DehashedConfig
}

func NewDeHashedService() *DeHashedService {
	return &DeHashedService{
		client: resty.New().SetTimeout(30 * time.Second),
		config: config.LoadDehashedConfig(),
	}
}

func (s *DeHashedService) CheckDomain(ctx context.Context, domain string) (*BreachReport, error) {
	if domain == "" {
		return nil, fmt.Errorf("domain cannot be empty")
	}
	if s.config.Username == "" || s.config.APIKey == "" {
		return nil, fmt.Errorf("dehashed credentials not configured")
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBasicAuth(s.config.Username, s.config.APIKey).
		SetHeader("Accept", "application/json").
		SetQueryParam("query", fmt.Sprintf("domain:%s", domain)).
		Get(s.config.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("dehashed request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("dehashed returned status %d: %s", resp.StatusCode(), resp.String())
	}

	body := resp.String()
	total := gjson.Get(body, "total").Int()

	var samples []string
	for _, entry := range gjson.Get(body, "entries.#.email").Array() {
		if entry.String() == "" {
			continue
		}
		samples = append(samples, entry.String())
		if len(samples) >= 10 {
			break
		}
	}

	return &BreachReport{
		Domain:    domain,
		Total:     total,
		RiskLevel: breachRiskLevel(total),
		Samples:   samples,
		CheckedAt: time.Now(),
	}, nil
}

func breachRiskLevel(total int64) string {
	switch {
	case total == 0:
		return "LOW"
	case total < 20:
		return "MEDIUM"
	default:
		return "HIGH"
	}
}
