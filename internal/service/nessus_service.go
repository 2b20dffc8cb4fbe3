package service

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hubcompliance/compliance-hub/internal/config"
	"github.com/tidwall/gjson"
)

type ScannerServiceInterface interface {
	ListScans(ctx context.Context) ([]ScanSummary, error)
	GetScanDetail(ctx context.Context, scanID int64) (*ScanDetail, error)
}

type ScanSummary struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Status       string `json:"status"`
	LastModified int64  `json:"last_modified"`
}

type ScanDetail struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Severity map[string]int64 `json:"severity"`
}

type NessusService struct {
	client *resty.Client
	config *config.NessusConfig
}

func NewNessusService() *NessusService {
	nessusConfig := config.LoadNessusConfig()
	// Nessus appliances commonly run with self-signed certificates.
	client := resty.New().
		SetTimeout(30 * time.Second).
		SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}).
		SetHeader("X-ApiKeys", fmt.Sprintf("accessKey=%s; secretKey=%s", nessusConfig.AccessKey, nessusConfig.SecretKey))
	return &NessusService{client: client, config: nessusConfig}
}

func (s *NessusService) ListScans(ctx context.Context) ([]ScanSummary, error) {
	if s.config.URL == "" {
		return nil, fmt.Errorf("nessus url not configured")
	}

	resp, err := s.client.R().
		SetContext(ctx).
		Get(s.config.URL + "/scans")
	if err != nil {
		return nil, fmt.Errorf("nessus request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("nessus returned status %d: %s", resp.StatusCode(), resp.String())
	}

	var scans []ScanSummary
	for _, scan := range gjson.Get(resp.String(), "scans").Array() {
		scans = append(scans, ScanSummary{
			ID:           scan.Get("id").Int(),
			Name:         scan.Get("name").String(),
			Status:       scan.Get("status").String(),
			LastModified: scan.Get("last_modification_date").Int(),
		})
	}
	return scans, nil
}

func (s *NessusService) GetScanDetail(ctx context.Context, scanID int64) (*ScanDetail, error) {
	if s.config.URL == "" {
		return nil, fmt.Errorf("nessus url not configured")
	}

	resp, err := s.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("%s/scans/%d", s.config.URL, scanID))
	if err != nil {
		return nil, fmt.Errorf("nessus request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("nessus returned status %d: %s", resp.StatusCode(), resp.String())
	}

	body := resp.String()
	severity := map[string]int64{}
	for _, host := range gjson.Get(body, "hosts").Array() {
		severity["critical"] += host.Get("critical").Int()
		severity["high"] += host.Get("high").Int()
		severity["medium"] += host.Get("medium").Int()
		severity["low"] += host.Get("low").Int()
		severity["info"] += host.Get("info").Int()
	}

	return &ScanDetail{
		ID:       scanID,
		Name:     gjson.Get(body, "info.name").String(),
		Severity: severity,
	}, nil
}
