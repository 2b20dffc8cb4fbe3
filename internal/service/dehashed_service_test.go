package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hubcompliance/compliance-hub/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDeHashedService(serverURL string) *DeHashedService {
	return &DeHashedService{
		client: resty.New().SetTimeout(5 * time.Second),
		config: &config.DehashedConfig{
			BaseURL:  serverURL,
			Username: "user@example.com",
			APIKey:   "test-key",
		},
	}
}

func TestCheckDomainParsesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "user@example.com", user)
		assert.Equal(t, "test-key", pass)
		assert.Equal(t, "domain:acme.it", r.URL.Query().Get("query"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"total": 42,
			"entries": [
				{"email": "mario.rossi@acme.it"},
				{"email": ""},
				{"email": "anna.bianchi@acme.it"}
			]
		}`))
	}))
	defer server.Close()

	svc := newTestDeHashedService(server.URL)
	report, err := svc.CheckDomain(context.Background(), "acme.it")
	require.NoError(t, err)

	assert.Equal(t, "acme.it", report.Domain)
	assert.Equal(t, int64(42), report.Total)
	assert.Equal(t, "HIGH", report.RiskLevel)
	assert.Equal(t, []string{"mario.rossi@acme.it", "anna.bianchi@acme.it"}, report.Samples)
}

func TestCheckDomainEmptyDomain(t *testing.T) {
	svc := newTestDeHashedService("http://unused")
	_, err := svc.CheckDomain(context.Background(), "")
	require.Error(t, err)
}

func TestCheckDomainUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	svc := newTestDeHashedService(server.URL)
	_, err := svc.CheckDomain(context.Background(), "acme.it")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestBreachRiskLevel(t *testing.T) {
	assert.Equal(t, "LOW", breachRiskLevel(0))
	assert.Equal(t, "MEDIUM", breachRiskLevel(1))
	assert.Equal(t, "MEDIUM", breachRiskLevel(19))
	assert.Equal(t, "HIGH", breachRiskLevel(20))
}
