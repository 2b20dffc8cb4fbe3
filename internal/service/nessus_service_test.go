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

func newTestNessusService(serverURL string) *NessusService {
	return &NessusService{
		client: resty.New().
			SetTimeout(5 * time.Second).
			SetHeader("X-ApiKeys", "accessKey=ak; secretKey=sk"),
		config: &config.NessusConfig{
			URL:       serverURL,
			AccessKey: "ak",
			SecretKey: "sk",
		},
	}
}

func TestListScans(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/scans", r.URL.Path)
		assert.Equal(t, "accessKey=ak; secretKey=sk", r.Header.Get("X-ApiKeys"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"scans": [
				{"id": 12, "name": "Perimetro esterno", "status": "completed", "last_modification_date": 1756200000},
				{"id": 13, "name": "Rete interna", "status": "running", "last_modification_date": 1756300000}
			]
		}`))
	}))
	defer server.Close()

	svc := newTestNessusService(server.URL)
	scans, err := svc.ListScans(context.Background())
	require.NoError(t, err)
	require.Len(t, scans, 2)

	assert.Equal(t, int64(12), scans[0].ID)
	assert.Equal(t, "Perimetro esterno", scans[0].Name)
	assert.Equal(t, "completed", scans[0].Status)
	assert.Equal(t, "running", scans[1].Status)
}

func TestGetScanDetailAggregatesSeverity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/scans/12", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"info": {"name": "Perimetro esterno"},
			"hosts": [
				{"critical": 1, "high": 2, "medium": 3, "low": 4, "info": 5},
				{"critical": 0, "high": 1, "medium": 0, "low": 2, "info": 7}
			]
		}`))
	}))
	defer server.Close()

	svc := newTestNessusService(server.URL)
	detail, err := svc.GetScanDetail(context.Background(), 12)
	require.NoError(t, err)

	assert.Equal(t, "Perimetro esterno", detail.Name)
	assert.Equal(t, int64(1), detail.Severity["critical"])
	assert.Equal(t, int64(3), detail.Severity["high"])
	assert.Equal(t, int64(3), detail.Severity["medium"])
	assert.Equal(t, int64(6), detail.Severity["low"])
	assert.Equal(t, int64(12), detail.Severity["info"])
}

func TestListScansNoURL(t *testing.T) {
	svc := &NessusService{client: resty.New(), config: &config.NessusConfig{}}
	_, err := svc.ListScans(context.Background())
	require.Error(t, err)
}
