package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hubcompliance/compliance-hub/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEmailJSService(serverURL string) *EmailJSService {
	return &EmailJSService{
		client: resty.New().SetTimeout(5 * time.Second),
		config: &config.EmailJSConfig{
			ServiceID:        "svc_1",
			TemplateID:       "tpl_default",
			VendorTemplateID: "tpl_vendor",
			PublicKey:        "pub",
			PrivateKey:       "priv",
		},
		endpoint: serverURL,
	}
}

func TestSendBuildsProviderPayload(t *testing.T) {
	var payload map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &payload))
		w.Write([]byte("OK"))
	}))
	defer server.Close()

	svc := newTestEmailJSService(server.URL)
	result, err := svc.Send(context.Background(), EmailMessage{
		To:      "dpo@acme.it",
		Subject: "Promemoria",
		Params:  map[string]string{"task_title": "Aggiornare il registro"},
	})
	require.NoError(t, err)

	assert.True(t, result.Accepted)
	assert.Equal(t, 200, result.StatusCode)

	assert.Equal(t, "svc_1", payload["service_id"])
	assert.Equal(t, "tpl_default", payload["template_id"])
	assert.Equal(t, "pub", payload["user_id"])
	assert.Equal(t, "priv", payload["accessToken"])

	params := payload["template_params"].(map[string]any)
	assert.Equal(t, "dpo@acme.it", params["to_email"])
	assert.Equal(t, "Promemoria", params["subject"])
	assert.Equal(t, "Aggiornare il registro", params["task_title"])
}

func TestSendVendorInviteUsesVendorTemplate(t *testing.T) {
	var payload map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &payload))
		w.Write([]byte("OK"))
	}))
	defer server.Close()

	svc := newTestEmailJSService(server.URL)
	result, err := svc.SendVendorInvite(context.Background(), VendorInviteParams{
		VendorName:  "Fornitore Srl",
		VendorEmail: "security@fornitore.it",
		CompanyName: "Acme Spa",
		PortalURL:   "https://app.example.com/vendor-portal/abc",
	})
	require.NoError(t, err)
	assert.True(t, result.Accepted)

	assert.Equal(t, "tpl_vendor", payload["template_id"])
	params := payload["template_params"].(map[string]any)
	assert.Equal(t, "Fornitore Srl", params["vendor_name"])
	assert.Equal(t, "https://app.example.com/vendor-portal/abc", params["portal_url"])
}

func TestSendProviderRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte("The template ID is invalid"))
	}))
	defer server.Close()

	svc := newTestEmailJSService(server.URL)
	result, err := svc.Send(context.Background(), EmailMessage{To: "dpo@acme.it"})
	require.Error(t, err)
	require.NotNil(t, result)

	assert.False(t, result.Accepted)
	assert.Equal(t, 422, result.StatusCode)
	assert.Contains(t, result.Body, "template ID")
}

func TestSendMissingRecipient(t *testing.T) {
	svc := newTestEmailJSService("http://unused")
	_, err := svc.Send(context.Background(), EmailMessage{})
	require.Error(t, err)
}
