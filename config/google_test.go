package config

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestExchangeCodeHitsTokenEndpoint(t *testing.T) {
	var gotCode string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotCode = r.Form.Get("code")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token": "at-123", "token_type": "Bearer", "expires_in": 3600}`))
	}))
	defer srv.Close()

	g := &GoogleConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		Config: &oauth2.Config{
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			Endpoint: oauth2.Endpoint{
				AuthURL:  srv.URL + "/auth",
				TokenURL: srv.URL + "/token",
			},
		},
	}

	token, err := g.ExchangeCode(context.Background(), "code-1")

	require.NoError(t, err)
	assert.Equal(t, "code-1", gotCode)
	assert.Equal(t, "at-123", token.AccessToken)
}

func TestExchangeCodeSurfacesTokenEndpointError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "invalid_grant"}`))
	}))
	defer srv.Close()

	g := &GoogleConfig{
		Config: &oauth2.Config{
			Endpoint: oauth2.Endpoint{TokenURL: srv.URL + "/token"},
		},
	}

	_, err := g.ExchangeCode(context.Background(), "expired-code")

	assert.Error(t, err)
}
