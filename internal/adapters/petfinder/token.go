package petfinder

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"pet-finder/internal/platform/httpclient"
	"pet-finder/internal/platform/logger"
	"pet-finder/internal/platform/metrics"
	ports "pet-finder/internal/ports/petfinder"
)

const tokenPath = "/oauth2/token"

// TokenManager obtiene y cachea el bearer token (client-credentials grant).
// Se renueva de forma lazy: al primer uso o cuando la edad alcanza el TTL.
type TokenManager struct {
	http         *httpclient.Client
	clientID     string
	clientSecret string
	ttl          time.Duration
	now          func() time.Time
	log          logger.Logger

	// mu se mantiene durante el intercambio: dos callers concurrentes no piden dos tokens.
	mu   sync.Mutex
	cred *ports.Credential
}

func NewTokenManager(hc *httpclient.Client, clientID, clientSecret string, ttl time.Duration, log logger.Logger) *TokenManager {
	if log == nil {
		log = logger.Nop()
	}
	return &TokenManager{
		http:         hc,
		clientID:     strings.TrimSpace(clientID),
		clientSecret: strings.TrimSpace(clientSecret),
		ttl:          ttl,
		now:          time.Now,
		log:          log,
	}
}

type tokenRequest struct {
	GrantType    string `json:"grant_type"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

type tokenResponse struct {
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	AccessToken string `json:"access_token"`
}

// Token devuelve el token cacheado si su edad es menor al TTL; si no, pide uno nuevo.
// Los fallos no se reintentan.
func (m *TokenManager) Token(ctx context.Context) (ports.Credential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if m.cred != nil && now.Sub(m.cred.AcquiredAt) < m.ttl {
		return *m.cred, nil
	}

	var out tokenResponse
	err := m.http.DoJSON(ctx, http.MethodPost, tokenPath, nil, tokenRequest{
		GrantType:    "client_credentials",
		ClientID:     m.clientID,
		ClientSecret: m.clientSecret,
	}, &out)
	if err != nil {
		return ports.Credential{}, fmt.Errorf("%w: %v", ErrAuth, err)
	}

	token := strings.TrimSpace(out.AccessToken)
	if token == "" {
		return ports.Credential{}, fmt.Errorf("%w: response missing access_token", ErrAuth)
	}

	m.cred = &ports.Credential{AccessToken: token, AcquiredAt: now}
	metrics.TokenRefreshes.Inc()
	m.log.Info("petfinder token acquired", map[string]any{"expires_in": out.ExpiresIn})

	return *m.cred, nil
}

// Invalidate descarta el token cacheado; el próximo Token() hace un intercambio nuevo.
func (m *TokenManager) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cred = nil
}

func (m *TokenManager) authHeaders(ctx context.Context) (map[string]string, error) {
	cred, err := m.Token(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]string{"Authorization": "Bearer " + cred.AccessToken}, nil
}
