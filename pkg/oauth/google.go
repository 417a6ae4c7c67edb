package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ikkim/matjip-backend/pkg/logger"
)

const googleTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

// GoogleVerifier Google ID 토큰 검증기
type GoogleVerifier struct {
	clientID   string
	httpClient *http.Client
	endpoint   string
}

func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{
		clientID:   clientID,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		endpoint:   googleTokenInfoURL,
	}
}

// Verify validates a Google ID token via the tokeninfo endpoint and
// checks that it was issued for our client ID.
func (v *GoogleVerifier) Verify(ctx context.Context, idToken string) (*Identity, error) {
	endpoint := fmt.Sprintf("%s?id_token=%s", v.endpoint, url.QueryEscape(idToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		logger.Error("Google tokeninfo request failed", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("Google token rejected", map[string]interface{}{
			"status_code": resp.StatusCode,
		})
		return nil, ErrTokenVerificationFailed
	}

	var payload struct {
		Aud   string `json:"aud"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	if payload.Aud != v.clientID || payload.Email == "" {
		return nil, ErrTokenVerificationFailed
	}

	name := payload.Name
	if name == "" {
		name = payload.Email
	}
	return &Identity{Email: payload.Email, Name: name}, nil
}
