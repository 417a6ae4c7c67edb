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

const facebookGraphURL = "https://graph.facebook.com/v18.0/me"

// FacebookVerifier Facebook 액세스 토큰 검증기
type FacebookVerifier struct {
	httpClient *http.Client
	endpoint   string
}

func NewFacebookVerifier() *FacebookVerifier {
	return &FacebookVerifier{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		endpoint:   facebookGraphURL,
	}
}

// Verify validates a Facebook access token against the Graph API.
func (v *FacebookVerifier) Verify(ctx context.Context, accessToken string) (*Identity, error) {
	endpoint := fmt.Sprintf("%s?fields=id,name,email&access_token=%s", v.endpoint, url.QueryEscape(accessToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		logger.Error("Facebook graph request failed", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("Facebook token rejected", map[string]interface{}{
			"status_code": resp.StatusCode,
		})
		return nil, ErrTokenVerificationFailed
	}

	var payload struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	// 이메일 권한이 없는 계정은 가입에 쓸 수 없다
	if payload.Email == "" {
		return nil, ErrTokenVerificationFailed
	}

	name := payload.Name
	if name == "" {
		name = payload.Email
	}
	return &Identity{Email: payload.Email, Name: name}, nil
}
