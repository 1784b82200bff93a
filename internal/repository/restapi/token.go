package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
)

// deviceTokenSource logs in as a registered device. Device tokens do not
// expire, so the token is fetched once and reused by oauth2.ReuseTokenSource.
type deviceTokenSource struct {
	client   *http.Client
	loginURL string
	deviceID string
	password string
}

type deviceLoginRequest struct {
	DeviceID string `json:"device_id"`
	Password string `json:"password,omitempty"`
}

type deviceLoginResponse struct {
	DeviceID string `json:"device_id"`
	Token    string `json:"token"`
}

func (s *deviceTokenSource) Token() (*oauth2.Token, error) {
	payload, err := json.Marshal(deviceLoginRequest{DeviceID: s.deviceID, Password: s.password})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, s.loginURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("device login: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("device login: %w", decodeAPIError(resp))
	}

	var body deviceLoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("device login: decode response: %w", err)
	}
	if body.Token == "" {
		return nil, fmt.Errorf("device login: empty token for device %s", s.deviceID)
	}

	return &oauth2.Token{AccessToken: body.Token, TokenType: "Bearer"}, nil
}
