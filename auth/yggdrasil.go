package auth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// AuthClient talks to the legacy Mojang authentication service
// (authserver.mojang.com): authenticate/refresh/validate/invalidate, used
// to obtain and maintain an access token before a Profile can be built.
type AuthClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAuthClient creates a new authentication service client.
func NewAuthClient() *AuthClient {
	return &AuthClient{
		baseURL: "https://authserver.mojang.com",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewAuthClientWithURL creates an auth client against a custom base URL (tests, private servers).
func NewAuthClientWithURL(baseURL string) *AuthClient {
	return &AuthClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type agentPayload struct {
	Name    string `json:"name"`
	Version int    `json:"version"`
}

// AuthenticateRequest represents the request payload for /authenticate
type AuthenticateRequest struct {
	Agent       agentPayload `json:"agent"`
	Username    string       `json:"username"`
	Password    string       `json:"password"`
	ClientToken string       `json:"clientToken,omitempty"`
	RequestUser bool         `json:"requestUser"`
}

// RefreshRequest represents the request payload for /refresh
type RefreshRequest struct {
	AccessToken     string       `json:"accessToken"`
	ClientToken     string       `json:"clientToken"`
	SelectedProfile *GameProfile `json:"selectedProfile,omitempty"`
	RequestUser     bool         `json:"requestUser"`
}

// ValidateRequest represents the request payload for /validate
type ValidateRequest struct {
	AccessToken string `json:"accessToken"`
	ClientToken string `json:"clientToken,omitempty"`
}

// InvalidateRequest represents the request payload for /invalidate
type InvalidateRequest struct {
	AccessToken string `json:"accessToken"`
	ClientToken string `json:"clientToken"`
}

// GameProfile is the profile block returned alongside an access token.
type GameProfile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AuthenticateResponse represents a successful /authenticate response.
type AuthenticateResponse struct {
	AccessToken       string        `json:"accessToken"`
	ClientToken       string        `json:"clientToken"`
	AvailableProfiles []GameProfile `json:"availableProfiles"`
	SelectedProfile   *GameProfile  `json:"selectedProfile,omitempty"`
}

// RefreshResponse represents a successful /refresh response.
type RefreshResponse struct {
	AccessToken     string       `json:"accessToken"`
	ClientToken     string       `json:"clientToken"`
	SelectedProfile *GameProfile `json:"selectedProfile,omitempty"`
}

// Authenticate exchanges a Mojang username/password for an access token
// and the account's game profiles.
func (c *AuthClient) Authenticate(username, password, clientToken string) (*AuthenticateResponse, error) {
	reqBody := AuthenticateRequest{
		Agent:       agentPayload{Name: "Minecraft", Version: 1},
		Username:    username,
		Password:    password,
		ClientToken: clientToken,
		RequestUser: false,
	}

	var authResp AuthenticateResponse
	if err := c.post("/authenticate", reqBody, &authResp); err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	return &authResp, nil
}

// Refresh exchanges a still-valid access token for a new one, carrying
// the same client token and selected profile forward.
func (c *AuthClient) Refresh(accessToken, clientToken string) (*RefreshResponse, error) {
	reqBody := RefreshRequest{
		AccessToken: accessToken,
		ClientToken: clientToken,
		RequestUser: false,
	}

	var refreshResp RefreshResponse
	if err := c.post("/refresh", reqBody, &refreshResp); err != nil {
		return nil, fmt.Errorf("refresh: %w", err)
	}
	return &refreshResp, nil
}

// Validate reports whether an access token is still usable. A non-2xx
// response from the service means the token is invalid, not that the
// request itself failed, so Validate only returns an error for
// transport-level failures.
func (c *AuthClient) Validate(accessToken, clientToken string) (bool, error) {
	reqBody := ValidateRequest{AccessToken: accessToken, ClientToken: clientToken}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return false, fmt.Errorf("marshal validate request: %w", err)
	}

	resp, err := c.httpClient.Post(c.baseURL+"/validate", "application/json", bytes.NewReader(jsonData))
	if err != nil {
		return false, fmt.Errorf("validate: %w", err)
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusNoContent, nil
}

// Invalidate revokes an access token server-side.
func (c *AuthClient) Invalidate(accessToken, clientToken string) error {
	reqBody := InvalidateRequest{AccessToken: accessToken, ClientToken: clientToken}
	return c.post("/invalidate", reqBody, nil)
}

func (c *AuthClient) post(path string, reqBody, respBody any) error {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "gomc-protocol")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp ErrorResponse
		if err := json.Unmarshal(body, &errResp); err != nil {
			return fmt.Errorf("%s failed: %s (status %d)", path, string(body), resp.StatusCode)
		}
		return fmt.Errorf("%s failed: %s (status %d)", path, errResp.String(), resp.StatusCode)
	}

	if respBody == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, respBody); err != nil {
		return fmt.Errorf("parse %s response: %w", path, err)
	}
	return nil
}
