// Package simplefin provides a balance fetcher for the SimpleFIN bridge.
package simplefin

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Auth holds the claimed SimpleFIN access URL.
type Auth struct {
	AccessURL string    `json:"access_url"`
	ClaimedAt time.Time `json:"claimed_at"`
}

func authPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "hoard", "simplefin.json"), nil
}

// LoadOrClaimAuth returns cached auth when available, otherwise claims the
// token and caches the resulting access URL with owner-only permissions.
func LoadOrClaimAuth(token string) (*Auth, error) {
	path, err := authPath()
	if err != nil {
		return nil, err
	}

	if data, readErr := os.ReadFile(path); readErr == nil {
		var auth Auth
		if jsonErr := json.Unmarshal(data, &auth); jsonErr == nil && auth.AccessURL != "" {
			return &auth, nil
		}
	}

	if token == "" {
		return nil, fmt.Errorf("no cached SimpleFIN auth and no claim token provided")
	}

	accessURL, err := claimToken(token)
	if err != nil {
		return nil, err
	}

	auth := &Auth{AccessURL: accessURL, ClaimedAt: time.Now()}
	data, err := json.Marshal(auth)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal auth: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return nil, fmt.Errorf("failed to save auth: %w", err)
	}

	return auth, nil
}

// claimToken exchanges a claim token for an access URL. SimpleFIN tokens
// are base64-encoded claim URLs; the claim is a one-shot POST.
func claimToken(token string) (string, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		decodedBytes, err = base64.StdEncoding.DecodeString(token)
		if err != nil {
			return "", fmt.Errorf("failed to decode SimpleFIN token: %w", err)
		}
	}

	claimURL := string(decodedBytes)
	if !strings.HasPrefix(claimURL, "http://") && !strings.HasPrefix(claimURL, "https://") {
		return "", fmt.Errorf("decoded token is not a valid URL: %s", claimURL)
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}

	req, err := http.NewRequest(http.MethodPost, claimURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create claim request: %w", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to claim access URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("failed to claim SimpleFIN access: %d - %s", resp.StatusCode, string(body))
	}

	accessURLBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read access URL: %w", err)
	}

	accessURL := strings.TrimSpace(string(accessURLBytes))
	if !strings.HasPrefix(accessURL, "http://") && !strings.HasPrefix(accessURL, "https://") {
		return "", fmt.Errorf("invalid access URL received: %s", accessURL)
	}

	return accessURL, nil
}
