package driverservice

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"path"

	"github.com/pkg/errors"

	"github.com/wtframework/wtf/pkg/models"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// CheckStatus queries the WebDriver status endpoint under baseURL.
// Any response below 400 with a JSON body counts as reachable; Ready tells whether new sessions are accepted.
func CheckStatus(ctx context.Context, client HTTPClient, baseURL string) (*models.WebDriverStatus, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid webdriver url %s", baseURL)
	}
	u.Path = path.Join(u.Path, "status")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(resp.Body)
		return nil, errors.Errorf("request %s failed with code %d: %s", u.String(), resp.StatusCode, string(body))
	}

	status := new(models.WebDriverStatus)
	if err := json.NewDecoder(resp.Body).Decode(status); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s response", u.String())
	}
	return status, nil
}
