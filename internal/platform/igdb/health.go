package igdb

import "context"

const (
	HealthOK            = "ok"
	HealthNotConfigured = "not_configured"
	HealthError         = "error"
)

type Health struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HealthCheck reports whether the catalog is usable. It never returns an
// error; failures are folded into the status.
func (c *Client) HealthCheck(ctx context.Context) Health {
	if !c.Configured() {
		return Health{Status: HealthNotConfigured, Message: "IGDB credentials not set"}
	}
	if _, err := c.getAccessToken(ctx); err != nil {
		return Health{Status: HealthError, Message: err.Error()}
	}
	return Health{Status: HealthOK, Message: "IGDB API is configured and accessible"}
}
