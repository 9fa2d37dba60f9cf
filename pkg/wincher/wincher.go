// Package wincher exposes the Wincher rank-tracking API as a fixed catalog of
// tools. Each tool validates its arguments, performs exactly one API request
// and renders the JSON response as plain text.
package wincher

const (
	DefaultURL = "https://api.wincher.com"

	// APIKeyEnv names the environment variable holding the bearer token.
	APIKeyEnv = "WINCHER_API_KEY"
)
