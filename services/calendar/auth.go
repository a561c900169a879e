package calendar

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"studiobook/config"
)

// newOAuthConfig builds the OAuth2 client configuration for the calendar
// API from the loaded app config. The redirect URI is never visited at
// runtime but is part of the registered client.
func newOAuthConfig() *oauth2.Config {
	cfg := config.AppConfig
	return &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURI,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gcal.CalendarEventsScope},
	}
}

// NewCalendarService builds a calendar API client authenticated by the
// long-lived refresh token. The underlying oauth2 transport mints and
// refreshes short-lived access tokens on demand and is safe for concurrent
// use.
func NewCalendarService(ctx context.Context) (*gcal.Service, error) {
	oauthConfig := newOAuthConfig()
	token := &oauth2.Token{RefreshToken: config.AppConfig.GoogleRefreshToken}

	client := oauthConfig.Client(ctx, token)
	service, err := gcal.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return service, nil
}
