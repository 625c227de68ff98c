package store

import (
	"context"

	"goldenhills/internal/cosmic"
	"goldenhills/internal/models"
)

const settingsKind = "site-settings"

// SettingsStore reads the singleton site settings object.
type SettingsStore struct {
	client *cosmic.Client
}

// NewSettingsStore creates a SettingsStore on the given client.
func NewSettingsStore(client *cosmic.Client) *SettingsStore {
	return &SettingsStore{client: client}
}

// Get returns the site settings, or nil when none are configured.
// Absence is valid; callers fall back to defaults.
func (s *SettingsStore) Get(ctx context.Context) (*models.SiteSettings, error) {
	var settings models.SiteSettings
	err := s.client.FindOne(ctx, cosmic.Query{
		Type:  settingsKind,
		Props: []string{"id", "slug", "metadata"},
		Depth: 1,
	}, &settings)
	if err != nil {
		if isAbsence(err) {
			return nil, nil
		}
		return nil, &RetrievalError{Kind: settingsKind, Op: "get", Err: err}
	}
	return &settings, nil
}
