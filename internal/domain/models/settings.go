package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// JSONMap is a type alias for JSONB columns.
type JSONMap map[string]interface{}

// Settings holds user-specific dashboard configuration. All namespaces are
// stored in a single JSONB column so new namespaces never need migrations.
// There is no ambient singleton: settings are loaded once per request path
// and passed down explicitly.
type Settings struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Values    JSONMap   `json:"values" db:"data"` // namespaces: ui, funnel, notifications
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// UISettings is the ui namespace.
type UISettings struct {
	Theme       string `json:"theme"` // "light", "dark", "auto"
	CompactMode *bool  `json:"compact_mode"`
	Language    string `json:"language,omitempty"`
}

// FunnelSettings is the funnel namespace.
type FunnelSettings struct {
	DefaultFunnel string `json:"default_funnel"`
}

// NotificationSettings is the notifications namespace.
type NotificationSettings struct {
	EmailUpdates *bool `json:"email_updates"`
	InAppAlerts  *bool `json:"in_app_alerts"`
}

// GetUI extracts the ui namespace, falling back to defaults when unset.
func (s *Settings) GetUI() (*UISettings, error) {
	ui := &UISettings{Theme: "light"}
	if err := s.namespace("ui", ui); err != nil {
		return nil, err
	}
	return ui, nil
}

// GetFunnel extracts the funnel namespace.
func (s *Settings) GetFunnel() (*FunnelSettings, error) {
	f := &FunnelSettings{}
	if err := s.namespace("funnel", f); err != nil {
		return nil, err
	}
	return f, nil
}

// GetNotifications extracts the notifications namespace.
func (s *Settings) GetNotifications() (*NotificationSettings, error) {
	n := &NotificationSettings{}
	if err := s.namespace("notifications", n); err != nil {
		return nil, err
	}
	return n, nil
}

// SetNamespace replaces one namespace in the values document.
func (s *Settings) SetNamespace(name string, v interface{}) error {
	if s.Values == nil {
		s.Values = JSONMap{}
	}

	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}

	s.Values[name] = m
	return nil
}

// namespace re-marshals one namespace into a typed struct. Missing namespaces
// leave the destination untouched so callers keep their defaults.
func (s *Settings) namespace(name string, dest interface{}) error {
	if s.Values == nil {
		return nil
	}

	raw, ok := s.Values[name]
	if !ok {
		return nil
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

// UpdateSettingsRequest carries a partial settings update. Only non-nil
// namespaces are replaced.
type UpdateSettingsRequest struct {
	UI            *UISettings           `json:"ui"`
	Funnel        *FunnelSettings       `json:"funnel"`
	Notifications *NotificationSettings `json:"notifications"`
}
