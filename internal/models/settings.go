package models

// SettingsMetadata holds the site-wide settings maintained in the
// content store. Every field except the ranch name is optional.
type SettingsMetadata struct {
	RanchName    string `json:"ranch_name"`
	Tagline      string `json:"tagline,omitempty"`
	Logo         *File  `json:"logo,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	Address      string `json:"address,omitempty"`
	InstagramURL string `json:"instagram_url,omitempty"`
	FacebookURL  string `json:"facebook_url,omitempty"`
}

// SiteSettings is the singleton settings object. At most one instance
// exists in the store; absence is valid and defaults apply.
type SiteSettings struct {
	Object
	Metadata SettingsMetadata `json:"metadata"`
}
