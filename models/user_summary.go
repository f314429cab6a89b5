package models

// UserSummary is a privacy-filtered projection of a person's account, safe
// to embed in outbound notifications. Email is populated only when the
// display-email policy flag is enabled.
type UserSummary struct {
	Username      string   `json:"username"`
	Name          string   `json:"name"`
	Email         string   `json:"email,omitempty"`
	ImageURL      string   `json:"imageUrl"`
	LanguageTeams []string `json:"languageTeams"`
}
