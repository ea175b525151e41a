package resend

// Config holds Resend transport settings.
type Config struct {
	APIKey string
	// From is the default sender, "addr" or "Name <addr>".
	From string
	// BaseURL overrides the API endpoint. Empty uses Resend's default.
	BaseURL string
}
