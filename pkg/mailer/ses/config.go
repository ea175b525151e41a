package ses

// Config holds Amazon SES transport settings.
// Empty keys fall back to the default AWS credential chain.
type Config struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	// From is the default sender, "addr" or "Name <addr>".
	From string
}

const defaultRegion = "us-east-1"
