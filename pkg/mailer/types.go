package mailer

// Tags are provider-side labels. Presence-only tags use struct{}{} values;
// providers that need name/value pairs turn those into "true".
type Tags map[string]any

// SimpleTags creates presence-only tags from a list of tag names.
func SimpleTags(names ...string) Tags {
	t := make(Tags, len(names))
	for _, n := range names {
		t[n] = struct{}{}
	}
	return t
}

// Email represents a fully-prepared email message ready for sending.
type Email struct {
	Headers map[string]string // Custom headers
	Tags    Tags              // Provider-specific tags
	Subject string            // Email subject
	HTML    string            // HTML body content
	Text    string            // Plain text alternative
	From    string            // Overrides the transport's default sender
	ReplyTo string            // Reply-to address
	To      []string          // Recipients (at least one required)
	CC      []string
	BCC     []string
}
