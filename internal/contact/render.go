package contact

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"strings"
	"text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/dmitrymomot/contactrelay/pkg/sanitizer"
)

// Format selects how submitted text is turned into HTML.
type Format string

const (
	// FormatEscaped HTML-escapes every field, then turns newlines into <br>.
	FormatEscaped Format = "escaped"
	// FormatRaw interpolates fields verbatim. Submitted markup reaches the
	// admin's mail client unmodified.
	FormatRaw Format = "raw"
	// FormatMarkdown renders the message as Markdown and sanitizes the result.
	FormatMarkdown Format = "markdown"
)

// ErrUnknownFormat is returned by ParseFormat.
var ErrUnknownFormat = errors.New("unknown render format")

// ParseFormat maps a config value to a Format. Empty means FormatEscaped.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatEscaped, nil
	case FormatEscaped, FormatRaw, FormatMarkdown:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// The fields are prepared per Format before execution, so the template itself
// never escapes.
var bodyTemplate = template.Must(template.New("contact").Parse(`<html>
<body>
    <h2>New Contact Form Submission</h2>
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
    <hr>
    <p><strong>Message:</strong></p>
    {{if .Block}}<div>{{.Message}}</div>{{else}}<p>{{.Message}}</p>{{end}}
</body>
</html>
`))

type bodyData struct {
	Name    string
	Email   string
	Message string
	Block   bool
}

// Renderer turns a Submission into the notification's HTML body.
// It is stateless and safe for concurrent use.
type Renderer struct {
	format Format
	md     goldmark.Markdown
}

// NewRenderer creates a Renderer for format. An empty format means FormatEscaped.
func NewRenderer(format Format) *Renderer {
	if format == "" {
		format = FormatEscaped
	}
	r := &Renderer{format: format}
	if format == FormatMarkdown {
		r.md = goldmark.New(
			goldmark.WithExtensions(extension.Linkify, extension.Strikethrough),
			goldmark.WithRendererOptions(goldmarkhtml.WithHardWraps()),
		)
	}
	return r
}

// Format reports the renderer's format.
func (r *Renderer) Format() Format {
	return r.format
}

// Render builds the HTML body for sub.
func (r *Renderer) Render(sub Submission) (string, error) {
	data, err := r.prepare(sub)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := bodyTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render contact body: %w", err)
	}
	return buf.String(), nil
}

func (r *Renderer) prepare(sub Submission) (bodyData, error) {
	switch r.format {
	case FormatRaw:
		return bodyData{
			Name:    sub.Name,
			Email:   sub.Email,
			Message: breakLines(sub.Message),
		}, nil
	case FormatMarkdown:
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(sub.Message), &buf); err != nil {
			return bodyData{}, fmt.Errorf("render markdown message: %w", err)
		}
		return bodyData{
			Name:    html.EscapeString(sub.Name),
			Email:   html.EscapeString(sub.Email),
			Message: sanitizer.SanitizeHTML(buf.String()),
			Block:   true,
		}, nil
	default:
		return bodyData{
			Name:    html.EscapeString(sub.Name),
			Email:   html.EscapeString(sub.Email),
			Message: breakLines(html.EscapeString(sub.Message)),
		}, nil
	}
}

// breakLines replaces every "\n" with "<br>" and leaves everything else alone.
func breakLines(s string) string {
	return strings.ReplaceAll(s, "\n", "<br>")
}
