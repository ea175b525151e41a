// Package sanitizer cleans HTML produced from user input before it is put
// into an outgoing email.
package sanitizer

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	safePolicy   *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()

		// Formatting a rendered markdown message may legitimately contain.
		safePolicy = bluemonday.NewPolicy()
		safePolicy.AllowStandardURLs()
		safePolicy.AllowElements(
			"p", "br", "hr",
			"strong", "b", "em", "i", "del",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
			"h1", "h2", "h3", "h4", "h5", "h6",
		)
		safePolicy.AllowAttrs("href").OnElements("a")
		safePolicy.RequireNoFollowOnLinks(true)
	})
}

// SanitizeHTML keeps basic formatting (paragraphs, emphasis, lists, code,
// headings, links) and drops everything else, including scripts, event
// handlers and javascript: URLs.
func SanitizeHTML(s string) string {
	initPolicies()
	return safePolicy.Sanitize(s)
}

// SanitizeHTMLCustom applies a custom bluemonday policy.
// Returns input unchanged if policy is nil.
func SanitizeHTMLCustom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}

// StripHTML removes all markup. Text content stays HTML-escaped.
func StripHTML(s string) string {
	initPolicies()
	return strictPolicy.Sanitize(s)
}

var blockBreaks = strings.NewReplacer(
	"<br>", "\n",
	"<br/>", "\n",
	"<br />", "\n",
	"<hr>", "\n\n",
	"<hr/>", "\n\n",
	"<hr />", "\n\n",
	"</p>", "\n",
	"</h1>", "\n",
	"</h2>", "\n",
	"</h3>", "\n",
	"</li>", "\n",
	"</blockquote>", "\n",
	"</pre>", "\n",
)

// PlainText converts an HTML email body into its text/plain alternative.
// Block elements and line breaks become newlines, entities are decoded,
// and runs of blank lines collapse into one.
func PlainText(s string) string {
	text := html.UnescapeString(StripHTML(blockBreaks.Replace(s)))

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			if len(out) > 0 && !blank {
				out = append(out, "")
				blank = true
			}
			continue
		}
		out = append(out, l)
		blank = false
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
