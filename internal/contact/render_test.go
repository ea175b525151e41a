package contact_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactrelay/internal/contact"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    contact.Format
		wantErr bool
	}{
		{"", contact.FormatEscaped, false},
		{"escaped", contact.FormatEscaped, false},
		{"RAW", contact.FormatRaw, false},
		{" markdown ", contact.FormatMarkdown, false},
		{"html", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := contact.ParseFormat(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, contact.ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestRenderer_Template(t *testing.T) {
	t.Parallel()

	for _, format := range []contact.Format{contact.FormatEscaped, contact.FormatRaw} {
		t.Run(string(format), func(t *testing.T) {
			t.Parallel()
			body, err := contact.NewRenderer(format).Render(contact.Submission{
				Name:    "Ana",
				Email:   "ana@example.com",
				Message: "Hi",
			})
			require.NoError(t, err)

			for _, want := range []string{
				"<h2>New Contact Form Submission</h2>",
				"<p><strong>Name:</strong> Ana</p>",
				`<p><strong>Email:</strong> <a href="mailto:ana@example.com">ana@example.com</a></p>`,
				"<hr>",
				"<p><strong>Message:</strong></p>",
				"<p>Hi</p>",
			} {
				assert.Contains(t, body, want)
			}
			assert.True(t, strings.HasPrefix(body, "<html>"))
		})
	}
}

func TestRenderer_LineBreaks(t *testing.T) {
	t.Parallel()

	for _, format := range []contact.Format{contact.FormatEscaped, contact.FormatRaw} {
		t.Run(string(format), func(t *testing.T) {
			t.Parallel()
			body, err := contact.NewRenderer(format).Render(contact.Submission{
				Name:    "Ana",
				Email:   "ana@example.com",
				Message: "line1\nline2",
			})
			require.NoError(t, err)

			assert.Contains(t, body, "<p>line1<br>line2</p>")
			assert.NotContains(t, body, "line1\nline2")
		})
	}
}

func TestRenderer_Escaping(t *testing.T) {
	t.Parallel()

	sub := contact.Submission{
		Name:    `<script>alert("n")</script>`,
		Email:   "ana@example.com",
		Message: "<script>alert('m')</script>\n<b>bold</b> & more",
	}

	t.Run("escaped is the default", func(t *testing.T) {
		t.Parallel()
		r := contact.NewRenderer("")
		require.Equal(t, contact.FormatEscaped, r.Format())

		body, err := r.Render(sub)
		require.NoError(t, err)

		assert.NotContains(t, body, "<script>")
		assert.NotContains(t, body, "<b>")
		assert.Contains(t, body, "&lt;script&gt;alert(&#34;n&#34;)&lt;/script&gt;")
		assert.Contains(t, body, "&lt;script&gt;alert(&#39;m&#39;)&lt;/script&gt;<br>&lt;b&gt;bold&lt;/b&gt; &amp; more")
	})

	t.Run("raw keeps markup verbatim", func(t *testing.T) {
		t.Parallel()
		body, err := contact.NewRenderer(contact.FormatRaw).Render(sub)
		require.NoError(t, err)

		assert.Contains(t, body, `<p><strong>Name:</strong> <script>alert("n")</script></p>`)
		assert.Contains(t, body, "<script>alert('m')</script><br><b>bold</b> & more")
	})
}

func TestRenderer_Markdown(t *testing.T) {
	t.Parallel()

	r := contact.NewRenderer(contact.FormatMarkdown)
	body, err := r.Render(contact.Submission{
		Name:    "Ana <x>",
		Email:   "ana@example.com",
		Message: "Hello **team**\nsecond line\n\n<script>alert(1)</script>\n\n[site](javascript:alert(1))",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "<strong>team</strong>")
	assert.Contains(t, body, "<br>")
	assert.Contains(t, body, "<div>")
	assert.Contains(t, body, "<p><strong>Name:</strong> Ana &lt;x&gt;</p>")
	assert.NotContains(t, body, "<script>")
	assert.NotContains(t, body, "javascript:")
}

func TestSubject(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "New Website Message from Ana", contact.Subject("Ana"))
	assert.Equal(t, "New Website Message from ", contact.Subject(""))
	assert.Equal(t, "New Website Message from Ana Bcc: x@example.com", contact.Subject("Ana\r\nBcc: x@example.com"))
}
