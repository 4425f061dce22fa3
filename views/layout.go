package views

import (
	"bytes"
	"context"
	"html"
	"io"

	"github.com/a-h/templ"
)

// page wraps body markup in the shared admin layout.
func page(title string, body func(*bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString("<!DOCTYPE html>\n<html lang=\"ro\">\n<head>\n")
		buf.WriteString("<meta charset=\"utf-8\"/>\n")
		buf.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"/>\n")
		buf.WriteString("<title>" + html.EscapeString(title) + " | Primarium</title>\n")
		buf.WriteString("<link rel=\"stylesheet\" href=\"/admin-assets/admin.css\"/>\n")
		buf.WriteString("</head>\n<body>\n")
		body(&buf)
		buf.WriteString("\n</body>\n</html>\n")
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func esc(s string) string {
	return html.EscapeString(s)
}

// NotFound renders the 404 page.
func NotFound() templ.Component {
	return page("Pagina nu există", func(buf *bytes.Buffer) {
		buf.WriteString(`<main class="error-page"><h1>404</h1><p>Pagina căutată nu există.</p><a href="/admin/">Înapoi la panou</a></main>`)
	})
}

// ServerError renders the 500 page.
func ServerError() templ.Component {
	return page("Eroare", func(buf *bytes.Buffer) {
		buf.WriteString(`<main class="error-page"><h1>500</h1><p>A apărut o eroare. Încearcă din nou.</p><a href="/admin/">Înapoi la panou</a></main>`)
	})
}
