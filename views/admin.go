package views

import (
	"bytes"

	"github.com/a-h/templ"
)

// AdminLogin renders the password form, optionally with a failure notice.
func AdminLogin(showError bool, csrfToken string) templ.Component {
	return page("Autentificare", func(buf *bytes.Buffer) {
		buf.WriteString(`<main class="login-page"><h1>Primarium</h1>`)
		if showError {
			buf.WriteString(`<p class="form-error">Parolă greșită.</p>`)
		}
		buf.WriteString(`<form method="post" action="/admin/login/">`)
		buf.WriteString(`<input type="hidden" name="_csrf" value="` + esc(csrfToken) + `"/>`)
		buf.WriteString(`<input type="password" name="password" placeholder="Parola" autofocus required/>`)
		buf.WriteString(`<button type="submit">Intră</button>`)
		buf.WriteString(`</form></main>`)
	})
}

// AdminDashboard renders the settlement list with create and manage actions.
func AdminDashboard(settlements []SettlementItem, message, csrfToken string) templ.Component {
	return page("Panou", func(buf *bytes.Buffer) {
		buf.WriteString(`<header class="topbar"><h1>Localități</h1>`)
		buf.WriteString(`<form method="post" action="/admin/logout/" class="logout-form">`)
		buf.WriteString(`<input type="hidden" name="_csrf" value="` + esc(csrfToken) + `"/>`)
		buf.WriteString(`<button type="submit">Ieși</button></form></header>`)
		buf.WriteString(`<main class="dashboard">`)
		if message != "" {
			buf.WriteString(`<p class="notice">` + esc(message) + `</p>`)
		}

		buf.WriteString(`<section class="settlement-list">`)
		if len(settlements) == 0 {
			buf.WriteString(`<p class="empty">Nicio localitate încă. Adaugă prima mai jos.</p>`)
		}
		for _, s := range settlements {
			buf.WriteString(`<article class="settlement-card" data-id="` + esc(s.ID) + `">`)
			buf.WriteString(`<h2>` + esc(s.Name) + `</h2>`)
			buf.WriteString(`<p class="region">` + esc(s.Region) + `</p>`)
			if s.Active {
				buf.WriteString(`<span class="badge badge-active">Publicat</span>`)
			} else {
				buf.WriteString(`<span class="badge">Nepublicat</span>`)
			}
			buf.WriteString(`<a class="btn" href="/admin/editor/` + esc(s.ID) + `/">Deschide editorul</a>`)
			buf.WriteString(`<button class="btn btn-danger" data-delete="` + esc(s.ID) + `">Șterge</button>`)
			buf.WriteString(`</article>`)
		}
		buf.WriteString(`</section>`)

		buf.WriteString(`<section class="settlement-create"><h2>Localitate nouă</h2>`)
		buf.WriteString(`<form method="post" action="/admin/settlements/">`)
		buf.WriteString(`<input type="hidden" name="_csrf" value="` + esc(csrfToken) + `"/>`)
		buf.WriteString(`<input name="name" placeholder="Nume" required/>`)
		buf.WriteString(`<input name="region" placeholder="Județ" required/>`)
		buf.WriteString(`<input name="lat" placeholder="Latitudine" required/>`)
		buf.WriteString(`<input name="lng" placeholder="Longitudine" required/>`)
		buf.WriteString(`<button type="submit">Adaugă</button>`)
		buf.WriteString(`</form></section>`)

		buf.WriteString(`</main>`)
		buf.WriteString(`<script>var CSRF_TOKEN=` + jsQuote(csrfToken) + `;</script>`)
		buf.WriteString(`<script src="/admin-assets/dashboard.js"></script>`)
	})
}

// Editor renders the site editor shell for one settlement. The editor state
// itself is loaded over the JSON endpoints by editor.js.
func Editor(s SettlementItem, csrfToken string) templ.Component {
	return page("Editor "+s.Name, func(buf *bytes.Buffer) {
		buf.WriteString(`<header class="topbar"><a href="/admin/">&larr; Panou</a>`)
		buf.WriteString(`<h1>` + esc(s.Name) + ` <small>` + esc(s.Region) + `</small></h1>`)
		if s.Active {
			buf.WriteString(`<span class="badge badge-active">Publicat</span>`)
		} else {
			buf.WriteString(`<span class="badge">Nepublicat</span>`)
		}
		buf.WriteString(`</header>`)

		buf.WriteString(`<main class="editor" data-settlement="` + esc(s.ID) + `">`)

		buf.WriteString(`<aside class="editor-sidebar">`)
		buf.WriteString(`<section><h2>Componente</h2><div id="component-palette"></div></section>`)
		buf.WriteString(`<section><h2>Pagina</h2><ol id="component-list"></ol></section>`)
		buf.WriteString(`<section><h2>CSS personalizat</h2>`)
		buf.WriteString(`<textarea id="custom-css" rows="8" spellcheck="false"></textarea>`)
		buf.WriteString(`<button id="save-css" class="btn">Salvează CSS</button></section>`)
		buf.WriteString(`<section class="editor-actions">`)
		buf.WriteString(`<button id="show-code" class="btn">Vezi codul</button>`)
		buf.WriteString(`<button id="reset-draft" class="btn btn-danger">Resetează</button>`)
		buf.WriteString(`<button id="publish" class="btn btn-primary">Publică</button>`)
		buf.WriteString(`</section>`)
		buf.WriteString(`<section><h2>Istoric publicări</h2><ul id="publish-log"></ul></section>`)
		buf.WriteString(`</aside>`)

		buf.WriteString(`<section class="editor-preview">`)
		buf.WriteString(`<div class="preview-modes">`)
		buf.WriteString(`<button data-mode="desktop" class="active">Desktop</button>`)
		buf.WriteString(`<button data-mode="tablet">Tabletă</button>`)
		buf.WriteString(`<button data-mode="mobile">Mobil</button>`)
		buf.WriteString(`</div>`)
		buf.WriteString(`<iframe id="preview-frame" title="Previzualizare"></iframe>`)
		buf.WriteString(`</section>`)

		buf.WriteString(`<dialog id="code-dialog"><pre><code id="code-output"></code></pre>`)
		buf.WriteString(`<button class="btn" id="close-code">Închide</button></dialog>`)

		buf.WriteString(`</main>`)
		buf.WriteString(`<script>var CSRF_TOKEN=` + jsQuote(csrfToken) + `;</script>`)
		buf.WriteString(`<script src="/admin-assets/editor.js"></script>`)
	})
}
