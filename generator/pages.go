package generator

import (
	"fmt"
	"strings"

	"github.com/primarium/primarium/builder"
)

// renderBlogHTML produces the dedicated blog page (blog.html): search box,
// the paginated post grid the runtime fills in, and pagination controls.
// It reuses the index page's header and footer so navigation stays uniform.
func renderBlogHTML(in Input) string {
	title := blogPageTitle(in)
	var body strings.Builder
	body.WriteString(sharedHeader(in))
	body.WriteString("\n\n")
	fmt.Fprintf(&body, `    <section class="blog-page">
      <h2>%s</h2>
      <div class="blog-search">
        <input type="search" id="blog-search-input" placeholder="Caută postări...">
      </div>
      <div class="blog-posts" id="blog-page-posts">
        <p class="loading">%s</p>
      </div>
      <div class="pagination" id="blog-pagination"></div>
    </section>`, escapeHTML(title), blogLoadingText)
	body.WriteString("\n\n")
	body.WriteString(sharedFooter(in))
	pageTitle := escapeHTML(title + " — " + siteTitle(in.Site))
	return pageShell(in, pageTitle, body.String(), false)
}

// renderPostHTML produces the single-post page (post.html). The post itself
// is resolved at runtime from the ?id= query parameter.
func renderPostHTML(in Input) string {
	var body strings.Builder
	body.WriteString(sharedHeader(in))
	body.WriteString("\n\n")
	fmt.Fprintf(&body, `    <article class="post">
      <a class="back-link" href="blog.html">← Înapoi la noutăți</a>
      <div id="post-content">
        <p class="loading">%s</p>
      </div>
    </article>`, postLoadingText)
	body.WriteString("\n\n")
	body.WriteString(sharedFooter(in))
	return pageShell(in, escapeHTML(siteTitle(in.Site)), body.String(), false)
}

func blogPageTitle(in Input) string {
	for _, c := range in.Components {
		if blog, ok := c.Content.(builder.BlogContent); ok {
			return blogTitle(blog)
		}
	}
	return defaultBlogTitle
}

// sharedHeader renders the same header the index page carries, with section
// anchors pointed back at index.html. Falls back to a default header when
// the composition somehow lacks one.
func sharedHeader(in Input) string {
	for _, c := range in.Components {
		if header, ok := c.Content.(builder.HeaderContent); ok {
			return renderHeader(header, c.Alignment, in, "index.html")
		}
	}
	return renderHeader(builder.HeaderContent{}, builder.AlignCenter, in, "index.html")
}

func sharedFooter(in Input) string {
	for _, c := range in.Components {
		if _, ok := c.Content.(builder.FooterContent); ok {
			return renderFooter(c.Alignment, in)
		}
	}
	return renderFooter(builder.AlignCenter, in)
}
