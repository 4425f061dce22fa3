package generator

import (
	"fmt"
	"strings"

	"github.com/primarium/primarium/builder"
)

// renderScript emits the runtime script shipped with every generated site.
// The script is a fixed template parameterized by the settlement facts and
// by which component types are present; page-specific behavior is selected
// at runtime by probing for the container elements each page carries.
func renderScript(in Input) string {
	hasBlog := hasType(in.Components, builder.TypeBlog)
	hasMap := hasType(in.Components, builder.TypeMap)

	var sb strings.Builder
	fmt.Fprintf(&sb, `// Configuration
var API_URL = '%s';
var SETTLEMENT_ID = '%s';
var LOCATION = { lat: %s, lng: %s };
var BLOG_PAGE_SIZE = %d;
var INDEX_TEASER_LIMIT = %d;
`,
		jsString(in.Site.APIBaseURL),
		jsString(in.Site.ID),
		formatCoord(in.Site.Lat),
		formatCoord(in.Site.Lng),
		BlogPageSize,
		IndexTeaserLimit,
	)

	sb.WriteString(`
// Smooth scroll for in-page navigation links
document.addEventListener('DOMContentLoaded', function () {
    document.querySelectorAll('nav a[href^="#"]').forEach(function (link) {
        link.addEventListener('click', function (e) {
            e.preventDefault();
            var target = document.getElementById(this.getAttribute('href').substring(1));
            if (target) {
                target.scrollIntoView({ behavior: 'smooth', block: 'start' });
            }
        });
    });

    // Fade sections in as they scroll into view
    var observer = new IntersectionObserver(function (entries) {
        entries.forEach(function (entry) {
            if (entry.isIntersecting) {
                entry.target.style.opacity = '1';
                entry.target.style.transform = 'translateY(0)';
            }
        });
    }, { threshold: 0.1, rootMargin: '0px 0px -50px 0px' });

    document.querySelectorAll('section').forEach(function (section) {
        section.style.opacity = '0';
        section.style.transform = 'translateY(20px)';
        section.style.transition = 'opacity 0.6s ease, transform 0.6s ease';
        observer.observe(section);
    });
`)
	if hasBlog {
		sb.WriteString(`
    if (document.getElementById('blog-posts-container')) {
        loadTeaserPosts();
    }
    if (document.getElementById('blog-page-posts')) {
        initBlogPage();
    }
    if (document.getElementById('post-content')) {
        loadPost();
    }
`)
	}
	if hasMap {
		sb.WriteString(`
    if (document.getElementById('map')) {
        initMap(0);
    }
`)
	}
	sb.WriteString("});\n")

	if hasBlog {
		sb.WriteString(blogRuntime)
	}
	if hasMap {
		sb.WriteString(mapRuntime(in.Site))
	}
	return sb.String()
}

// blogRuntime implements teaser loading on the index page and search plus
// pagination on the dedicated blog page. Titles, descriptions and content
// previews are escaped before DOM insertion; the full post body on the post
// page is intentionally rendered raw, it is authored rich text.
const blogRuntime = `
// Escape user-authored text before inserting it into the DOM
function escapeHtml(value) {
    return String(value)
        .replace(/&/g, '&amp;')
        .replace(/</g, '&lt;')
        .replace(/>/g, '&gt;')
        .replace(/"/g, '&quot;')
        .replace(/'/g, '&#39;');
}

function formatDate(value) {
    return new Date(value).toLocaleDateString('ro-RO', { year: 'numeric', month: 'long', day: 'numeric' });
}

function fetchPosts() {
    return fetch(API_URL + '/blog-posts?settlement=' + SETTLEMENT_ID)
        .then(function (response) { return response.json(); })
        .then(function (payload) { return payload.data.data; });
}

function contentPreview(post) {
    var text = String(post.content);
    if (text.length > 120) {
        text = text.substring(0, 120) + '...';
    }
    return text;
}

function teaserCard(post) {
    return '<div class="blog-post">' +
        '<div class="blog-post-date">' + formatDate(post.date) + '</div>' +
        '<h3><a href="post.html?id=' + encodeURIComponent(post.id) + '">' + escapeHtml(post.title) + '</a></h3>' +
        '<p class="blog-post-description">' + escapeHtml(post.description) + '</p>' +
        '<div class="blog-post-preview">' + escapeHtml(contentPreview(post)) + '</div>' +
        '</div>';
}

// Index page teaser: the five most recent posts only
function loadTeaserPosts() {
    var container = document.getElementById('blog-posts-container');
    fetchPosts().then(function (posts) {
        if (posts.length === 0) {
            container.innerHTML = '<p class="empty">Nu există postări încă.</p>';
            return;
        }
        container.innerHTML = posts.slice(0, INDEX_TEASER_LIMIT).map(teaserCard).join('');
    }).catch(function (error) {
        console.error('Error loading blog posts:', error);
        container.innerHTML = '<p class="load-error">Eroare la încărcarea postărilor.</p>';
    });
}

// Dedicated blog page: client-side search and pagination
var allPosts = [];
var filteredPosts = [];
var currentPage = 1;

function initBlogPage() {
    var search = document.getElementById('blog-search-input');
    if (search) {
        search.addEventListener('input', function () {
            applySearch(this.value);
        });
    }
    fetchPosts().then(function (posts) {
        allPosts = posts;
        filteredPosts = posts;
        currentPage = 1;
        renderBlogPage();
    }).catch(function (error) {
        console.error('Error loading blog posts:', error);
        document.getElementById('blog-page-posts').innerHTML = '<p class="load-error">Eroare la încărcarea postărilor.</p>';
    });
}

function applySearch(query) {
    var q = query.toLowerCase();
    filteredPosts = allPosts.filter(function (post) {
        return post.title.toLowerCase().indexOf(q) !== -1 ||
            post.description.toLowerCase().indexOf(q) !== -1 ||
            post.content.toLowerCase().indexOf(q) !== -1;
    });
    currentPage = 1;
    renderBlogPage();
}

function pageCount() {
    if (filteredPosts.length === 0) {
        return 1;
    }
    return Math.ceil(filteredPosts.length / BLOG_PAGE_SIZE);
}

function goToPage(page) {
    currentPage = page;
    renderBlogPage();
    window.scrollTo({ top: 0, behavior: 'smooth' });
}

function renderBlogPage() {
    var container = document.getElementById('blog-page-posts');
    var total = pageCount();
    if (currentPage > total) {
        currentPage = total;
    }
    if (filteredPosts.length === 0) {
        container.innerHTML = '<p class="empty">Nu există postări.</p>';
    } else {
        var start = (currentPage - 1) * BLOG_PAGE_SIZE;
        container.innerHTML = filteredPosts.slice(start, start + BLOG_PAGE_SIZE).map(teaserCard).join('');
    }
    renderPagination(total);
}

function renderPagination(total) {
    var nav = document.getElementById('blog-pagination');
    if (!nav) {
        return;
    }
    var html = '<button id="page-prev"' + (currentPage === 1 ? ' disabled' : '') + '>&laquo;</button>';
    for (var page = 1; page <= total; page++) {
        html += '<button class="page-number' + (page === currentPage ? ' active' : '') + '" data-page="' + page + '">' + page + '</button>';
    }
    html += '<button id="page-next"' + (currentPage === total ? ' disabled' : '') + '>&raquo;</button>';
    nav.innerHTML = html;
    nav.querySelectorAll('.page-number').forEach(function (button) {
        button.addEventListener('click', function () {
            goToPage(parseInt(this.getAttribute('data-page'), 10));
        });
    });
    document.getElementById('page-prev').addEventListener('click', function () {
        if (currentPage > 1) { goToPage(currentPage - 1); }
    });
    document.getElementById('page-next').addEventListener('click', function () {
        if (currentPage < total) { goToPage(currentPage + 1); }
    });
}

// Post page: the full content field is authored rich text, rendered as-is
function loadPost() {
    var container = document.getElementById('post-content');
    var id = new URLSearchParams(window.location.search).get('id');
    fetchPosts().then(function (posts) {
        var post = posts.find(function (p) { return p.id === id; });
        if (!post) {
            container.innerHTML = '<p class="load-error">Postarea nu a fost găsită.</p>';
            return;
        }
        document.title = post.title;
        container.innerHTML = '<h1>' + escapeHtml(post.title) + '</h1>' +
            '<div class="blog-post-date">' + formatDate(post.date) + '</div>' +
            '<p class="blog-post-description">' + escapeHtml(post.description) + '</p>' +
            '<div class="blog-post-content">' + post.content + '</div>';
    }).catch(function (error) {
        console.error('Error loading post:', error);
        container.innerHTML = '<p class="load-error">Eroare la încărcarea postării.</p>';
    });
}
`

// mapRuntime initializes the Leaflet map. Initialization is guarded against
// running twice and retries a bounded number of times when the Leaflet
// script has not finished loading yet.
func mapRuntime(site Site) string {
	name := site.Name
	if name == "" {
		name = "Localitatea"
	}
	return fmt.Sprintf(`
// Initialize the Leaflet map once the library is available
var mapReady = false;

function initMap(attempt) {
    if (mapReady) {
        return;
    }
    if (typeof L === 'undefined') {
        if (attempt < 10) {
            setTimeout(function () { initMap(attempt + 1); }, 300);
        }
        return;
    }
    mapReady = true;
    var map = L.map('map').setView([LOCATION.lat, LOCATION.lng], 13);
    L.tileLayer('https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png', {
        attribution: '&copy; OpenStreetMap contributors',
        maxZoom: 19
    }).addTo(map);
    L.marker([LOCATION.lat, LOCATION.lng])
        .addTo(map)
        .bindPopup('<b>%s</b>')
        .openPopup();
}
`, jsString(escapeHTML(name)))
}
