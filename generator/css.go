package generator

// baseCSS is the fixed stylesheet every generated site starts from. The
// editor's custom CSS is appended after it so the cascade lets any rule be
// overridden without validation.
const baseCSS = `/* Reset */
* {
    margin: 0;
    padding: 0;
    box-sizing: border-box;
}

body {
    font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
    line-height: 1.6;
    color: #333;
}

/* Alignment classes */
.left {
    text-align: left;
}

.center {
    text-align: center;
}

.right {
    text-align: right;
}

/* Header */
.header {
    background: #10b981;
    color: white;
    padding: 20px;
}

.header h1 {
    margin-bottom: 10px;
}

.header-subtitle {
    opacity: 0.9;
    font-size: 15px;
}

.header nav {
    margin-top: 10px;
}

.header nav a {
    color: white;
    text-decoration: none;
    margin: 0 10px;
    padding: 5px 10px;
    border-radius: 4px;
    transition: background 0.3s;
}

.header nav a:hover {
    background: #059669;
}

/* Hero Section */
.hero {
    background: linear-gradient(135deg, #10b981 0%, #047857 100%);
    color: white;
    padding: 60px 20px;
}

.hero h1 {
    font-size: 48px;
    margin-bottom: 16px;
}

.hero p {
    font-size: 20px;
    opacity: 0.9;
}

/* About, Services, Contact, Blog, Map Sections */
.about, .services, .contact, .blog, .map, .blog-page, .post {
    padding: 60px 20px;
    max-width: 1200px;
    margin: 0 auto;
}

.about h2, .services h2, .contact h2, .blog h2, .map h2, .blog-page h2 {
    font-size: 32px;
    margin-bottom: 16px;
    color: #10b981;
}

.about p, .services p, .contact p {
    font-size: 16px;
    line-height: 1.8;
    color: #666;
}

/* Blog Section */
.blog-posts {
    display: grid;
    grid-template-columns: repeat(auto-fill, minmax(300px, 1fr));
    gap: 24px;
    margin-top: 32px;
}

.blog-post {
    background: white;
    border-radius: 12px;
    padding: 24px;
    box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);
    transition: transform 0.3s ease, box-shadow 0.3s ease;
}

.blog-post:hover {
    transform: translateY(-4px);
    box-shadow: 0 4px 16px rgba(0, 0, 0, 0.15);
}

.blog-post-date {
    font-size: 14px;
    color: #6b7280;
    margin-bottom: 8px;
}

.blog-post h3 {
    font-size: 20px;
    margin-bottom: 8px;
    color: #1f2937;
}

.blog-post h3 a {
    color: inherit;
    text-decoration: none;
}

.blog-post-description {
    font-size: 14px;
    color: #4b5563;
    margin-bottom: 12px;
}

.blog-post-preview {
    font-size: 15px;
    line-height: 1.7;
    color: #374151;
}

.blog-more {
    margin-top: 24px;
}

.blog-more a {
    color: #10b981;
    text-decoration: none;
    font-weight: 600;
}

/* Blog search */
.blog-search {
    margin-top: 24px;
}

.blog-search input {
    width: 100%;
    max-width: 420px;
    padding: 12px 16px;
    font-size: 15px;
    border: 2px solid #e5e7eb;
    border-radius: 8px;
    outline: none;
}

.blog-search input:focus {
    border-color: #10b981;
}

/* Pagination */
.pagination {
    display: flex;
    justify-content: center;
    gap: 8px;
    margin-top: 32px;
}

.pagination button {
    min-width: 40px;
    padding: 8px 12px;
    font-size: 14px;
    border: 1px solid #e5e7eb;
    border-radius: 6px;
    background: white;
    color: #374151;
    cursor: pointer;
}

.pagination button.active {
    background: #10b981;
    border-color: #10b981;
    color: white;
}

.pagination button:disabled {
    opacity: 0.4;
    cursor: default;
}

/* Post page */
.post .back-link {
    color: #10b981;
    text-decoration: none;
    font-weight: 600;
}

.post h1 {
    font-size: 36px;
    margin: 16px 0;
    color: #1f2937;
}

.blog-post-content {
    font-size: 16px;
    line-height: 1.8;
    color: #374151;
    margin-top: 16px;
}

/* Map Section */
#map {
    border: 2px solid #e5e7eb;
    box-shadow: 0 4px 12px rgba(0, 0, 0, 0.1);
}

/* Footer */
.footer {
    background: #1a1a2e;
    color: white;
    padding: 20px;
    margin-top: 40px;
}

.footer p {
    opacity: 0.8;
}

/* States */
.loading {
    color: #6b7280;
    text-align: center;
}

.load-error {
    color: #ef4444;
    text-align: center;
}

.empty {
    color: #6b7280;
    text-align: center;
}

/* Responsive */
@media (max-width: 768px) {
    .hero h1 {
        font-size: 32px;
    }

    .about, .services, .contact, .blog-page, .post {
        padding: 40px 20px;
    }

    .about h2, .services h2, .contact h2, .blog-page h2 {
        font-size: 24px;
    }
}`

// renderCSS appends the editor's custom CSS verbatim after the base sheet.
func renderCSS(customCSS string) string {
	if customCSS == "" {
		return baseCSS
	}
	return baseCSS + "\n\n/* Custom Styles */\n" + customCSS
}
