// Package primarium is an administration platform for municipal websites.
// Administrators manage settlements, their blog posts, team members, and
// map points, compose each settlement's site from components in a visual
// editor, and publish the generated HTML/CSS/JS bundle through n8n
// deployment webhooks. Published sites fetch their blog content back from
// this service's public JSON API.
package primarium

import (
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// App is the central application. It wires together the store, caches,
// draft storage, publisher, handlers, and middleware.
type App struct {
	Config Config
	Echo   *echo.Echo
	Store  *Store
	Cache  *PostCache
	Drafts *DraftStore

	publisher    *Publisher
	loginLimiter *LoginLimiter
	customRoutes []func(*App)
}

// New creates a new App with the given configuration.
func New(cfg Config, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the database, caches, middleware, routes, and starts
// the server.
func (a *App) Start() error {
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("primarium: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("primarium: SessionSecret is required")
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("primarium: init store: %w", err)
	}
	a.Store = store

	a.Cache = NewPostCache(a.Store, a.Config.PostCacheTTL)
	a.Drafts = NewDraftStore(a.Store)
	a.loginLimiter = NewLoginLimiter(5, time.Minute)

	if a.publisher == nil {
		a.publisher = NewPublisher(a.Config.N8NCreateURL, a.Config.N8NUpdateURL)
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded admin assets
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/admin-assets/*", echo.WrapHandler(http.StripPrefix("/admin-assets/", embeddedHandler)))

	// Member photos
	e.Static("/uploads", a.Config.UploadsDir)

	// Public JSON API consumed by published sites
	api := e.Group("/api/v1")
	api.GET("/blog-posts", a.handleAPIListPosts)
	api.GET("/blog-posts/:id", a.handleAPIGetPost)
	api.GET("/settlements/:id", a.handleAPIGetSettlement)
	api.GET("/settlements/:id/feed.xml", a.handleAPIFeed)

	// Admin pages
	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)

	// Settlement CRUD
	e.POST("/admin/settlements/", a.handleSettlementCreate)
	e.POST("/admin/settlements/:id/", a.handleSettlementUpdate)
	e.DELETE("/admin/settlements/:id/", a.handleSettlementDelete)

	// Blog post CRUD
	e.GET("/admin/settlements/:id/posts/", a.handlePostList)
	e.POST("/admin/settlements/:id/posts/", a.handlePostCreate)
	e.POST("/admin/posts/:id/", a.handlePostUpdate)
	e.DELETE("/admin/posts/:id/", a.handlePostDelete)

	// Member CRUD (multipart, photo optional)
	e.GET("/admin/settlements/:id/members/", a.handleMemberList)
	e.POST("/admin/settlements/:id/members/", a.handleMemberCreate)
	e.POST("/admin/members/:id/", a.handleMemberUpdate)
	e.DELETE("/admin/members/:id/", a.handleMemberDelete)

	// Coordinate CRUD
	e.GET("/admin/settlements/:id/coordinates/", a.handleCoordinateList)
	e.POST("/admin/settlements/:id/coordinates/", a.handleCoordinateCreate)
	e.POST("/admin/coordinates/:id/", a.handleCoordinateUpdate)
	e.DELETE("/admin/coordinates/:id/", a.handleCoordinateDelete)

	// Site editor
	ed := e.Group("/admin/editor/:id")
	ed.GET("/", a.handleEditorPage)
	ed.GET("/draft", a.handleEditorDraft)
	ed.POST("/components", a.handleComponentAdd)
	ed.DELETE("/components/:cid", a.handleComponentDelete)
	ed.POST("/components/:cid/move", a.handleComponentMove)
	ed.POST("/components/:cid/alignment", a.handleComponentAlignment)
	ed.PATCH("/components/:cid/content", a.handleComponentContent)
	ed.POST("/css", a.handleEditorCSS)
	ed.POST("/reset", a.handleEditorReset)
	ed.GET("/code", a.handleEditorCode)
	ed.GET("/preview", a.handleEditorPreview)
	ed.POST("/publish", a.handleEditorPublish)
	ed.GET("/publish-log", a.handleEditorPublishLog)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
