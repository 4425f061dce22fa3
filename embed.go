package primarium

import "embed"

// EmbeddedAssets contains static assets shipped with the binary:
// admin.css, dashboard.js, editor.js
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
