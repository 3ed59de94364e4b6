package portfolio

import "embed"

// EmbeddedAssets contains the default theme assets served under /public/:
// style.css and images/default-blog.svg. A site can add its own files in
// the static dir alongside them.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
