// Copyright © 2025 The icelang-ls authors

// Package docs embeds the icelang language reference for use by the CLI.
package docs

import _ "embed"

//go:embed lang.md
var LangGuide string
