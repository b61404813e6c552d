package migrations

import "embed"

// Files holds the forward-only SQL migrations compiled into the binary.
// File names follow NNNN_description.sql and are applied in numeric order.
//
//go:embed *.sql
var Files embed.FS
