// sql/embed.go
//
// Embedded SQL migration files, applied at startup by migrate() in db.go.
// Files run in lexical order; keep the numeric prefix convention.

package sql

import "embed"

//go:embed *.sql
var FS embed.FS
