// Package migrations holds the promotrack schema: the read-only directory
// tables (servers, users, promotions, reward_settings), the click ledger
// with its daily aggregates and the reward ledger.
package migrations

import "embed"

// FS contains the numbered up and down scripts read by internal/db.Migrate.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version Migrate moves the database to. Raise it
// together with every new pair of scripts.
const Version = 1
