// Package client contains the client-side building blocks for talking to the
// Remote Auth API and for bootstrapping local persistence.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     Register, Login, GetUser, SetAccessToken, Ping and Close.
//  2. A concrete implementation (see HTTPClient) that speaks JSON over HTTP,
//     keeps the bearer credential on the instance and maps status codes to
//     sentinel errors. Ping asks the server's gRPC health service.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations)
//     wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Conditions are exposed as sentinel errors that callers match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrConflict, ErrValidation,
// ErrNotFound, ErrServer.
//
// # Concurrency
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honour cancellation.
package client
