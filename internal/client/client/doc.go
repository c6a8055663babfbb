// Package client talks to the directory backend and to the demo data feed.
//
// # Overview
//
//  1. Client is the API contract used by the CLI: List, Create, Delete, Ping.
//  2. HTTPClient implements it over the REST API. Each call is exactly one
//     request. There are no retries and no timeouts beyond the caller's
//     context.
//  3. HealthClient probes the server's gRPC health endpoint, which reflects
//     database reachability rather than mere process liveness.
//  4. DemoSource fetches and projects records from the public demo feed.
//
// # Error Handling
//
// Outcomes are exposed as sentinel errors matched with errors.Is:
// ErrValidation (400), ErrNotFound (404), ErrServer (other non-2xx) and
// ErrUnavailable (transport failure).
package client
