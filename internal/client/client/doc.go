// Package client is the HTTP client the CLI uses to talk to the products API.
//
// # Overview
//
// APIClient wraps fiber's Agent and exposes one method per API operation:
// Ping, Register, Login, CreateProduct, ListProducts, GetProduct,
// UpdateProduct and DeleteProduct. A successful Login stores the session
// token, which is then sent as "Authorization: Bearer <token>" on every
// scoped call until Logout.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. Non-2xx responses are returned as
// *APIError carrying the status and the server's message; it unwraps to
// ErrUnauthorized, ErrNotFound, ErrConflict or ErrBadRequest so callers can
// match with errors.Is.
//
// # Contexts
//
// fasthttp has no per-request context, so each call checks ctx before
// sending and bounds the request by the earlier of the configured timeout
// and the context deadline.
package client
