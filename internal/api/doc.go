// Package api provides an HTTP implementation of the domain.Backend
// interface used by mwtrack.
//
// The backend is a set of PHP endpoints under one base URL. Every endpoint is
// called with POST and a JSON body carrying the shared application secret
// (keyhash) and, once signed in, the user's key (keyuser). Every response is a
// JSON envelope:
//
//	{ "success": true, "message": "...", "data": ..., ...extras }
//
// Supported operations include:
//   - Signing in (login.php).
//   - Listing products and fetching one product with its variants.
//   - Reading, adding to, updating, removing from and checking out the cart.
//   - Listing orders.
//   - Fetching tracking logs (monitor.php).
//
// The backend is loose with types: ids, prices and quantities may arrive as
// strings or numbers, so the wire structs in this package decode both.
//
// All requests accept a context for cancellation and deadlines. Transport
// failures wrap ErrUnreachable so callers can queue work for later. Non-2xx
// statuses are returned as errors with the HTTP method, path and status text.
// A response with success=false is returned as *Error carrying the server's
// message.
package api
