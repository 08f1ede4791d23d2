// Package mockapi is an in-memory stand-in for the storefront backend.
//
// It serves the same PHP-style endpoints as the production API (POST
// /<endpoint>.php with a JSON body, JSON envelope responses) and keeps all
// state in memory. It backs the development server in cmd/mockapi and the
// package tests that exercise the HTTP client end to end.
//
// Behaviour
//
//   - Every request must carry the configured keyhash; authenticated
//     endpoints also need a keyuser issued by login.
//   - Rejections are returned as HTTP 200 with success=false and a message,
//     matching the production backend.
//   - Checkout turns the cart into an order with status "confirmed" and
//     appends a tracking log for it.
//   - SetDown makes every endpoint answer 503, to simulate an outage.
package mockapi
