// Package cart manages the signed-in user's server-side cart.
//
// The cart id the backend hands out is remembered in the key-value store so
// later edits and the checkout can refer to it. Quantity edits and removals
// are submitted through the offline layer and may be queued for replay.
package cart
