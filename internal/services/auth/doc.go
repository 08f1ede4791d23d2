// Package auth signs users in against the storefront backend and keeps the
// signed-in user in the session store.
//
// There is no token refresh: the keyuser returned by login stays valid until
// the user signs out.
package auth
