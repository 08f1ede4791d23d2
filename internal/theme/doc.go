// Package theme resolves the light or dark color scheme and persists the
// user's override.
package theme
