// Package webview builds the URLs of the embedded web pages (dashboard,
// order detail, tracking) and the script that restyles them for the active
// theme.
package webview
