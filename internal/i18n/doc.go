// Package i18n holds the UI and product-attribute dictionaries, device
// language detection and the persisted language preference.
package i18n
