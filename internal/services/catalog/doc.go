// Package catalog lists and searches products and prepares product detail
// for display: primary image, datasheet link, repaired accents and the
// translated specification rows.
package catalog
