// Package orders lists the user's orders and groups and filters them for
// display.
package orders
