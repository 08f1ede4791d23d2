// Package commands defines the mwtrack CLI and wires dependencies for subcommands.
//
// Commands
//
//   - login      Sign in with email and password
//   - logout     Forget the stored session and cart
//   - whoami     Print the signed-in user
//   - products   List or search the catalog
//   - product    Show one product with its variants and specifications
//   - cart       Show, add to, edit and check out the cart
//   - orders     List orders grouped by status
//   - track      Poll the tracking log once
//   - queue      Inspect, replay or clear actions recorded while offline
//   - web        Print storefront page URLs and injected scripts
//   - lang       Show or change the interface language
//   - theme      Show or change the color theme
//   - watch      Poll tracking updates and connectivity until interrupted
//
// # Implementation
//
// The root command loads the configuration (flags, MWTRACK_* environment and
// an optional YAML file) and builds the dependency graph before any
// subcommand runs, so handlers share one app.Wire.
package commands
