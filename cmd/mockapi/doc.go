// Package main runs the in-memory storefront API used by mwtrack during
// development and tests. It serves the same POST endpoints as the production
// backend, each taking a JSON body with key_hash and keyuser and answering
// with the success/message/data envelope.
//
// HTTP API
//
//	HEAD /                          connectivity check
//	POST /login.php                 email + password, returns the user
//	POST /product.php               catalog listing
//	POST /detalleproduct.php        product with its variants
//	POST /cart.php                  current cart and total_amount
//	POST /agregarcart.php           add a variant
//	POST /updatecart.php            change a line quantity
//	POST /eliminarproductcart.php   remove a line
//	POST /comprarproduct.php        check out the cart
//	POST /order.php                 orders of the user
//	POST /monitor.php               tracking log, newest first
//
// Behaviour
//
//   - All state is held in memory and lost on process exit.
//   - The demo account and catalog are installed at start.
//   - With --tick, a tracking entry is appended to a demo order at that
//     interval so a watching client has something to announce.
//   - Each request is recorded in a JSON access log on stderr.
package main
