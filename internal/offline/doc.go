// Package offline records backend calls made while the backend is
// unreachable and replays them once connectivity returns.
//
// Replay is at-most-once: every queued action is attempted a single time in
// the order it was recorded and then forgotten, whether or not it succeeded.
package offline
