// Package store provides file-based persistence for mwtrack's local state.
//
// It mirrors the key-value storage of a mobile device: a single JSON map on
// disk holding string values under well-known keys. Writes go through a temp
// file and an atomic rename. All methods are concurrency-safe via internal
// locking. Stored files live under the user's configured home directory.
//
// The package includes:
//   - The key-value file store (KVFileStore)
//   - The signed-in user record (SessionFileStore), optionally sealed with a
//     passphrase using scrypt and ChaCha20-Poly1305
package store
