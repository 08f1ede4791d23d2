// Package tracking polls the backend's tracking log and raises one
// notification per log entry newer than the last one seen.
//
// The id of the newest entry seen is kept in the key-value store, so a log
// entry is announced once across restarts.
package tracking
