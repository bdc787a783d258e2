// Package types defines the Row and Table data model, the Store interface,
// and standard error types for the grocer list system.
package types
