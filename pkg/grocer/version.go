// Package grocer exposes module-level metadata.
package grocer

// Version is the current grocer release.
const Version = "0.1.0"
