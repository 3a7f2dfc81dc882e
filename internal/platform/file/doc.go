// Package file implements the snapshot persistence contract on top of a
// single JSON file. It is the default backend for a self-hosted, single-user
// deployment.
package file
