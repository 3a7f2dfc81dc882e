// Package auth implements the optional single-owner protection of the API:
// bcrypt verification of the configured owner password and HMAC-signed access
// tokens. There are no user accounts; a valid token simply proves the caller
// is the owner.
package auth
