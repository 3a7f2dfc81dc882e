// Package api provides HTTP handlers for the API. All semantic validation of
// incoming values (names, dates, statuses, grade ranges) happens here at the
// input boundary; the core tracker deliberately tolerates what it is given.
package api
