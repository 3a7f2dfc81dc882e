// Package progress holds the pure calculation rules of the tracker: weight
// normalization, course metrics, overdue reconciliation, and next-due
// selection. Every function here is a pure function of its inputs (including
// an explicit "now" where the clock matters) so the rules can be tested in
// isolation from the store.
package progress
