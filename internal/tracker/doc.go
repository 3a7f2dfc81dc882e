// Package tracker implements the mutation store that owns the authoritative
// course collection for the lifetime of the process. All writes go through
// its operations, reads receive deep-copied snapshots, and every successful
// mutation triggers a best-effort write-through save to the configured
// snapshot backend. The pure calculation rules live in domain/progress; the
// tracker only orchestrates them.
package tracker
