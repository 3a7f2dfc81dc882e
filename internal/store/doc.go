// Package store defines the persistence contract of the tracker: the
// snapshot interchange format and the load/save interface that backends
// implement. The in-memory state owned by the tracker is the source of truth
// for a running session; backends only receive full snapshots of it.
package store
