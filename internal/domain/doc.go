// Package domain contains the core entities of the course tracker: courses,
// their assignments, and the value types (calendar dates, assignment status)
// they are built from. It represents the heart of the system, independent of
// any specific storage or delivery mechanism.
package domain
