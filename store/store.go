// Package store abstracts the discovery mechanism a browser uses to find
// installed native messaging hosts: a key-value store mapping host names to
// manifest file paths.  On Windows this is the registry; elsewhere a file
// or in-memory store stands in.
package store

// Store is a discovery store holding one record per host name.
//
// Implementations need not be safe for concurrent use: registration
// operations run single-threaded relative to each other.
type Store interface {
	// Lookup returns the manifest path registered for name.  ok is false
	// when no record exists; err reports a store access failure.
	Lookup(name string) (path string, ok bool, err error)

	// Set creates or overwrites the record for name.
	Set(name, path string) error

	// Delete removes the record for name.  Deleting an absent record is a
	// no-op, not an error.
	Delete(name string) error
}
