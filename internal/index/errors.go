// ABOUTME: Storage-layer error types for the vector index
// ABOUTME: Write and read failures wrap the underlying cause, never retried here
package index

import "fmt"

// WriteError wraps an upsert, delete, or clear failure, including
// embedding failures on the write path.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string { return fmt.Sprintf("index write: %v", e.Err) }
func (e *WriteError) Unwrap() error { return e.Err }

// ReadError wraps a search or count failure.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string { return fmt.Sprintf("index read: %v", e.Err) }
func (e *ReadError) Unwrap() error { return e.Err }
