package reader

import "fmt"

// ErrNotFound indicates the named file does not exist.
type ErrNotFound struct {
	Path string
	Err  error
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("source file not found: %s", e.Path)
}

func (e *ErrNotFound) Unwrap() error { return e.Err }

// ErrFetch indicates a URL could not be retrieved: network failure,
// timeout, or a non-2xx status.
type ErrFetch struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *ErrFetch) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to fetch %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
}

func (e *ErrFetch) Unwrap() error { return e.Err }

// ErrUnreadablePDF indicates both PDF text extractors failed, or the
// file is absent.
type ErrUnreadablePDF struct {
	Path string
	Err  error
}

func (e *ErrUnreadablePDF) Error() string {
	return fmt.Sprintf("unreadable PDF %s: %v", e.Path, e.Err)
}

func (e *ErrUnreadablePDF) Unwrap() error { return e.Err }
