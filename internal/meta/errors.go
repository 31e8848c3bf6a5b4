package meta

import "fmt"

// NotFoundError reports an inbound identifier that no provider recognizes.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("title %s not found", e.ID)
}

// ResolutionError reports an identifier that could not be cross-resolved to
// the namespace a builder needs.
type ResolutionError struct {
	ID     string
	Reason string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("could not resolve %s: %s", e.ID, e.Reason)
}

// FetchError reports a failed provider payload fetch.
type FetchError struct {
	ID  string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching payload for %s: %v", e.ID, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
