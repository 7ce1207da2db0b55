package driven

import "context"

// URLOpener opens a URL in a new browsing context.
//
// A nil error means the request was handed to the browser (or other sink).
// Whether the browser actually showed a tab is not observable.
type URLOpener interface {
	Open(ctx context.Context, url string) error
}
