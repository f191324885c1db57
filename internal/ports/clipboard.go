package ports

import "context"

// Clipboard writes plain text to the user's clipboard. Reads are never needed.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}
