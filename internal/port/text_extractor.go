package port

import "context"

// TextExtractor converts an uploaded case packet into plain text.
type TextExtractor interface {
	ExtractText(ctx context.Context, fileBytes []byte, contentType string) (string, error)
}
