package service

import (
	"context"
)

// AvatarStorage keeps uploaded profile pictures.
type AvatarStorage interface {
	// Store sniffs data, rejects anything but JPEG, PNG and WebP with
	// domainerrors.ErrUnsupportedMedia, and returns the public URL of the stored object.
	Store(ctx context.Context, data []byte) (string, error)

	// Delete removes an object previously returned by Store. URLs this storage
	// did not produce and missing objects are ignored.
	Delete(ctx context.Context, url string) error
}
