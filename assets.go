package md2rich

import (
	"errors"

	"github.com/alnah/go-md2rich/internal/assets"
)

// convertAssetError maps internal asset errors to public sentinels while
// keeping the original message. An invalid name maps to notFound.
func convertAssetError(err, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, assets.ErrStyleNotFound):
		return wrapError(ErrStyleNotFound, err)
	case errors.Is(err, assets.ErrTemplateNotFound):
		return wrapError(ErrTemplateNotFound, err)
	case errors.Is(err, assets.ErrInvalidBasePath), errors.Is(err, assets.ErrPathTraversal):
		return wrapError(ErrInvalidAssetPath, err)
	case errors.Is(err, assets.ErrInvalidAssetName):
		return wrapError(notFound, err)
	default:
		return err
	}
}

func wrapError(sentinel, original error) error {
	return &wrappedAssetError{sentinel: sentinel, original: original}
}

// wrappedAssetError reports the original message and matches the public
// sentinel with errors.Is.
type wrappedAssetError struct {
	sentinel error
	original error
}

func (e *wrappedAssetError) Error() string {
	return e.original.Error()
}

func (e *wrappedAssetError) Unwrap() error {
	return e.sentinel
}
