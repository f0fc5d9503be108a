package table

import "errors"

var (
	// ErrAssetsNotReady is returned when cards are built or dealt before both
	// atlas images finished loading. Retry once the bundle is ready.
	ErrAssetsNotReady = errors.New("card assets not ready")
	// ErrAssetLoad marks a failed image fetch. It is fatal for the session.
	ErrAssetLoad = errors.New("card asset load failed")
	// ErrInvalidIndex is a sprite index outside the atlas grid.
	ErrInvalidIndex = errors.New("invalid atlas index")
	// ErrEmptyDeck is returned by Draw once all cards are gone.
	ErrEmptyDeck = errors.New("deck is empty")
	// ErrInvalidLayout is a seat layout that can not be used for dealing.
	ErrInvalidLayout = errors.New("invalid seat layout")
)
