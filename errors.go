package nilfacts

import "errors"

var (
	// ErrNoInferenceStore is returned by the Mark* operations when the
	// engine was built without WithStoreDir.
	ErrNoInferenceStore = errors.New("inference store not configured")
)
