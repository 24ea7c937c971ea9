package service

import "errors"

var (
	// ErrPatchFailed is returned by the executor when a patch could not be
	// parsed or applied. The file has been re-downloaded, but the pass must
	// stop: later commits were computed against content we did not produce.
	ErrPatchFailed = errors.New("patch could not be applied")

	// ErrUnknownChangeStatus is returned for change kinds other than
	// added, modified and removed.
	ErrUnknownChangeStatus = errors.New("unknown change status")

	// ErrSyncAborted wraps the reason a pass stopped before writing the marker.
	ErrSyncAborted = errors.New("synchronization aborted")
)
