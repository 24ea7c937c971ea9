// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ChangeStatus is the kind of change a remote commit made to one file.
//
// The set of known values is closed. Values received from the remote that
// are not listed here are kept verbatim so the executor can reject them.
type ChangeStatus string

const (
	ChangeAdded    ChangeStatus = "added"
	ChangeModified ChangeStatus = "modified"
	ChangeRemoved  ChangeStatus = "removed"
)

// Known reports whether s is one of the statuses the executor understands.
func (s ChangeStatus) Known() bool {
	switch s {
	case ChangeAdded, ChangeModified, ChangeRemoved:
		return true
	default:
		return false
	}
}

// RemoteFileChange is one file entry of a remote commit.
type RemoteFileChange struct {
	// Path is relative to the local directory (remote prefix already stripped).
	Path   string       `json:"path"`
	Status ChangeStatus `json:"status"`
	// Patch holds unified-diff hunks and is set only for modified files.
	Patch *string `json:"patch,omitempty"`
}

// PatchText returns the patch body or an empty string when absent.
func (c RemoteFileChange) PatchText() string {
	if c.Patch == nil {
		return ""
	}
	return *c.Patch
}

// RemoteCommit is the detail of one remote commit with its file changes in
// the order the remote reported them.
type RemoteCommit struct {
	ID    string             `json:"id"`
	Files []RemoteFileChange `json:"files"`
}

// FileSyncState is the terminal state of applying one RemoteFileChange.
type FileSyncState string

const (
	FileSyncApplied      FileSyncState = "applied"
	FileSyncRedownloaded FileSyncState = "redownloaded"
	FileSyncFailed       FileSyncState = "failed"
)

// PatchResult is the outcome of applying parsed hunks to a text.
type PatchResult struct {
	NewText string `json:"new_text"`
	// HunkApplied holds one entry per hunk, in hunk order.
	HunkApplied []bool `json:"hunk_applied"`
}

// OK reports whether there was at least one hunk and every hunk applied.
func (r PatchResult) OK() bool {
	if len(r.HunkApplied) == 0 {
		return false
	}
	for _, ok := range r.HunkApplied {
		if !ok {
			return false
		}
	}
	return true
}
