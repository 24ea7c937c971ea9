package patch

import "errors"

// ErrPatchParse is returned by [Parse] for structurally invalid patch text.
var ErrPatchParse = errors.New("invalid patch text")
