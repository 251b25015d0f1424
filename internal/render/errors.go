package render

import "errors"

// ErrRenderFailed wraps any failure while composing the output PDF. The
// request stays in Processing when rendering fails; nothing is persisted.
var ErrRenderFailed = errors.New("document render failed")
