package pdf

import "errors"

// ErrNoContent reports markup that parsed to zero elements.
var ErrNoContent = errors.New("markup contains no content elements")
