package route

import "errors"

// ErrRankOutOfRange indicates a rank argument fell outside [0, len).
var ErrRankOutOfRange = errors.New("route: rank out of range")
