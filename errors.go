package cfb

import "errors"

// Every failure surfaced by this package wraps exactly one of these
// sentinels, so callers can dispatch with errors.Is.
var (
	ErrInvalidArgument  = errors.New("cfb: invalid argument")
	ErrHeaderInvalid    = errors.New("cfb: invalid header")
	ErrOutOfBounds      = errors.New("cfb: access out of image bounds")
	ErrCorruptChain     = errors.New("cfb: corrupt sector chain")
	ErrCorruptDirectory = errors.New("cfb: corrupt directory")
)
