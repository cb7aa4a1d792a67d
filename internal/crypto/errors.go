package crypto

import "errors"

var (
	// ErrMalformedEncoding is returned when a stored salt or hash is not
	// valid standard base64.
	ErrMalformedEncoding = errors.New("malformed credential encoding")

	// ErrGeneratingSalt is returned when the OS CSPRNG cannot be read.
	ErrGeneratingSalt = errors.New("failed to generate salt")
)
