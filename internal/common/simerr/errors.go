package simerr

// Error is the error kind returned by the dice, game and analyzer packages.
// Call sites wrap it with detail, so compare with errors.Is.
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

// Define errors
const (
	// ErrInvalidFaces is returned for duplicate or malformed face lists
	ErrInvalidFaces Error = "invalid faces"

	// ErrUnknownFace is returned when a face does not exist on the die
	ErrUnknownFace Error = "unknown face"

	// ErrInvalidWeight is returned for negative or non-finite weights
	ErrInvalidWeight Error = "invalid weight"

	// ErrInvalidArgument is returned for bad counts, forms or missing dependencies
	ErrInvalidArgument Error = "invalid argument"
)
