package encoding

import "fmt"

// CorruptInputError reports encoded input that cannot be decoded. For the
// Base32 and Base64 schemes Offset counts bytes after whitespace removal.
type CorruptInputError struct {
	Offset int
	Reason string
}

func (e *CorruptInputError) Error() string {
	return fmt.Sprintf("illegal data at input byte %d: %s", e.Offset, e.Reason)
}

func corrupt(offset int, reason string) error {
	return &CorruptInputError{Offset: offset, Reason: reason}
}
