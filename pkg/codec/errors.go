package codec

import "errors"

var (
	ErrIllegalCodecName = errors.New("illegal codec name")
	ErrUnsupportedCodec = errors.New("unsupported codec")
	ErrMalformedInput   = errors.New("malformed input")
	ErrCodecMalfunction = errors.New("codec malfunction")
)

// IllegalNameError reports a codec name that violates the name grammar.
// Position is the byte offset of the first offending character, or -1 when
// the name is empty.
type IllegalNameError struct {
	Name     string
	Position int
}

func (e *IllegalNameError) Error() string {
	if e.Name == "" {
		return sprintf(msgIllegalNameEmpty)
	}
	return sprintf(msgIllegalName, e.Name, e.Position)
}

func (e *IllegalNameError) Is(target error) bool {
	return target == ErrIllegalCodecName
}

// UnsupportedCodecError reports a well-formed name that no provider knows.
type UnsupportedCodecError struct {
	Name string
}

func (e *UnsupportedCodecError) Error() string {
	return sprintf(msgUnsupported, e.Name)
}

func (e *UnsupportedCodecError) Is(target error) bool {
	return target == ErrUnsupportedCodec
}

// MalformedInputError reports input a decoder could not accept.
type MalformedInputError struct {
	Codec string
	Err   error
}

func (e *MalformedInputError) Error() string {
	return sprintf(msgMalformedInput, e.Codec, e.Err)
}

func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// MalfunctionError reports a failure inside a codec implementation that is
// not attributable to the input, such as a panic.
type MalfunctionError struct {
	Codec string
	Op    string
	Cause any
}

func (e *MalfunctionError) Error() string {
	return sprintf(msgMalfunction, e.Codec, e.Op, e.Cause)
}

func (e *MalfunctionError) Is(target error) bool {
	return target == ErrCodecMalfunction
}

func (e *MalfunctionError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}
