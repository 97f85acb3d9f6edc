package encoding

// Encoder turns raw binary data into its text-safe form.
type Encoder interface {
	Encode([]byte) ([]byte, error)
}

// Decoder turns the text-safe form back into raw binary data.
type Decoder interface {
	Decode([]byte) ([]byte, error)
}

// EncoderFunc adapts a plain function to the Encoder interface.
type EncoderFunc func([]byte) ([]byte, error)

func (f EncoderFunc) Encode(in []byte) ([]byte, error) {
	return f(in)
}

// DecoderFunc adapts a plain function to the Decoder interface.
type DecoderFunc func([]byte) ([]byte, error)

func (f DecoderFunc) Decode(in []byte) ([]byte, error) {
	return f(in)
}

// BypassCodec is a no-op implementation of Encoder and Decoder.
type BypassCodec struct{}

func (BypassCodec) Encode(in []byte) ([]byte, error) {
	return in, nil
}

func (BypassCodec) Decode(in []byte) ([]byte, error) {
	return in, nil
}
