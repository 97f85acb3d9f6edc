package codec

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
)

// UUIDCoder writes UUIDs as compact text through a codec. The 16 bytes of
// the UUID are encoded in network order and the padding is trimmed.
type UUIDCoder struct {
	enc *Encoder
	dec *Decoder
}

func NewUUIDCoder(c *Codec) *UUIDCoder {
	return &UUIDCoder{enc: c.NewEncoder(), dec: c.NewDecoder()}
}

// Codec returns the codec the coder writes with.
func (u *UUIDCoder) Codec() *Codec {
	return u.enc.Codec()
}

func (u *UUIDCoder) Encode(id uuid.UUID) ([]byte, error) {
	out, err := u.enc.Encode(id[:])
	if err != nil {
		return nil, err
	}
	if i := bytes.IndexByte(out, '='); i >= 0 {
		out = out[:i]
	}
	return out, nil
}

// Decode reverses Encode. Padding that Encode trimmed is restored before
// decoding.
func (u *UUIDCoder) Decode(text []byte) (uuid.UUID, error) {
	buf := append([]byte(nil), text...)
	var lastErr error
	for pads := 0; pads < 8; pads++ {
		raw, err := u.dec.Decode(buf)
		if err == nil {
			id, err := uuid.FromBytes(raw)
			if err != nil {
				return uuid.Nil, fmt.Errorf("decode uuid: %w", err)
			}
			return id, nil
		}
		lastErr = err
		buf = append(buf, '=')
	}
	return uuid.Nil, lastErr
}
