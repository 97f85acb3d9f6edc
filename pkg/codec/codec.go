package codec

import (
	"errors"
	"slices"
	"strings"

	"github.com/rbuck/txtcodec/pkg/encoding"
)

// Codec is the identity of a text encoding: a canonical name, a set of
// aliases and the functions that implement it. A Codec is immutable and
// safe for concurrent use.
type Codec struct {
	name    string
	aliases []string
	enc     encoding.Encoder
	dec     encoding.Decoder
}

// New validates every name and returns a Codec. Aliases are deduplicated.
// A nil encoder or decoder passes data through unchanged.
func New(name string, aliases []string, enc encoding.Encoder, dec encoding.Decoder) (*Codec, error) {
	if err := CheckName(name); err != nil {
		return nil, err
	}
	set := make([]string, 0, len(aliases))
	for _, alias := range aliases {
		if err := CheckName(alias); err != nil {
			return nil, err
		}
		if !slices.Contains(set, alias) {
			set = append(set, alias)
		}
	}
	slices.Sort(set)
	enc, dec = orBypass(enc, dec)
	return &Codec{name: name, aliases: set, enc: enc, dec: dec}, nil
}

// MustNew is like New but panics on error. Intended for package-level
// tables of known-good names.
func MustNew(name string, aliases []string, enc encoding.Encoder, dec encoding.Decoder) *Codec {
	c, err := New(name, aliases, enc, dec)
	if err != nil {
		panic(err)
	}
	return c
}

func orBypass(enc encoding.Encoder, dec encoding.Decoder) (encoding.Encoder, encoding.Decoder) {
	if enc == nil {
		enc = encoding.BypassCodec{}
	}
	if dec == nil {
		dec = encoding.BypassCodec{}
	}
	return enc, dec
}

// Name returns the canonical name.
func (c *Codec) Name() string {
	return c.name
}

// Aliases returns a sorted copy of the alias set.
func (c *Codec) Aliases() []string {
	return slices.Clone(c.aliases)
}

// HasAlias reports whether name is one of the codec's aliases, ignoring case.
func (c *Codec) HasAlias(name string) bool {
	for _, alias := range c.aliases {
		if strings.EqualFold(alias, name) {
			return true
		}
	}
	return false
}

func (c *Codec) NewEncoder() *Encoder {
	return &Encoder{codec: c}
}

func (c *Codec) NewDecoder() *Decoder {
	return &Decoder{codec: c}
}

// Compare orders codecs by canonical name, ignoring case.
func (c *Codec) Compare(other *Codec) int {
	return compareFold(c.name, other.name)
}

// Equal reports whether both codecs carry exactly the same canonical name.
func (c *Codec) Equal(other *Codec) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.name == other.name
}

func (c *Codec) String() string {
	return c.name
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// Encoder turns binary data into the codec's text form. It holds no state of
// its own and may be shared between goroutines.
type Encoder struct {
	codec *Codec
}

// Codec returns the codec the encoder belongs to.
func (e *Encoder) Codec() *Codec {
	return e.codec
}

func (e *Encoder) Encode(src []byte) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, &MalfunctionError{Codec: e.codec.name, Op: "encode", Cause: r}
		}
	}()
	out, err = e.codec.enc.Encode(src)
	if err != nil {
		return nil, e.codec.wrap("encode", err)
	}
	return out, nil
}

// Decoder turns the codec's text form back into binary data. It holds no
// state of its own and may be shared between goroutines.
type Decoder struct {
	codec *Codec
}

// Codec returns the codec the decoder belongs to.
func (d *Decoder) Codec() *Codec {
	return d.codec
}

func (d *Decoder) Decode(src []byte) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, &MalfunctionError{Codec: d.codec.name, Op: "decode", Cause: r}
		}
	}()
	out, err = d.codec.dec.Decode(src)
	if err != nil {
		return nil, d.codec.wrap("decode", err)
	}
	return out, nil
}

func (c *Codec) wrap(op string, err error) error {
	var corrupt *encoding.CorruptInputError
	switch {
	case errors.Is(err, ErrMalformedInput), errors.Is(err, ErrCodecMalfunction):
		return err
	case errors.As(err, &corrupt):
		return &MalformedInputError{Codec: c.name, Err: err}
	default:
		return &MalfunctionError{Codec: c.name, Op: op, Cause: err}
	}
}
