package codec

import (
	"sync"

	"github.com/rbuck/txtcodec/pkg/encoding"
)

// Canonical names of the built-in codecs.
const (
	Base16             = "base16"
	Base32             = "base32"
	Base32Hex          = "base32hex"
	Base64             = "base64"
	Base64URL          = "base64url"
	PercentEncoded     = "pct-encoded"
	QuotedPrintable    = "quoted-printable"
	XWWWFormURLEncoded = "x-www-form-urlencoded"
)

func builtin(name string, aliases []string, enc encoding.EncoderFunc, dec encoding.DecoderFunc) TableEntry {
	return TableEntry{
		Name:    name,
		Aliases: aliases,
		Factory: func() (*Codec, error) {
			return New(name, aliases, enc, dec)
		},
	}
}

// StandardEntries returns the table of built-in codecs.
func StandardEntries() []TableEntry {
	return []TableEntry{
		builtin(Base16, []string{"hex", "hexBinary"}, encoding.EncodeBase16, encoding.DecodeBase16),
		builtin(Base32, nil, encoding.EncodeBase32, encoding.DecodeBase32),
		builtin(Base32Hex, nil, encoding.EncodeBase32Hex, encoding.DecodeBase32Hex),
		builtin(Base64, []string{"base64Binary"}, encoding.EncodeBase64, encoding.DecodeBase64),
		builtin(Base64URL, []string{"base64URLSafe"}, encoding.EncodeBase64URL, encoding.DecodeBase64URL),
		builtin(PercentEncoded, []string{"percent-encoded"}, encoding.EncodePercent, encoding.DecodePercent),
		builtin(QuotedPrintable, nil, encoding.EncodeQuotedPrintable, encoding.DecodeQuotedPrintable),
		builtin(XWWWFormURLEncoded, []string{"www-form-urlencoded"}, encoding.EncodeForm, encoding.DecodeForm),
	}
}

var standard = sync.OnceValue(func() *TableProvider {
	p, err := NewTableProvider(nil, StandardEntries()...)
	if err != nil {
		panic(err)
	}
	return p
})

// Standard returns the process-wide provider of built-in codecs.
func Standard() *TableProvider {
	return standard()
}
