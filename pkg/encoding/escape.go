package encoding

const escapeChar = '%'

// escapeScheme writes bytes outside an unreserved set as %XX.
type escapeScheme struct {
	unreserved *byteSet
	// plusIsSpace selects the form encoding, where SPACE travels as '+'.
	plusIsSpace bool
}

var (
	percentScheme = &escapeScheme{unreserved: percentUnreserved}
	formScheme    = &escapeScheme{unreserved: formUnreserved, plusIsSpace: true}
)

func (s *escapeScheme) encode(src []byte) []byte {
	if src == nil {
		return nil
	}
	dst := make([]byte, 0, len(src))
	for _, b := range src {
		switch {
		case s.plusIsSpace && b == ' ':
			dst = append(dst, '+')
		case s.unreserved[b]:
			dst = append(dst, b)
		default:
			dst = append(dst, escapeChar, upperHex.encode[b>>4], upperHex.encode[b&0x0F])
		}
	}
	return dst
}

func (s *escapeScheme) decode(src []byte) ([]byte, error) {
	if src == nil {
		return nil, nil
	}
	dst := make([]byte, 0, len(src))
	for i := 0; i < len(src); i++ {
		b := src[i]
		switch {
		case s.plusIsSpace && b == '+':
			dst = append(dst, ' ')
		case b == escapeChar:
			if i+2 >= len(src) {
				return nil, corrupt(i, "incomplete escape sequence")
			}
			hi, lo := anyHex.decode[src[i+1]], anyHex.decode[src[i+2]]
			if hi == invalid || lo == invalid {
				return nil, corrupt(i, "illegal escape sequence")
			}
			dst = append(dst, hi<<4|lo)
			i += 2
		default:
			dst = append(dst, b)
		}
	}
	return dst, nil
}

// EncodePercent applies RFC 3986 percent-encoding to every byte outside
// the unreserved set.
func EncodePercent(src []byte) ([]byte, error) {
	return percentScheme.encode(src), nil
}

// DecodePercent reverses EncodePercent. Escapes may use hex digits of
// either case; bytes outside an escape are copied as is.
func DecodePercent(src []byte) ([]byte, error) {
	return percentScheme.decode(src)
}

// EncodeForm applies application/x-www-form-urlencoded encoding.
func EncodeForm(src []byte) ([]byte, error) {
	return formScheme.encode(src), nil
}

func DecodeForm(src []byte) ([]byte, error) {
	return formScheme.decode(src)
}
