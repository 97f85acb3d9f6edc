package encoding

const (
	qpEscape = '='
	// Encoded lines hold at most 76 bytes including the trailing '=' of a
	// soft break.
	qpMaxColumn = 75
)

var qpSoftBreak = []byte{qpEscape, '\r', '\n'}

// EncodeQuotedPrintable applies RFC 2045 quoted-printable encoding. Line
// breaks in the input (CR, LF or CRLF) are normalized to a hard CRLF.
func EncodeQuotedPrintable(src []byte) ([]byte, error) {
	if src == nil {
		return nil, nil
	}
	dst := make([]byte, 0, len(src)+len(src)/qpMaxColumn*len(qpSoftBreak))
	col := 0
	for i, b := range src {
		switch {
		case b == '\n' && i > 0 && src[i-1] == '\r':
			// second half of a CRLF already written
		case b == '\r' || b == '\n':
			dst = append(dst, '\r', '\n')
			col = 0
		default:
			width := 3
			if qpSafe[b] {
				width = 1
			}
			if col+width > qpMaxColumn {
				dst = append(dst, qpSoftBreak...)
				col = 0
			}
			if width == 1 {
				dst = append(dst, b)
			} else {
				dst = append(dst, qpEscape, upperHex.encode[b>>4], upperHex.encode[b&0x0F])
			}
			col += width
		}
	}
	return dst, nil
}

// DecodeQuotedPrintable reverses EncodeQuotedPrintable. Escapes must use
// upper-case hex digits. A soft break may carry trailing SPACE or TAB
// between the '=' and the CRLF.
func DecodeQuotedPrintable(src []byte) ([]byte, error) {
	if src == nil {
		return nil, nil
	}
	dst := make([]byte, 0, len(src))
	for i := 0; i < len(src); i++ {
		b := src[i]
		switch {
		case qpSafe[b] || b == '\r' || b == '\n':
			dst = append(dst, b)
		case b == qpEscape:
			n, err := decodeQPEscape(src, i, &dst)
			if err != nil {
				return nil, err
			}
			i += n
		default:
			return nil, corrupt(i, "byte outside the printable range")
		}
	}
	return dst, nil
}

// decodeQPEscape handles the sequence starting at the '=' in src[at]. It
// appends the decoded byte, if any, and returns how many bytes after the
// '=' were consumed.
func decodeQPEscape(src []byte, at int, dst *[]byte) (int, error) {
	if at+1 >= len(src) {
		return 0, corrupt(at, "incomplete escape sequence")
	}
	if hi := upperHex.decode[src[at+1]]; hi != invalid {
		if at+2 >= len(src) {
			return 0, corrupt(at, "incomplete escape sequence")
		}
		lo := upperHex.decode[src[at+2]]
		if lo == invalid {
			return 0, corrupt(at+2, "illegal escape sequence")
		}
		*dst = append(*dst, hi<<4|lo)
		return 2, nil
	}

	j := at + 1
	for j < len(src) && (src[j] == ' ' || src[j] == '\t') {
		j++
	}
	if j+1 >= len(src) || src[j] != '\r' || src[j+1] != '\n' {
		return 0, corrupt(at, "illegal soft line break")
	}
	return j + 1 - at, nil
}
