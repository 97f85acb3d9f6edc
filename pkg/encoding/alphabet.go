package encoding

const (
	invalid = 0xFF
	pad     = '='
)

// alphabet maps symbol values to their byte representation and back.
// Tables are built once at package init and never written afterwards.
type alphabet struct {
	encode []byte
	decode [256]byte
}

func newAlphabet(symbols string) *alphabet {
	a := &alphabet{encode: []byte(symbols)}
	for i := range a.decode {
		a.decode[i] = invalid
	}
	for i := 0; i < len(symbols); i++ {
		a.decode[symbols[i]] = byte(i)
	}
	return a
}

// foldCase returns a copy that also decodes the lower-case form of every
// upper-case letter in the alphabet.
func (a *alphabet) foldCase() *alphabet {
	c := &alphabet{encode: a.encode, decode: a.decode}
	for _, s := range a.encode {
		if s >= 'A' && s <= 'Z' {
			c.decode[s+'a'-'A'] = a.decode[s]
		}
	}
	return c
}

// byteSet is a membership table over all byte values.
type byteSet [256]bool

func newByteSet(members string, ranges ...[2]byte) *byteSet {
	var s byteSet
	for i := 0; i < len(members); i++ {
		s[members[i]] = true
	}
	for _, r := range ranges {
		for b := int(r[0]); b <= int(r[1]); b++ {
			s[b] = true
		}
	}
	return &s
}

var (
	upperHex = newAlphabet("0123456789ABCDEF")
	anyHex   = upperHex.foldCase()

	base32Alphabet    = newAlphabet("ABCDEFGHIJKLMNOPQRSTUVWXYZ234567")
	base32HexAlphabet = newAlphabet("0123456789ABCDEFGHIJKLMNOPQRSTUV")
	base64Alphabet    = newAlphabet("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/")
	base64URLAlphabet = newAlphabet("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_")

	alnum = [][2]byte{{'A', 'Z'}, {'a', 'z'}, {'0', '9'}}

	// RFC 3986 section 2.3.
	percentUnreserved = newByteSet("-._~", alnum...)
	// HTML application/x-www-form-urlencoded; space is written as '+'.
	formUnreserved = newByteSet("-._* ", alnum...)
	// RFC 2045 section 6.7 literal representation, plus TAB and SPACE.
	qpSafe = newByteSet("\t ", [2]byte{33, 60}, [2]byte{62, 126})

	whitespace = newByteSet(" \t\r\n")
)

// stripWhitespace returns src without SPACE, TAB, CR and LF. The input is
// never modified; when it holds no whitespace it is returned as is.
func stripWhitespace(src []byte) []byte {
	n := 0
	for _, b := range src {
		if whitespace[b] {
			n++
		}
	}
	if n == 0 {
		return src
	}
	out := make([]byte, 0, len(src)-n)
	for _, b := range src {
		if !whitespace[b] {
			out = append(out, b)
		}
	}
	return out
}
