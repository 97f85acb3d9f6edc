package encoding

// blockScheme packs fixed-size groups of input bytes into fixed-size groups
// of symbols, as Base32 (5 bytes, 8 symbols) and Base64 (3 bytes, 4 symbols)
// do. A short final group is padded with '='.
type blockScheme struct {
	alpha        *alphabet
	bits         uint // bits per symbol
	groupBytes   int
	groupSymbols int
	// padBytes maps a legal pad count in the final group to the number of
	// bytes that group decodes to.
	padBytes map[int]int
}

func newBlockScheme(alpha *alphabet, bits uint) *blockScheme {
	s := &blockScheme{alpha: alpha, bits: bits}
	groupBits := lcm(8, int(bits))
	s.groupBytes = groupBits / 8
	s.groupSymbols = groupBits / int(bits)
	s.padBytes = make(map[int]int, s.groupBytes)
	for n := 1; n <= s.groupBytes; n++ {
		s.padBytes[s.groupSymbols-s.symbolsFor(n)] = n
	}
	return s
}

// symbolsFor returns the number of data symbols needed for n input bytes.
func (s *blockScheme) symbolsFor(n int) int {
	return (n*8 + int(s.bits) - 1) / int(s.bits)
}

func (s *blockScheme) groupBits() uint {
	return uint(s.groupSymbols) * s.bits
}

func (s *blockScheme) encode(src []byte) []byte {
	if src == nil {
		return nil
	}
	groups := (len(src) + s.groupBytes - 1) / s.groupBytes
	dst := make([]byte, groups*s.groupSymbols)
	mask := uint64(1)<<s.bits - 1
	di := 0
	for si := 0; si < len(src); si += s.groupBytes {
		n := len(src) - si
		if n > s.groupBytes {
			n = s.groupBytes
		}
		var v uint64
		for j := 0; j < n; j++ {
			v |= uint64(src[si+j]) << (s.groupBits() - 8*uint(j+1))
		}
		symbols := s.symbolsFor(n)
		for j := 0; j < s.groupSymbols; j++ {
			if j < symbols {
				dst[di+j] = s.alpha.encode[(v>>(s.groupBits()-s.bits*uint(j+1)))&mask]
			} else {
				dst[di+j] = pad
			}
		}
		di += s.groupSymbols
	}
	return dst
}

func (s *blockScheme) decode(src []byte) ([]byte, error) {
	if src == nil {
		return nil, nil
	}
	buf := stripWhitespace(src)
	if len(buf)%s.groupSymbols != 0 {
		return nil, corrupt(len(buf), "input length is not a multiple of the group size")
	}
	dst := make([]byte, 0, len(buf)/s.groupSymbols*s.groupBytes)
	for off := 0; off < len(buf); off += s.groupSymbols {
		group := buf[off : off+s.groupSymbols]

		pads := 0
		for pads < len(group) && group[len(group)-1-pads] == pad {
			pads++
		}
		n, ok := s.padBytes[pads]
		if pads == 0 {
			n, ok = s.groupBytes, true
		}
		if !ok {
			return nil, corrupt(off+len(group)-pads, "illegal padding")
		}
		if pads > 0 && off+len(group) != len(buf) {
			return nil, corrupt(off+len(group)-pads, "padding before the final group")
		}

		var v uint64
		data := len(group) - pads
		for j := 0; j < data; j++ {
			d := s.alpha.decode[group[j]]
			if d == invalid {
				return nil, corrupt(off+j, "illegal symbol")
			}
			v = v<<s.bits | uint64(d)
		}
		v <<= s.bits * uint(pads)

		rest := s.groupBits() - 8*uint(n)
		if v&(uint64(1)<<rest-1) != 0 {
			return nil, corrupt(off+data-1, "non-zero trailing bits")
		}
		for j := 0; j < n; j++ {
			dst = append(dst, byte(v>>(s.groupBits()-8*uint(j+1))))
		}
	}
	return dst, nil
}

func lcm(a, b int) int {
	x, y := a, b
	for y != 0 {
		x, y = y, x%y
	}
	return a / x * b
}

var (
	base32Scheme    = newBlockScheme(base32Alphabet, 5)
	base32HexScheme = newBlockScheme(base32HexAlphabet, 5)
	base64Scheme    = newBlockScheme(base64Alphabet, 6)
	base64URLScheme = newBlockScheme(base64URLAlphabet, 6)
)

// EncodeBase32 encodes src with the RFC 4648 section 6 alphabet.
func EncodeBase32(src []byte) ([]byte, error) {
	return base32Scheme.encode(src), nil
}

// DecodeBase32 decodes RFC 4648 section 6 text. Whitespace is ignored and
// only upper-case symbols are accepted.
func DecodeBase32(src []byte) ([]byte, error) {
	return base32Scheme.decode(src)
}

// EncodeBase32Hex encodes src with the RFC 4648 section 7 extended hex
// alphabet, which preserves the sort order of the input.
func EncodeBase32Hex(src []byte) ([]byte, error) {
	return base32HexScheme.encode(src), nil
}

func DecodeBase32Hex(src []byte) ([]byte, error) {
	return base32HexScheme.decode(src)
}

// EncodeBase64 encodes src with the RFC 4648 section 4 alphabet.
func EncodeBase64(src []byte) ([]byte, error) {
	return base64Scheme.encode(src), nil
}

func DecodeBase64(src []byte) ([]byte, error) {
	return base64Scheme.decode(src)
}

// EncodeBase64URL encodes src with the URL and filename safe alphabet of
// RFC 4648 section 5. Output is padded.
func EncodeBase64URL(src []byte) ([]byte, error) {
	return base64URLScheme.encode(src), nil
}

func DecodeBase64URL(src []byte) ([]byte, error) {
	return base64URLScheme.decode(src)
}
