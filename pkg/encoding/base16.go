package encoding

// EncodeBase16 writes every byte as two upper-case hex digits.
func EncodeBase16(src []byte) ([]byte, error) {
	if src == nil {
		return nil, nil
	}
	dst := make([]byte, len(src)*2)
	for i, b := range src {
		dst[2*i] = upperHex.encode[b>>4]
		dst[2*i+1] = upperHex.encode[b&0x0F]
	}
	return dst, nil
}

// DecodeBase16 accepts hex digits of either case. Whitespace is not
// skipped.
func DecodeBase16(src []byte) ([]byte, error) {
	if src == nil {
		return nil, nil
	}
	if len(src)%2 != 0 {
		return nil, corrupt(len(src), "odd length hex string")
	}
	dst := make([]byte, len(src)/2)
	for i := 0; i < len(src); i += 2 {
		hi := anyHex.decode[src[i]]
		if hi == invalid {
			return nil, corrupt(i, "illegal hex digit")
		}
		lo := anyHex.decode[src[i+1]]
		if lo == invalid {
			return nil, corrupt(i+1, "illegal hex digit")
		}
		dst[i/2] = hi<<4 | lo
	}
	return dst, nil
}
