package codec

// CheckName reports whether name obeys the codec name grammar: a non-empty
// string over A-Z, a-z, 0-9, '-', '.', ':' and '_'.
func CheckName(name string) error {
	if name == "" {
		return &IllegalNameError{Name: name, Position: -1}
	}
	for i := 0; i < len(name); i++ {
		if !isNameChar(name[i]) {
			return &IllegalNameError{Name: name, Position: i}
		}
	}
	return nil
}

func isNameChar(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '-', c == '.', c == ':', c == '_':
		return true
	}
	return false
}
