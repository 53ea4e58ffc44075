package fasttrie

// ToInt canonicalizes a caller-supplied value into a uint64 bounded by
// the universe [0, 2^width). It accepts any Go signed or unsigned
// integer type (standing in for "non-negative integer", since Go has
// no single arbitrary-precision integer type the way the original
// Python source does) or a []byte of length at most ceil(width/8),
// interpreted big-endian and left-padded with zero.
//
// Canonicalization is the boundary: every entry point into the set
// runs its argument through ToInt before touching any trie state, so a
// rejected value never leaves a partial mutation behind.
func ToInt(value any, width int) (uint64, error) {
	switch v := value.(type) {
	case int:
		return intToUint(int64(v), width)
	case int8:
		return intToUint(int64(v), width)
	case int16:
		return intToUint(int64(v), width)
	case int32:
		return intToUint(int64(v), width)
	case int64:
		return intToUint(v, width)
	case uint:
		return boundUint(uint64(v), width)
	case uint8:
		return boundUint(uint64(v), width)
	case uint16:
		return boundUint(uint64(v), width)
	case uint32:
		return boundUint(uint64(v), width)
	case uint64:
		return boundUint(v, width)
	case []byte:
		return bytesToUint(v, width)
	default:
		return 0, newArgumentError(ErrInvalidInput, "value must be an integer type or []byte")
	}
}

func intToUint(v int64, width int) (uint64, error) {
	if v < 0 {
		return 0, newArgumentError(ErrOutOfRange, "value must be non-negative")
	}
	return boundUint(uint64(v), width)
}

func boundUint(v uint64, width int) (uint64, error) {
	if width < 64 && v >= uint64(1)<<uint(width) {
		return 0, newArgumentError(ErrOutOfRange, "value exceeds universe width")
	}
	return v, nil
}

func bytesToUint(b []byte, width int) (uint64, error) {
	maxBytes := (width + 7) / 8
	if len(b) > maxBytes {
		return 0, newArgumentError(ErrOverLong, "byte slice longer than universe width allows")
	}
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return boundUint(v, width)
}
