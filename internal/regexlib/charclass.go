package regexlib

// byteRange returns lo..=hi inclusive as a byte slice.
func byteRange(lo, hi byte) []byte {
	out := make([]byte, 0, int(hi)-int(lo)+1)
	for c := int(lo); c <= int(hi); c++ {
		out = append(out, byte(c))
	}
	return out
}

func concatBytes(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// complementBytes returns every byte in 0..=255 not present in set.
func complementBytes(set []byte) []byte {
	var in [256]bool
	for _, c := range set {
		in[c] = true
	}
	out := make([]byte, 0, 256-len(set))
	for c := 0; c < 256; c++ {
		if !in[byte(c)] {
			out = append(out, byte(c))
		}
	}
	return out
}

var (
	wordBytes  = concatBytes(byteRange('A', 'Z'), byteRange('a', 'z'), byteRange('0', '9'), []byte{'_'})
	digitBytes = byteRange('0', '9')
	spaceBytes = []byte{'\t', '\n', '\f', '\r', ' '}
)
