package plates

// DefaultAlphabet is the pattern alphabet used by full-coverage builds.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

// Generate enumerates every pattern of the given length over the alphabet,
// in lexicographic order. Length 3 over the default alphabet yields the full
// 26^3 = 17576 plate space.
func Generate(alphabet string, length int) []string {
	if length <= 0 || len(alphabet) == 0 {
		return nil
	}
	total := 1
	for i := 0; i < length; i++ {
		total *= len(alphabet)
	}
	out := make([]string, 0, total)
	buf := make([]byte, length)
	var rec func(pos int)
	rec = func(pos int) {
		if pos == length {
			out = append(out, string(buf))
			return
		}
		for i := 0; i < len(alphabet); i++ {
			buf[pos] = alphabet[i]
			rec(pos + 1)
		}
	}
	rec(0)
	return out
}
