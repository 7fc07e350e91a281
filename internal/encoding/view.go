package encoding

// view maps a logical index (0 is the lowest codeword position) onto the
// storage index of a string of length n. A reversed view stores the
// highest logical position first.
type view struct {
	n        int
	reversed bool
}

func newView(n int, reversed bool) view {
	return view{n: n, reversed: reversed}
}

func (v view) index(logical int) int {
	if v.reversed {
		return v.n - 1 - logical
	}
	return logical
}
