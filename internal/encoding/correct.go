package encoding

// Report describes the outcome of a correction.
//
// A codeword hit by two or more bit errors yields either a zero syndrome
// or the wrong position. Both are reported as ordinary results: a
// Hamming code corrects exactly one error and cannot tell the cases apart.
type Report struct {
	// Codeword after the correction, in the caller's bit order.
	Codeword string
	Data     string
	// Syndrome is the 1-based logical position of the flipped bit, or 0.
	Syndrome int
	// FlippedIndex is the storage index that was flipped, -1 if none.
	FlippedIndex int
	Corrected    bool
}

// Check validates codeword, locates at most one flipped bit through the
// syndrome, flips it back and decodes the result.
func Check(codeword string, reversed bool) (*Report, error) {
	if err := Validate(codeword); err != nil {
		logger.WithError(err).Debug("rejected codeword")
		return nil, err
	}
	n := len(codeword)
	cv := newView(n, reversed)
	s := syndrome([]byte(codeword), cv)

	report := &Report{
		Codeword:     codeword,
		Syndrome:     s,
		FlippedIndex: -1,
	}
	switch {
	case s == 0:
	case s <= n:
		report.FlippedIndex = cv.index(s - 1)
		report.Codeword = Flip(codeword, report.FlippedIndex)
		report.Corrected = true
		logger.WithField("position", s).WithField("index", report.FlippedIndex).Trace("flipped bit")
	default:
		logger.WithField("position", s).WithField("length", n).Debug("syndrome outside codeword, no correction applied")
	}
	report.Data = Decode(report.Codeword, reversed)
	return report, nil
}

// Correct returns the data bits of codeword after fixing at most one
// flipped bit. Input other than a non-empty binary string is rejected
// with ErrInvalidInput.
func Correct(codeword string, reversed bool) (string, error) {
	report, err := Check(codeword, reversed)
	if err != nil {
		return "", err
	}
	return report.Data, nil
}

func Syndrome(codeword string, reversed bool) (int, error) {
	if err := Validate(codeword); err != nil {
		return 0, err
	}
	return syndrome([]byte(codeword), newView(len(codeword), reversed)), nil
}

// syndrome sums the positions of all failing parity checks.
func syndrome(word []byte, v view) int {
	pos := 0
	for _, idx := range (InputSizing{}).ParityIndexes(v.n) {
		p := idx + 1
		if coveredOnes(word, v, p, true)%2 != 0 {
			pos += p
		}
	}
	return pos
}
