package rope

// Hash computes h = 0; for each code unit c in order: h = 31*h + c,
// wrapping modulo 2^32 (spec §6), and memoizes the result on first call.
// Two Texts that compare Equal always hash equal, since the formula and
// the underlying code units it walks are identical for equal content.
func (t Text) Hash() uint32 {
	if t.extra != nil {
		if p := t.extra.hashVal.Load(); p != nil {
			return *p
		}
	}

	var h uint32
	n := t.Length()
	for i := 0; i < n; i++ {
		c, _ := t.CharAt(i)
		h = 31*h + uint32(c)
	}

	if t.extra != nil {
		t.extra.hashVal.CompareAndSwap(nil, &h)
	}
	return h
}
