package rope

import "unicode/utf16"

// Text is the public, immutable value type (spec §4.6). The zero value
// is the empty Text. Every operation below is a pure function: it
// returns a new Text (or, where documented, the receiver/argument
// itself by identity) and never mutates any Text or node that already
// existed. Any Text may therefore be shared freely across goroutines —
// it is a valid O(1) snapshot of whatever it represents.
type Text struct {
	root  node
	extra *textExtra
}

// newText wraps root in a fresh Text with its own locator/hash cache.
// Call this only when the content is genuinely new; operations that
// preserve identity (see Concat, SubText and Delete) must return an existing Text
// value instead, so its cache carries over.
func newText(root node) Text {
	return Text{root: root, extra: &textExtra{}}
}

// FromSequence builds a Text from a sequence of code units. The
// sequence is copied, so the caller's slice may be reused afterwards.
// An empty sequence yields the zero-value Text.
func FromSequence(units []CodeUnit) Text {
	if len(units) == 0 {
		return Text{}
	}
	if fitsByteLeaf(units) {
		packed := make([]uint8, len(units))
		for i, u := range units {
			packed[i] = uint8(u)
		}
		return newText(newByteLeaf(packed))
	}
	buf := make([]CodeUnit, len(units))
	copy(buf, units)
	return newText(newLeaf(buf))
}

// FromString builds a Text from a Go string, decomposing it into UTF-16
// code units the way the reference implementation's host language does.
func FromString(s string) Text {
	return FromSequence(utf16.Encode([]rune(s)))
}

// Length returns the total code-unit count; O(1).
func (t Text) Length() int {
	if t.root == nil {
		return 0
	}
	return t.root.length()
}

// CharAt returns the i-th code unit. It reports ErrOutOfRange if i is
// not in [0, Length()).
func (t Text) CharAt(i int) (CodeUnit, error) {
	length := t.Length()
	if i < 0 || i >= length {
		return 0, outOfRangeIndex(i, length)
	}
	lf, base := t.findLeaf(i)
	return lf.charAt(i - base), nil
}

// ensureChunkedText applies ensureChunked to t's root, preserving t's
// identity (and so its cache) whenever the root doesn't need chunking.
func ensureChunkedText(t Text) Text {
	newRoot := ensureChunked(t.root)
	if newRoot == t.root {
		return t
	}
	return newText(newRoot)
}

// Concat returns a Text equal to t ∥ other. If either side is empty,
// the other side is returned unchanged by identity; otherwise both
// sides are chunked if needed and their roots combined with concat.
func (t Text) Concat(other Text) Text {
	if t.Length() == 0 {
		return other
	}
	if other.Length() == 0 {
		return t
	}
	a := ensureChunkedText(t)
	b := ensureChunkedText(other)
	return newText(concatNodes(a.root, b.root))
}

// SubText returns a Text covering [s, e). It returns t by identity when
// [s, e) is the full range, and the empty Text when s == e. Reports
// ErrOutOfRange when 0 <= s <= e <= Length() does not hold.
func (t Text) SubText(s, e int) (Text, error) {
	length := t.Length()
	if s < 0 || e < s || e > length {
		return Text{}, outOfRangeRange(s, e, length)
	}
	if s == 0 && e == length {
		return t, nil
	}
	if s == e {
		return Text{}, nil
	}
	return newText(t.root.subNode(s, e)), nil
}

// Insert returns sub_text(0, index) ∥ other ∥ sub_text(index, length).
// Reports ErrOutOfRange when 0 <= index <= Length() does not hold.
func (t Text) Insert(index int, other Text) (Text, error) {
	length := t.Length()
	if index < 0 || index > length {
		return Text{}, outOfRangeIndex(index, length+1)
	}
	left, err := t.SubText(0, index)
	if err != nil {
		return Text{}, err
	}
	right, err := t.SubText(index, length)
	if err != nil {
		return Text{}, err
	}
	return left.Concat(other).Concat(right), nil
}

// Delete returns sub_text(0, s) ∥ sub_text(e, length), returning t
// unchanged by identity when s == e. Reports ErrOutOfRange when
// 0 <= s <= e <= Length() does not hold.
func (t Text) Delete(s, e int) (Text, error) {
	length := t.Length()
	if s < 0 || e < s || e > length {
		return Text{}, outOfRangeRange(s, e, length)
	}
	if s == e {
		return t, nil
	}
	chunked := ensureChunkedText(t)
	left, err := chunked.SubText(0, s)
	if err != nil {
		return Text{}, err
	}
	right, err := chunked.SubText(e, length)
	if err != nil {
		return Text{}, err
	}
	return left.Concat(right), nil
}

// String materializes the Text's contents as a Go string, transcoding
// its UTF-16 code units via the standard library.
func (t Text) String() string {
	n := t.Length()
	if n == 0 {
		return ""
	}
	units := make([]CodeUnit, n)
	t.root.copyTo(0, units, 0, n)
	return string(utf16.Decode(units))
}

// Equal reports whether t and other have the same length and identical
// code units at every index. Structural identity implies equality but
// the converse does not hold.
func (t Text) Equal(other Text) bool {
	if t.root == other.root {
		return true
	}
	n := t.Length()
	if n != other.Length() {
		return false
	}
	for i := 0; i < n; i++ {
		a, _ := t.CharAt(i)
		b, _ := other.CharAt(i)
		if a != b {
			return false
		}
	}
	return true
}
