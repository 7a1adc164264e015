package rope

import "github.com/cockroachdb/errors"

// ErrOutOfRange is the sole error kind the core ever raises (spec §7):
// an index or half-open range that does not lie within [0, length] for
// the receiving Text. Callers should test for it with errors.Is.
var ErrOutOfRange = errors.New("rope: out of range")

func outOfRangeIndex(i, length int) error {
	return errors.Wrapf(ErrOutOfRange, "index %d out of range [0, %d)", i, length)
}

func outOfRangeRange(s, e, length int) error {
	return errors.Wrapf(ErrOutOfRange, "range [%d, %d) out of range [0, %d]", s, e, length)
}
