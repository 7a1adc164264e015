package rope

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf16"
)

// dumper renders a Text's tree shape for debugging and tests, in the
// same box-drawing style used elsewhere in this lineage for dumping
// immutable trees.
//
// For FromString("hello").Concat(FromString(strings.Repeat("1", 65))) it
// outputs:
//
//	─── composite (len=70)
//	    ├── composite (len=69)
//	    │  ├── byteLeaf (len=5) "hello"
//	    │  └── byteLeaf (len=64) "1111111111111111111111111111111111111111111111111111111111111111"
//	    └── byteLeaf (len=1) "1"
type dumper struct {
	buf         *bytes.Buffer
	nChildStack []int
}

// Dump returns a human-readable tree dump of t, intended for tests and
// manual inspection, not for parsing.
func (t Text) Dump() string {
	d := &dumper{buf: bytes.NewBufferString("")}
	if t.root == nil {
		d.buf.WriteString("─── <empty>\n")
		return d.buf.String()
	}
	d.dumpNode(t.root)
	return d.buf.String()
}

func (d *dumper) padding() (string, string) {
	depth := len(d.nChildStack)
	if depth == 0 {
		return "───", "   "
	}
	pad := "    " + strings.Repeat("│  ", depth-1)

	childrenLeft := d.nChildStack[len(d.nChildStack)-1]
	head := "├──"
	finalPad := "│  "
	if childrenLeft == 1 {
		head = "└──"
		finalPad = "   "
	}
	return pad + head, pad + finalPad
}

func (d *dumper) pushNChildren(n int) { d.nChildStack = append(d.nChildStack, n) }

func (d *dumper) decNChildren() {
	if len(d.nChildStack) > 0 {
		d.nChildStack[len(d.nChildStack)-1]--
	}
}

func (d *dumper) popNChildren() {
	if depth := len(d.nChildStack); depth > 0 {
		d.nChildStack = d.nChildStack[:depth-1]
	}
}

func (d *dumper) dumpNode(n node) {
	headerPad, _ := d.padding()

	switch v := n.(type) {
	case *leaf:
		fmt.Fprintf(d.buf, "%s leaf (len=%d) %q\n", headerPad, len(v.units), string(utf16.Decode(v.units)))
	case *byteLeaf:
		fmt.Fprintf(d.buf, "%s byteLeaf (len=%d) %q\n", headerPad, len(v.units), string(v.units))
	case *composite:
		fmt.Fprintf(d.buf, "%s composite (len=%d)\n", headerPad, v.count)
		d.pushNChildren(2)
		d.dumpNode(v.head)
		d.decNChildren()
		d.dumpNode(v.tail)
		d.decNChildren()
		d.popNChildren()
	}
}
