package attr

// Word is a complete console attribute state packed into a single bit
// word: foreground color, background color, and glyph decorations.
// Every bit position has a defined value; there is no notion of an
// "unset" field. The layout matches the Windows console attribute
// register so the Windows device applies it verbatim.
type Word uint16

// Foreground and background color bits. Intensity selects the bright
// variant of the base color.
const (
	FgBlue Word = 1 << iota
	FgGreen
	FgRed
	FgIntensity
	BgBlue
	BgGreen
	BgRed
	BgIntensity
)

// Decoration bits.
const (
	GridTop    Word = 0x0400 // horizontal bar above each glyph
	GridLeft   Word = 0x0800 // vertical bar left of each glyph
	GridRight  Word = 0x1000 // vertical bar right of each glyph
	Reverse    Word = 0x4000 // swap foreground and background
	Underscore Word = 0x8000 // horizontal bar below each glyph
)

// Category masks.
const (
	FgMask  = FgBlue | FgGreen | FgRed | FgIntensity
	BgMask  = BgBlue | BgGreen | BgRed | BgIntensity
	BarMask = GridTop | GridLeft | GridRight | Underscore
	AllMask = FgMask | BgMask | BarMask | Reverse
)

// Union combines two absolute states by taking the union of their
// bits. It is pure, associative, and commutative.
func (w Word) Union(o Word) Word {
	return w | o
}

// Change is a partial update to an attribute word: the bits named in
// Mask are set to the corresponding bits of Value, every other bit is
// left untouched. Value bits outside Mask carry no meaning and are
// ignored when the change is applied.
type Change struct {
	Value Word
	Mask  Word
}

// Merge combines two partial updates into a single change touching the
// union of their masks. Applying the merged change is equivalent to
// applying the two changes in sequence when their masks are disjoint.
// Where the masks overlap, the requested bit values are OR-ed, which
// differs from sequential application (last write wins); none of the
// shipped presets overlap within a category.
func (c Change) Merge(o Change) Change {
	return Change{c.Value | o.Value, c.Mask | o.Mask}
}

// ApplyTo returns w with the bits named in the mask replaced by the
// requested values. Bits outside the mask are preserved bit for bit.
func (c Change) ApplyTo(w Word) Word {
	return (w &^ c.Mask) | (c.Value & c.Mask)
}
