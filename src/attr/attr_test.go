package attr

import "testing"

var sampleWords = []Word{
	0,
	Default,
	TextSetBlue.Union(BackgroundSetWhite),
	AllMask,
	FgIntensity | BgRed | Underscore,
}

func TestMergeDisjointEqualsSequential(t *testing.T) {
	pairs := []struct{ a, b Change }{
		{TextBlue, BackgroundWhite},
		{TextRed, BarBottom},
		{InvertOn, TextGreen},
		{BarAllOff, BackgroundLightAqua},
		{TextBrightWhite, InvertOff},
	}
	for _, pair := range pairs {
		if pair.a.Mask&pair.b.Mask != 0 {
			t.Fatalf("masks overlap: %v %v", pair.a, pair.b)
		}
		for _, w := range sampleWords {
			sequential := pair.b.ApplyTo(pair.a.ApplyTo(w))
			merged := pair.a.Merge(pair.b).ApplyTo(w)
			if sequential != merged {
				t.Errorf("word %04x: sequential %04x != merged %04x", w, sequential, merged)
			}
			flipped := pair.b.Merge(pair.a).ApplyTo(w)
			if flipped != merged {
				t.Errorf("word %04x: merge not commutative", w)
			}
		}
	}
}

func TestMergeOverlapORsValues(t *testing.T) {
	// Overlapping masks OR the requested bits instead of picking a side
	m := TextRed.Merge(TextBlue)
	if m.ApplyTo(0) != TextPurple.Value {
		t.Errorf("expected %04x, got %04x", TextPurple.Value, m.ApplyTo(0))
	}
}

func TestApplyIgnoresValueOutsideMask(t *testing.T) {
	c := Change{Value: FgRed | Underscore, Mask: FgMask}
	if got := c.ApplyTo(0); got != FgRed {
		t.Errorf("stray value bits leaked: %04x", got)
	}
}

func TestApplyIdempotent(t *testing.T) {
	for _, c := range []Change{TextBlue, BackgroundGrey, BarAll, InvertOn, BarAllOff} {
		for _, w := range sampleWords {
			once := c.ApplyTo(w)
			if twice := c.ApplyTo(once); twice != once {
				t.Errorf("change %v not idempotent on %04x", c, w)
			}
		}
	}
}

func TestForegroundChangeTouchesOnlyForeground(t *testing.T) {
	c := Change{FgRed, FgMask}
	if got := c.ApplyTo(0); got != FgRed {
		t.Errorf("expected %04x, got %04x", FgRed, got)
	}
	w := BgBlue | Underscore | GridLeft
	got := c.ApplyTo(w)
	if got&FgMask != FgRed {
		t.Errorf("foreground not set: %04x", got)
	}
	if got&^FgMask != w&^FgMask {
		t.Errorf("bits outside the mask changed: %04x", got)
	}
}

func TestComposedAbsoluteState(t *testing.T) {
	w := TextSetBlue.Union(BackgroundSetWhite).Union(BarSetBottom)
	want := FgBlue | BgRed | BgGreen | BgBlue | Underscore
	if w != want {
		t.Errorf("expected %04x, got %04x", want, w)
	}
	if w&(FgIntensity|BgIntensity|GridTop|GridLeft|GridRight|Reverse) != 0 {
		t.Errorf("unrequested bits set: %04x", w)
	}
}

func TestUnionAssociativeCommutative(t *testing.T) {
	a, b, c := TextSetBlue, BackgroundSetGrey, BarSetAll
	if a.Union(b) != b.Union(a) {
		t.Error("union not commutative")
	}
	if a.Union(b).Union(c) != a.Union(b.Union(c)) {
		t.Error("union not associative")
	}
}
