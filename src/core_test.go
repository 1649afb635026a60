package tintty

import (
	"bytes"
	"testing"

	"github.com/tintty/tintty/src/attr"
	"github.com/tintty/tintty/src/console"
)

func TestPrintTextRestoresState(t *testing.T) {
	dev := &console.Memory{Word: attr.Default}
	var buf bytes.Buffer
	w := console.NewWriter(&buf, dev)

	style := attr.TextRed
	opts := defaultOptions()
	opts.Style = &style
	opts.Text = []string{"a", "b"}

	if err := printText(w, opts); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "a b\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
	if dev.Word != attr.Default {
		t.Errorf("state not restored: %04x", dev.Word)
	}
}

func TestPrintTextSetReplacesEverything(t *testing.T) {
	dev := &console.Memory{Word: attr.Default}
	var buf bytes.Buffer
	w := console.NewWriter(&buf, dev)

	word := attr.Link
	style := attr.BackgroundGrey
	opts := defaultOptions()
	opts.Set = &word
	opts.Style = &style
	opts.Text = []string{"x"}

	if err := printText(w, opts); err != nil {
		t.Fatal(err)
	}
	if len(dev.History) < 1 {
		t.Fatal("no attributes applied")
	}
	applied := dev.History[0]
	if applied != attr.Link.Union(attr.BackgroundSetGrey) {
		t.Errorf("set and style did not compose: %04x", applied)
	}
	if dev.Word != attr.Default {
		t.Errorf("state not restored: %04x", dev.Word)
	}
}

func TestPrintTextPlain(t *testing.T) {
	dev := &console.Memory{}
	var buf bytes.Buffer
	w := console.NewWriter(&buf, dev)

	opts := defaultOptions()
	opts.Text = []string{"plain"}

	if err := printText(w, opts); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "plain\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
	if len(dev.History) != 0 {
		t.Error("attributes touched without a style")
	}
}

func TestShowcase(t *testing.T) {
	dev := &console.Memory{Word: attr.Default}
	var buf bytes.Buffer
	w := console.NewWriter(&buf, dev)

	if err := showcase(w); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Fatal("showcase produced no output")
	}
	// The sequence ends by applying the default preset
	if dev.Word != attr.Default {
		t.Errorf("showcase left state %04x", dev.Word)
	}
}
