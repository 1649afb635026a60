package attr

import (
	"strings"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/pkg/errors"
)

// catalogue maps preset names to changes, ordered by name so listings
// are deterministic. Absolute presets are stored as changes with a
// full mask; applying one replaces the whole word.
var catalogue = redblacktree.NewWithStringComparator()

func put(name string, c Change) {
	catalogue.Put(name, c)
}

func init() {
	colors := []struct {
		name string
		bits Word
	}{
		{"black", 0},
		{"blue", FgBlue},
		{"green", FgGreen},
		{"aqua", FgBlue | FgGreen},
		{"red", FgRed},
		{"purple", FgRed | FgBlue},
		{"yellow", FgRed | FgGreen},
		{"white", FgRed | FgGreen | FgBlue},
		{"grey", FgIntensity},
		{"light-blue", FgIntensity | FgBlue},
		{"light-green", FgIntensity | FgGreen},
		{"light-aqua", FgIntensity | FgBlue | FgGreen},
		{"light-red", FgIntensity | FgRed},
		{"light-purple", FgIntensity | FgRed | FgBlue},
		{"light-yellow", FgIntensity | FgRed | FgGreen},
		{"bright-white", FgIntensity | FgRed | FgGreen | FgBlue},
	}
	for _, c := range colors {
		put("text:"+c.name, Change{c.bits, FgMask})
		// Background bits sit four positions above the foreground bits
		put("background:"+c.name, Change{c.bits << 4, BgMask})
	}

	bars := []struct {
		name string
		bits Word
	}{
		{"top", GridTop},
		{"bottom", Underscore},
		{"left", GridLeft},
		{"right", GridRight},
		{"all", BarMask},
	}
	for _, b := range bars {
		put("bar:"+b.name, Change{b.bits, b.bits})
		put("bar:"+b.name+"-off", Change{0, b.bits})
	}
	put("underline", Underline)
	put("underline-off", UnderlineOff)

	put("invert:on", InvertOn)
	put("invert:off", InvertOff)

	put("default", Change{Default, AllMask})
	put("link", Change{Link, AllMask})
	put("active-link", Change{ActiveLink, AllMask})
}

// Lookup returns the preset registered under the given name.
func Lookup(name string) (Change, bool) {
	v, ok := catalogue.Get(name)
	if !ok {
		return Change{}, false
	}
	return v.(Change), true
}

// Names returns every registered preset name in ascending order.
func Names() []string {
	keys := catalogue.Keys()
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, k.(string))
	}
	return names
}

// ParseChange parses a comma-separated list of preset names, e.g.
// "text:blue,background:white,bar:bottom", into a single merged
// change.
func ParseChange(spec string) (Change, error) {
	var merged Change
	for _, name := range strings.Split(spec, ",") {
		name = strings.TrimSpace(strings.ToLower(name))
		if name == "" {
			continue
		}
		c, ok := Lookup(name)
		if !ok {
			return Change{}, errors.Errorf("unknown style: %s", name)
		}
		merged = merged.Merge(c)
	}
	return merged, nil
}

// ParseWord parses a comma-separated list of preset names into an
// absolute state: the union of the requested values, with every field
// not named left at its zero default.
func ParseWord(spec string) (Word, error) {
	c, err := ParseChange(spec)
	if err != nil {
		return 0, err
	}
	return c.Value, nil
}
