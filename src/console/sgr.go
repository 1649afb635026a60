package console

import (
	"strconv"
	"strings"

	"github.com/tintty/tintty/src/attr"
)

// ansiIndex folds three color bits into the 0-7 index ANSI uses, where
// red is the low bit. The attribute word keeps blue in the low bit.
func ansiIndex(w attr.Word, blue attr.Word, green attr.Word, red attr.Word) int {
	i := 0
	if w&red != 0 {
		i |= 1
	}
	if w&green != 0 {
		i |= 2
	}
	if w&blue != 0 {
		i |= 4
	}
	return i
}

// sgrCodes translates an absolute attribute word into SGR codes. The
// word replaces the whole state, so the sequence starts with a full
// reset and always names both colors. Intensity selects the bright
// color range. Left and right grid bars have no SGR counterpart and
// are dropped; the top bar maps to overline.
func sgrCodes(w attr.Word) []string {
	codes := []string{"0"}
	fg := ansiIndex(w, attr.FgBlue, attr.FgGreen, attr.FgRed)
	if w&attr.FgIntensity != 0 {
		codes = append(codes, strconv.Itoa(90+fg))
	} else {
		codes = append(codes, strconv.Itoa(30+fg))
	}
	bg := ansiIndex(w, attr.BgBlue, attr.BgGreen, attr.BgRed)
	if w&attr.BgIntensity != 0 {
		codes = append(codes, strconv.Itoa(100+bg))
	} else {
		codes = append(codes, strconv.Itoa(40+bg))
	}
	if w&attr.Underscore != 0 {
		codes = append(codes, "4")
	}
	if w&attr.Reverse != 0 {
		codes = append(codes, "7")
	}
	if w&attr.GridTop != 0 {
		codes = append(codes, "53")
	}
	return codes
}

func sgr(w attr.Word) string {
	return "\x1b[" + strings.Join(sgrCodes(w), ";") + "m"
}
