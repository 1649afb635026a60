package tintty

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/tintty/tintty/src/attr"
	"github.com/tintty/tintty/src/console"
	"github.com/tintty/tintty/src/util"
)

// Run styles text on standard output according to the given options
// and returns an exit code.
func Run(opts *Options, version string, revision string) int {
	if opts.Version {
		if len(revision) > 0 {
			fmt.Printf("%s (%s)\n", version, revision)
		} else {
			fmt.Println(version)
		}
		return exitOk
	}

	out := os.Stdout
	writer := console.NewWriter(out, openDevice(out, opts.Color))

	if opts.List {
		listPresets(writer)
		return exitOk
	}

	var err error
	if len(opts.Text) > 0 {
		err = printText(writer, opts)
	} else {
		err = showcase(writer)
	}
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		return exitError
	}
	return exitOk
}

// openDevice binds the console behind f. When color is disabled or no
// console is attached it falls back to an in-process device so the
// text still flows, unstyled.
func openDevice(f *os.File, color bool) console.Device {
	if color {
		if dev, err := console.NewDevice(f); err == nil {
			return dev
		}
	}
	return &console.Memory{Word: attr.Default}
}

// printText prints the positional arguments under the requested style
// and restores the previous attribute state afterwards.
func printText(w *console.Writer, opts *Options) error {
	var change attr.Change
	if opts.Set != nil {
		change = attr.Change{Value: *opts.Set, Mask: attr.AllMask}
	}
	if opts.Style != nil {
		change = change.Merge(*opts.Style)
	}
	text := strings.Join(opts.Text, " ")
	if change.Mask == 0 {
		return w.Print(text, "\n")
	}
	err := w.PrintScoped(change, text)
	if perr := w.Print("\n"); err == nil {
		err = perr
	}
	return err
}

// listPresets prints the catalogue, one preset per line with a styled
// sample.
func listPresets(w *console.Writer) {
	names := attr.Names()
	nameWidth := 0
	for _, name := range names {
		nameWidth = util.Max(nameWidth, util.StringWidth(name))
	}
	width := util.Constrain(util.TerminalWidth(os.Stdout, defaultListWidth),
		nameWidth+len(sampleText)+2, defaultListWidth)
	w.Print(strings.Repeat("-", width), "\n")
	for _, name := range names {
		change, _ := attr.Lookup(name)
		w.Print(runewidth.FillRight(name, nameWidth+2), console.Styled(change, sampleText), "\n")
	}
}

// showcase reproduces the demonstration sequence: each line exercises
// one preset family.
func showcase(w *console.Writer) error {
	var first error
	keep := func(err error) {
		if first == nil {
			first = err
		}
	}

	keep(w.Print(attr.TextRed, "this text is red", "\n"))
	keep(w.Print("This text is still red. ", attr.TextBlue, "this text is blue", "\n"))
	keep(w.Print(attr.TextYellow, "This text is yellow", "\n"))

	keep(w.Print(attr.BackgroundLightBlue, "This background is light blue", "\n"))
	keep(w.Print(attr.BackgroundGrey, "This background is grey", "\n"))

	keep(w.Print(attr.TextRed.Merge(attr.TextBlue), "This text has a composed colour", "\n"))

	keep(w.Print(attr.BackgroundBlack, "This text has a black background again", "\n"))

	keep(w.Print(console.Inverted("This text has foreground and background inverted"), "\n"))

	keep(w.Print(attr.TextWhite, "This text is white again", "\n"))

	keep(w.Print(attr.BarBottom, "This text is underscored", attr.BarBottomOff, "\n"))
	keep(w.Print(console.Underline("There is also an Underline span that does the same"), "\n"))
	keep(w.Print(attr.BarTop, "This text is overscored", attr.BarTopOff, "\n"))
	keep(w.Print(attr.BarLeft, "This text has left bars", attr.BarLeftOff, "\n"))
	keep(w.Print(attr.BarRight, "This text has right bars", attr.BarRightOff, "\n"))
	keep(w.Print(attr.BarAll, "This text has bars all over", attr.BarAllOff, "\n"))

	myPreset := attr.TextBlue.Merge(attr.BackgroundWhite).Merge(attr.Underline)
	keep(w.Print(myPreset, "This is a text with composed format", attr.Default, "\n"))

	keep(w.Print(attr.Link, "This could be a link to a website", attr.Default, "\n"))
	keep(w.Print(attr.ActiveLink, "This could be an activated link to a website", attr.Default, "\n"))

	return first
}
