package tintty

import (
	"testing"

	"github.com/tintty/tintty/src/attr"
)

func TestDefaultOptions(t *testing.T) {
	opts := defaultOptions()
	if !opts.Color {
		t.Error("color should be enabled by default")
	}
	if opts.Style != nil || opts.Set != nil || opts.List || opts.Version {
		t.Error("unexpected defaults")
	}
}

func TestParseStyleOption(t *testing.T) {
	opts := defaultOptions()
	parseOptions(opts, []string{"--style=text:blue,bar:bottom", "hello", "world"})
	if opts.Style == nil {
		t.Fatal("style not parsed")
	}
	if *opts.Style != attr.TextBlue.Merge(attr.BarBottom) {
		t.Errorf("unexpected style %v", *opts.Style)
	}
	if len(opts.Text) != 2 || opts.Text[0] != "hello" || opts.Text[1] != "world" {
		t.Errorf("unexpected text %v", opts.Text)
	}
}

func TestParseSetOption(t *testing.T) {
	opts := defaultOptions()
	parseOptions(opts, []string{"--set", "text:blue,underline"})
	if opts.Set == nil {
		t.Fatal("set not parsed")
	}
	if *opts.Set != attr.Link {
		t.Errorf("unexpected word %04x", *opts.Set)
	}
}

func TestParseFlags(t *testing.T) {
	opts := defaultOptions()
	parseOptions(opts, []string{"--list", "--no-color", "--version"})
	if !opts.List || opts.Color || !opts.Version {
		t.Errorf("unexpected options %+v", opts)
	}

	opts = defaultOptions()
	parseOptions(opts, []string{"--no-color", "--color"})
	if !opts.Color {
		t.Error("later flag should win")
	}
}

func TestParseDoubleDash(t *testing.T) {
	opts := defaultOptions()
	parseOptions(opts, []string{"--", "--style=text:red", "plain"})
	if opts.Style != nil {
		t.Error("arguments after -- must be treated as text")
	}
	if len(opts.Text) != 2 || opts.Text[0] != "--style=text:red" {
		t.Errorf("unexpected text %v", opts.Text)
	}
}
