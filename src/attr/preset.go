package attr

// Masked foreground changes. Only the foreground color bits are
// touched; background and decorations keep their previous state.
var (
	TextBlack       = Change{0, FgMask}
	TextBlue        = Change{FgBlue, FgMask}
	TextGreen       = Change{FgGreen, FgMask}
	TextAqua        = Change{FgBlue | FgGreen, FgMask}
	TextRed         = Change{FgRed, FgMask}
	TextPurple      = Change{FgRed | FgBlue, FgMask}
	TextYellow      = Change{FgRed | FgGreen, FgMask}
	TextWhite       = Change{FgRed | FgGreen | FgBlue, FgMask}
	TextGrey        = Change{FgIntensity, FgMask}
	TextLightBlue   = Change{FgIntensity | FgBlue, FgMask}
	TextLightGreen  = Change{FgIntensity | FgGreen, FgMask}
	TextLightAqua   = Change{FgIntensity | FgBlue | FgGreen, FgMask}
	TextLightRed    = Change{FgIntensity | FgRed, FgMask}
	TextLightPurple = Change{FgIntensity | FgRed | FgBlue, FgMask}
	TextLightYellow = Change{FgIntensity | FgRed | FgGreen, FgMask}
	TextBrightWhite = Change{FgIntensity | FgRed | FgGreen | FgBlue, FgMask}
)

// Absolute foreground states for the set idiom: fields not explicitly
// combined revert to their zero default (black background, all bars
// off). There is no TextSetBlack because black is the zero default.
var (
	TextSetBlue        = FgBlue
	TextSetGreen       = FgGreen
	TextSetAqua        = FgBlue | FgGreen
	TextSetRed         = FgRed
	TextSetPurple      = FgRed | FgBlue
	TextSetYellow      = FgRed | FgGreen
	TextSetWhite       = FgRed | FgGreen | FgBlue
	TextSetGrey        = FgIntensity
	TextSetLightBlue   = FgIntensity | FgBlue
	TextSetLightGreen  = FgIntensity | FgGreen
	TextSetLightAqua   = FgIntensity | FgBlue | FgGreen
	TextSetLightRed    = FgIntensity | FgRed
	TextSetLightPurple = FgIntensity | FgRed | FgBlue
	TextSetLightYellow = FgIntensity | FgRed | FgGreen
	TextSetBrightWhite = FgIntensity | FgRed | FgGreen | FgBlue
)

// Masked background changes.
var (
	BackgroundBlack       = Change{0, BgMask}
	BackgroundBlue        = Change{BgBlue, BgMask}
	BackgroundGreen       = Change{BgGreen, BgMask}
	BackgroundAqua        = Change{BgBlue | BgGreen, BgMask}
	BackgroundRed         = Change{BgRed, BgMask}
	BackgroundPurple      = Change{BgRed | BgBlue, BgMask}
	BackgroundYellow      = Change{BgRed | BgGreen, BgMask}
	BackgroundWhite       = Change{BgRed | BgGreen | BgBlue, BgMask}
	BackgroundGrey        = Change{BgIntensity, BgMask}
	BackgroundLightBlue   = Change{BgIntensity | BgBlue, BgMask}
	BackgroundLightGreen  = Change{BgIntensity | BgGreen, BgMask}
	BackgroundLightAqua   = Change{BgIntensity | BgBlue | BgGreen, BgMask}
	BackgroundLightRed    = Change{BgIntensity | BgRed, BgMask}
	BackgroundLightPurple = Change{BgIntensity | BgRed | BgBlue, BgMask}
	BackgroundLightYellow = Change{BgIntensity | BgRed | BgGreen, BgMask}
	BackgroundBrightWhite = Change{BgIntensity | BgRed | BgGreen | BgBlue, BgMask}
)

// Absolute background states.
var (
	BackgroundSetBlue        = BgBlue
	BackgroundSetGreen       = BgGreen
	BackgroundSetAqua        = BgBlue | BgGreen
	BackgroundSetRed         = BgRed
	BackgroundSetPurple      = BgRed | BgBlue
	BackgroundSetYellow      = BgRed | BgGreen
	BackgroundSetWhite       = BgRed | BgGreen | BgBlue
	BackgroundSetGrey        = BgIntensity
	BackgroundSetLightBlue   = BgIntensity | BgBlue
	BackgroundSetLightGreen  = BgIntensity | BgGreen
	BackgroundSetLightAqua   = BgIntensity | BgBlue | BgGreen
	BackgroundSetLightRed    = BgIntensity | BgRed
	BackgroundSetLightPurple = BgIntensity | BgRed | BgBlue
	BackgroundSetLightYellow = BgIntensity | BgRed | BgGreen
	BackgroundSetBrightWhite = BgIntensity | BgRed | BgGreen | BgBlue
)

// Masked bar changes. Each bar has an off counterpart clearing only
// that bar.
var (
	BarTop       = Change{GridTop, GridTop}
	BarTopOff    = Change{0, GridTop}
	BarBottom    = Change{Underscore, Underscore}
	BarBottomOff = Change{0, Underscore}
	BarLeft      = Change{GridLeft, GridLeft}
	BarLeftOff   = Change{0, GridLeft}
	BarRight     = Change{GridRight, GridRight}
	BarRightOff  = Change{0, GridRight}
	BarAll       = Change{BarMask, BarMask}
	BarAllOff    = Change{0, BarMask}
)

// Underline is an alias for the bottom bar.
var (
	Underline    = BarBottom
	UnderlineOff = BarBottomOff
)

// Absolute bar states.
var (
	BarSetTop    = GridTop
	BarSetBottom = Underscore
	BarSetLeft   = GridLeft
	BarSetRight  = GridRight
	BarSetAll    = BarMask

	UnderlineSet = BarSetBottom
)

// Reverse-video changes.
var (
	InvertOn  = Change{Reverse, Reverse}
	InvertOff = Change{0, Reverse}
)

// Derived absolute presets.
var (
	Default    = TextSetWhite
	Link       = TextSetBlue.Union(UnderlineSet)
	ActiveLink = TextSetPurple.Union(UnderlineSet)
)
