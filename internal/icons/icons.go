package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the glyphs for the current style.
type Icons struct {
	Play     string
	Pause    string
	Prev     string
	Next     string
	Muted    string
	Unmuted  string
	Note     string
	Menu     string
	Expanded string
	Folded   string
	Check    string
}

var (
	nerdIcons = Icons{
		Play:     "\uf04b", // nf-fa-play
		Pause:    "\uf04c", // nf-fa-pause
		Prev:     "\uf048", // nf-fa-step_backward
		Next:     "\uf051", // nf-fa-step_forward
		Muted:    "\uf026", // nf-fa-volume_off
		Unmuted:  "\uf028", // nf-fa-volume_up
		Note:     "\uf001", // nf-fa-music
		Menu:     "\uf0c9", // nf-fa-bars
		Expanded: "\uf078", // nf-fa-chevron_down
		Folded:   "\uf054", // nf-fa-chevron_right
		Check:    "\uf00c", // nf-fa-check
	}

	unicodeIcons = Icons{
		Play:     "▶",
		Pause:    "⏸",
		Prev:     "⏮",
		Next:     "⏭",
		Muted:    "🔇",
		Unmuted:  "🔊",
		Note:     "♪",
		Menu:     "☰",
		Expanded: "▾",
		Folded:   "▸",
		Check:    "✓",
	}

	noneIcons = Icons{
		Play:     ">",
		Pause:    "||",
		Prev:     "|<",
		Next:     ">|",
		Muted:    "[mute]",
		Unmuted:  "[vol]",
		Note:     "#",
		Menu:     "=",
		Expanded: "-",
		Folded:   "+",
		Check:    "*",
	}

	// current holds the active icon set
	current = unicodeIcons
)

// Init selects the icon set. An empty style keeps the unicode default;
// unknown styles fall back to plain ASCII.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode, "":
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// Current returns the active set.
func Current() Icons {
	return current
}

func Play() string  { return current.Play }
func Pause() string { return current.Pause }
func Prev() string  { return current.Prev }
func Next() string  { return current.Next }
func Note() string  { return current.Note }
func Menu() string  { return current.Menu }
func Check() string { return current.Check }

// PlayPause returns the glyph of the control to show: pause while active.
func PlayPause(active bool) string {
	if active {
		return current.Pause
	}
	return current.Play
}

// Volume returns the mute button glyph.
func Volume(muted bool) string {
	if muted {
		return current.Muted
	}
	return current.Unmuted
}

// Fold returns the disclosure glyph for an accordion item.
func Fold(open bool) string {
	if open {
		return current.Expanded
	}
	return current.Folded
}

// Label prefixes text with an icon, separated by a space.
func Label(icon, text string) string {
	if icon == "" {
		return text
	}
	if text == "" {
		return icon
	}
	return icon + " " + text
}
