package rewards

import "strings"

// Color names a client text property
type Color string

const (
	ColorNone      Color = ""
	ColorGreen     Color = "green"
	ColorYellow    Color = "yellow"
	ColorMagenta   Color = "magenta"
	ColorCyan      Color = "cyan"
	ColorPlum      Color = "plum"
	ColorSalmon    Color = "salmon"
	ColorSlateBlue Color = "slateblue"
)

// Client text-property markup bytes
const (
	markupPush = "\x01"
	markupPop  = "\x02"
)

// Part is a run of text in one colour
type Part struct {
	Text  string `json:"text"`
	Color Color  `json:"color,omitempty"`
}

// Icon is the image shown beside a reward popup
type Icon struct {
	Path  string  `json:"path"`
	Scale float64 `json:"scale"`
}

// DefaultIcon is the archipelago logo
var DefaultIcon = Icon{Path: "phase_14/maps/ap_icon.png", Scale: .08}

// Text is a rendered reward description
type Text struct {
	Parts []Part `json:"parts"`
	Icon  Icon   `json:"icon"`
}

func text(parts ...Part) Text {
	return Text{Parts: parts, Icon: DefaultIcon}
}

func plain(s string) Part {
	return Part{Text: s}
}

func colored(s string, c Color) Part {
	return Part{Text: s, Color: c}
}

// WithFooter appends the "From:" line naming who sent the item
func (t Text) WithFooter(origin string, isLocal bool) Text {
	name, color := origin, ColorYellow
	if isLocal {
		name, color = "You", ColorMagenta
	}
	parts := make([]Part, 0, len(t.Parts)+2)
	parts = append(parts, t.Parts...)
	parts = append(parts, plain("\n\nFrom: "), colored(name, color))
	return Text{Parts: parts, Icon: t.Icon}
}

// Markup renders the text with client colour markup
func (t Text) Markup() string {
	var b strings.Builder
	for _, p := range t.Parts {
		if p.Color == ColorNone {
			b.WriteString(p.Text)
			continue
		}
		b.WriteString(markupPush)
		b.WriteString(string(p.Color))
		b.WriteString(markupPush)
		b.WriteString(p.Text)
		b.WriteString(markupPop)
	}
	return b.String()
}

// Plain renders the text without colour
func (t Text) Plain() string {
	var b strings.Builder
	for _, p := range t.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}
