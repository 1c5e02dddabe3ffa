package render

import "strings"

// Kind selects how a span is styled on screen
type Kind int

const (
	Normal Kind = iota
	Highlight
	Cursor
	Error
	Muted
	Heading
)

// Span is a run of text drawn in one style
type Span struct {
	Text string
	Kind Kind
}

// Line is one row of spans
type Line []Span

// View is everything the screen draws for one frame
type View struct {
	Title      string
	Lines      []Line
	Status     string
	StatusKind Kind
	Footer     string
	Quit       bool
}

// Text returns a single normal span line
func Text(s string) Line {
	return Line{{Text: s}}
}

// Styled returns a single span line in the given kind
func Styled(kind Kind, s string) Line {
	return Line{{Text: s, Kind: kind}}
}

// String returns the line without styling
func (l Line) String() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

// String returns the plain-text form of the view, one line per row
func (v View) String() string {
	var b strings.Builder
	if v.Title != "" {
		b.WriteString(v.Title)
		b.WriteString("\n\n")
	}
	for _, l := range v.Lines {
		b.WriteString(l.String())
		b.WriteByte('\n')
	}
	if v.Status != "" {
		b.WriteByte('\n')
		b.WriteString(v.Status)
		b.WriteByte('\n')
	}
	if v.Footer != "" {
		b.WriteByte('\n')
		b.WriteString(v.Footer)
		b.WriteByte('\n')
	}
	return b.String()
}
