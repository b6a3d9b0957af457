package dsl

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	bannerLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "Color", Pattern: `#[0-9A-Fa-f]{6}`},
		{Name: "Int", Pattern: `[-+]?(?:0|[1-9][0-9]*)`},
		{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Punct", Pattern: `[{}]`},
	})

	fileParser = participle.MustBuild[File](
		participle.Lexer(bannerLexer),
		participle.Elide("Whitespace", "LineComment"),
	)
)

// File is the root of a banner description; it may hold several banners.
type File struct {
	Banners []*Banner `parser:"@@+"`
}

// Banner is one canvas and its ordered drawing statements.
type Banner struct {
	Pos        lexer.Position `parser:""`
	Name       string         `parser:"'banner' @Ident '{'"`
	Size       *Size          `parser:"@@?"`
	Background *string        `parser:"( 'background' @(Color | Ident) )?"`
	Output     StringLiteral  `parser:"'output' @String"`
	Statements []*Statement   `parser:"@@* '}'"`
}

type Size struct {
	Width  int `parser:"'size' @Int"`
	Height int `parser:"@Int"`
}

// Statement is a single drawing instruction.
type Statement struct {
	Pos    lexer.Position `parser:""`
	Circle *Circle        `parser:"  @@"`
	Rect   *Rect          `parser:"| @@"`
	Strip  *Strip         `parser:"| @@"`
	Text   *Text          `parser:"| @@"`
	QR     *QR            `parser:"| @@"`
}

// Kind returns the statement keyword.
func (s *Statement) Kind() string {
	switch {
	case s == nil:
		return "unknown"
	case s.Circle != nil:
		return "circle"
	case s.Rect != nil:
		return "rect"
	case s.Strip != nil:
		return "strip"
	case s.Text != nil:
		return "text"
	case s.QR != nil:
		return "qr"
	default:
		return "unknown"
	}
}

// Circle: circle <x> <y> radius <r> [fill <color>] [outline <color> [width <n>]]
type Circle struct {
	X       int      `parser:"'circle' @Int"`
	Y       int      `parser:"@Int"`
	Radius  int      `parser:"'radius' @Int"`
	Fill    *string  `parser:"( 'fill' @(Color | Ident) )?"`
	Outline *Outline `parser:"@@?"`
}

// Rect: rect <x0> <y0> <x1> <y1> [fill <color>] [outline <color> [width <n>]]
// Both corners are painted.
type Rect struct {
	X0      int      `parser:"'rect' @Int"`
	Y0      int      `parser:"@Int"`
	X1      int      `parser:"@Int"`
	Y1      int      `parser:"@Int"`
	Fill    *string  `parser:"( 'fill' @(Color | Ident) )?"`
	Outline *Outline `parser:"@@?"`
}

type Outline struct {
	Color string `parser:"'outline' @(Color | Ident)"`
	Width int    `parser:"( 'width' @Int )?"`
}

// Strip: strip (top|bottom) <height> fill <color>, a full-width band.
type Strip struct {
	Edge   string `parser:"'strip' @('top' | 'bottom')"`
	Height int    `parser:"@Int"`
	Fill   string `parser:"'fill' @(Color | Ident)"`
}

// Text: text [<id>] "<content>" <placement> size <pt> [bold] fill <color>
type Text struct {
	ID        string        `parser:"'text' @Ident?"`
	Content   StringLiteral `parser:"@String"`
	Placement Placement     `parser:"@@"`
	Size      int           `parser:"'size' @Int"`
	Bold      bool          `parser:"@'bold'?"`
	Fill      string        `parser:"'fill' @(Color | Ident)"`
}

// Placement is either "center <x> <y>" or "at <x> <vertical>".
type Placement struct {
	Center *Point  `parser:"  'center' @@"`
	At     *Origin `parser:"| 'at' @@"`
}

type Point struct {
	X int `parser:"@Int"`
	Y int `parser:"@Int"`
}

type Origin struct {
	X        int      `parser:"@Int"`
	Vertical Vertical `parser:"@@"`
}

// Vertical is "<y>", "below <id> <gap>" or "middle <offset>".
type Vertical struct {
	Below  *Below `parser:"  @@"`
	Middle *int   `parser:"| 'middle' @Int"`
	Y      *int   `parser:"| @Int"`
}

type Below struct {
	Ref string `parser:"'below' @Ident"`
	Gap int    `parser:"@Int"`
}

// QR: qr "<payload>" at <x> <y> size <px>
type QR struct {
	Payload StringLiteral `parser:"'qr' @String"`
	At      Point         `parser:"'at' @@"`
	Size    int           `parser:"'size' @Int"`
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse parses a banner description from an io.Reader. filename is used in
// error positions.
func Parse(filename string, r io.Reader) (*File, error) {
	return fileParser.Parse(filename, r)
}

// ParseString parses a banner description from a string.
func ParseString(filename, input string) (*File, error) {
	return fileParser.ParseString(filename, input)
}
