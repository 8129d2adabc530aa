package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Grid-length grammar:
//
//	AUTO | <number>"*" | "*" | <number>"px" | <number>
//
// Keywords and suffixes are case-insensitive and must follow the number
// directly. Whitespace is allowed only around the whole length.
const numberPattern = `-?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][-+]?\d+)?`

var (
	lengthLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "Auto", Pattern: `[Aa][Uu][Tt][Oo]`},
		{Name: "Stars", Pattern: numberPattern + `\*`},
		{Name: "Pixels", Pattern: numberPattern + `[Pp][Xx]`},
		{Name: "Number", Pattern: numberPattern},
		{Name: "Star", Pattern: `\*`},
	})

	lengthParser = participle.MustBuild[lengthExpr](
		participle.Lexer(lengthLexer),
		participle.Elide("Whitespace"),
	)
)

// lengthExpr is the parse tree of a single grid length.
type lengthExpr struct {
	Auto   bool    `parser:"  @Auto"`
	Stars  *string `parser:"| @Stars"`
	Pixels *string `parser:"| @Pixels"`
	Number *string `parser:"| @Number"`
	Bare   bool    `parser:"| @Star"`
}

func (x *lengthExpr) length() (TrackLength, error) {
	switch {
	case x.Auto:
		return Auto(), nil
	case x.Bare:
		return OneStar, nil
	case x.Stars != nil:
		v, err := strconv.ParseFloat(strings.TrimSuffix(*x.Stars, "*"), 64)
		return Star(v), err
	case x.Pixels != nil:
		v, err := strconv.ParseFloat((*x.Pixels)[:len(*x.Pixels)-2], 64)
		return Fixed(v), err
	default:
		v, err := strconv.ParseFloat(*x.Number, 64)
		return Fixed(v), err
	}
}

// Parse parses a grid length such as "Auto", "2*", "*", "10px" or "10".
// Blank input yields an *ArgumentError; anything else outside the grammar
// yields a *FormatError.
func Parse(text string) (TrackLength, error) {
	if strings.TrimSpace(text) == "" {
		return TrackLength{}, &ArgumentError{Op: "Parse", Arg: "text", Reason: "blank grid length"}
	}
	expr, err := lengthParser.ParseString("", text)
	if err != nil {
		return TrackLength{}, &FormatError{Input: text, Err: err}
	}
	t, err := expr.length()
	if err != nil {
		return TrackLength{}, &FormatError{Input: text, Err: err}
	}
	return t, nil
}

// TryParse parses text without reporting why it failed.
// On failure it returns Fixed(0) and false.
func TryParse(text string) (TrackLength, bool) {
	t, err := Parse(text)
	if err != nil {
		return TrackLength{}, false
	}
	return t, true
}

// ParseTracks parses a comma-separated list of grid lengths, e.g. "50px, *, 2*".
func ParseTracks(text string) ([]TrackLength, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ArgumentError{Op: "ParseTracks", Arg: "text", Reason: "blank track list"}
	}
	parts := strings.Split(text, ",")
	tracks := make([]TrackLength, 0, len(parts))
	for i, part := range parts {
		t, err := Parse(part)
		if err != nil {
			return nil, fmt.Errorf("track %d: %w", i, err)
		}
		tracks = append(tracks, t)
	}
	return tracks, nil
}

// MarshalText implements encoding.TextMarshaler.
func (t TrackLength) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TrackLength) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
