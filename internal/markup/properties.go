package markup

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	scene "github.com/grindlemire/go-scene"
)

// propertySet tracks which of a node's properties have been consumed so
// unknown keys can be reported.
type propertySet struct {
	node  *Node
	props map[string]*Property
	order []string
}

func newPropertySet(n *Node) *propertySet {
	s := &propertySet{node: n, props: make(map[string]*Property)}
	for _, st := range n.Body {
		if st.Property == nil {
			continue
		}
		key := strings.ToLower(st.Property.Key)
		if _, ok := s.props[key]; !ok {
			s.order = append(s.order, key)
		}
		s.props[key] = st.Property
	}
	return s
}

func (s *propertySet) checkDuplicates() error {
	seen := make(map[string]bool)
	for _, st := range s.node.Body {
		if st.Property == nil {
			continue
		}
		key := strings.ToLower(st.Property.Key)
		if seen[key] {
			return errorf(st.Property.Pos, "property %q set twice", st.Property.Key)
		}
		seen[key] = true
	}
	return nil
}

// take returns and consumes the property named key.
func (s *propertySet) take(key string) (*Property, bool) {
	p, ok := s.props[key]
	if ok {
		delete(s.props, key)
	}
	return p, ok
}

// unused reports the first property nobody consumed.
func (s *propertySet) unused() error {
	for _, key := range s.order {
		if p, ok := s.props[key]; ok {
			return errorf(p.Pos, "unknown property %q for %s", p.Key, s.node.Kind)
		}
	}
	return nil
}

func (p *Property) single() (*Value, error) {
	if len(p.Values) != 1 {
		return nil, errorf(p.Pos, "%s takes one value, got %d", p.Key, len(p.Values))
	}
	return p.Values[0], nil
}

func (p *Property) number() (float64, error) {
	v, err := p.single()
	if err != nil {
		return 0, err
	}
	if v.Number == nil {
		return 0, errorf(p.Pos, "%s must be a number, got %s", p.Key, v)
	}
	return *v.Number, nil
}

func (p *Property) nonNegative() (float64, error) {
	n, err := p.number()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errorf(p.Pos, "%s must not be negative, got %v", p.Key, n)
	}
	return n, nil
}

func (p *Property) integer() (int, error) {
	n, err := p.number()
	if err != nil {
		return 0, err
	}
	if n != math.Trunc(n) {
		return 0, errorf(p.Pos, "%s must be a whole number, got %v", p.Key, n)
	}
	return int(n), nil
}

func (p *Property) ident() (string, error) {
	v, err := p.single()
	if err != nil {
		return "", err
	}
	if v.Ident == nil {
		return "", errorf(p.Pos, "%s must be a word, got %s", p.Key, v)
	}
	return strings.ToLower(*v.Ident), nil
}

// text accepts a quoted string or a bare word.
func (p *Property) text() (string, error) {
	v, err := p.single()
	if err != nil {
		return "", err
	}
	switch {
	case v.Str != nil:
		return string(*v.Str), nil
	case v.Ident != nil:
		return *v.Ident, nil
	}
	return "", errorf(p.Pos, "%s must be text, got %s", p.Key, v)
}

func (p *Property) boolean() (bool, error) {
	word, err := p.ident()
	if err != nil {
		return false, err
	}
	b, perr := strconv.ParseBool(word)
	if perr != nil {
		return false, errorf(p.Pos, "%s must be true or false, got %q", p.Key, word)
	}
	return b, nil
}

func (p *Property) numbers() ([]float64, error) {
	out := make([]float64, 0, len(p.Values))
	for _, v := range p.Values {
		if v.Number == nil {
			return nil, errorf(p.Pos, "%s must be numbers, got %s", p.Key, v)
		}
		if *v.Number < 0 {
			return nil, errorf(p.Pos, "%s must not be negative, got %v", p.Key, *v.Number)
		}
		out = append(out, *v.Number)
	}
	return out, nil
}

// edges accepts one value for all sides, two for vertical and horizontal, or
// four in top, right, bottom, left order.
func (p *Property) edges() (scene.Edges, error) {
	n, err := p.numbers()
	if err != nil {
		return scene.Edges{}, err
	}
	switch len(n) {
	case 1:
		return scene.EdgeAll(n[0]), nil
	case 2:
		return scene.EdgeSymmetric(n[0], n[1]), nil
	case 4:
		return scene.EdgeTRBL(n[0], n[1], n[2], n[3]), nil
	}
	return scene.Edges{}, errorf(p.Pos, "%s takes 1, 2 or 4 values, got %d", p.Key, len(n))
}

// radius accepts one value for every corner or four, clockwise from top-left.
func (p *Property) radius() (scene.CornerRadius, error) {
	n, err := p.numbers()
	if err != nil {
		return scene.CornerRadius{}, err
	}
	switch len(n) {
	case 1:
		return scene.RadiusAll(n[0]), nil
	case 4:
		return scene.CornerRadius{TopLeft: n[0], TopRight: n[1], BottomRight: n[2], BottomLeft: n[3]}, nil
	}
	return scene.CornerRadius{}, errorf(p.Pos, "%s takes 1 or 4 values, got %d", p.Key, len(n))
}

// color accepts #rgb, #rrggbb, #rrggbbaa or an SVG color name.
func (p *Property) color() (color.Color, error) {
	v, err := p.single()
	if err != nil {
		return nil, err
	}
	switch {
	case v.Color != nil:
		c, ok := parseHex(*v.Color)
		if !ok {
			return nil, errorf(p.Pos, "%s: invalid color %s", p.Key, *v.Color)
		}
		return c, nil
	case v.Ident != nil, v.Str != nil:
		var word string
		if v.Str != nil {
			word = string(*v.Str)
		} else {
			word = *v.Ident
		}
		word = strings.ToLower(word)
		if word == "none" || word == "transparent" {
			return color.RGBA{}, nil
		}
		if c, ok := colornames.Map[word]; ok {
			return c, nil
		}
		return nil, errorf(p.Pos, "%s: unknown color %q", p.Key, word)
	}
	return nil, errorf(p.Pos, "%s must be a color, got %s", p.Key, v)
}

func parseHex(s string) (color.NRGBA, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) == 6 {
		s += "ff"
	}
	if len(s) != 8 {
		return color.NRGBA{}, false
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, true
}
