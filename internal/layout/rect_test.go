package layout

import "testing"

func TestRect_RightBottom(t *testing.T) {
	type tc struct {
		rect   Rect
		right  float64
		bottom float64
	}

	tests := map[string]tc{
		"standard rect": {
			rect:   NewRect(5, 10, 20, 15),
			right:  25,
			bottom: 25,
		},
		"negative position": {
			rect:   NewRect(-5, -5, 10, 10),
			right:  5,
			bottom: 5,
		},
		"fractional": {
			rect:   NewRect(0.5, 1.25, 2, 2.5),
			right:  2.5,
			bottom: 3.75,
		},
		"zero size": {
			rect:   NewRect(5, 5, 0, 0),
			right:  5,
			bottom: 5,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Right(); got != tt.right {
				t.Errorf("Right() = %v, want %v", got, tt.right)
			}
			if got := tt.rect.Bottom(); got != tt.bottom {
				t.Errorf("Bottom() = %v, want %v", got, tt.bottom)
			}
		})
	}
}

func TestRect_IsEmpty(t *testing.T) {
	type tc struct {
		rect  Rect
		empty bool
	}

	tests := map[string]tc{
		"normal":          {rect: NewRect(0, 0, 10, 10), empty: false},
		"zero width":      {rect: NewRect(0, 0, 0, 10), empty: true},
		"zero height":     {rect: NewRect(0, 0, 10, 0), empty: true},
		"negative width":  {rect: NewRect(0, 0, -1, 10), empty: true},
		"sub-unit extent": {rect: NewRect(0, 0, 0.5, 0.5), empty: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.IsEmpty(); got != tt.empty {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.empty)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	type tc struct {
		x, y     float64
		contains bool
	}

	r := NewRect(10, 20, 30, 40)

	tests := map[string]tc{
		"point inside":                  {x: 20, y: 30, contains: true},
		"top-left corner (inside)":      {x: 10, y: 20, contains: true},
		"just inside right edge":        {x: 39.99, y: 30, contains: true},
		"right edge (outside)":          {x: 40, y: 30, contains: false},
		"bottom edge (outside)":         {x: 20, y: 60, contains: false},
		"bottom-right corner (outside)": {x: 40, y: 60, contains: false},
		"point left of rect":            {x: 5, y: 30, contains: false},
		"point above rect":              {x: 20, y: 10, contains: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.contains {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.contains)
			}
			if got := (Point{X: tt.x, Y: tt.y}).In(r); got != tt.contains {
				t.Errorf("Point.In = %v, want %v", got, tt.contains)
			}
		})
	}
}

func TestRect_Inset(t *testing.T) {
	type tc struct {
		rect  Rect
		edges Edges
		want  Rect
	}

	tests := map[string]tc{
		"uniform positive inset": {
			rect:  NewRect(10, 10, 100, 100),
			edges: EdgeAll(5),
			want:  NewRect(15, 15, 90, 90),
		},
		"different insets": {
			rect:  NewRect(0, 0, 100, 100),
			edges: EdgeTRBL(10, 20, 30, 40),
			want:  NewRect(40, 10, 40, 60),
		},
		"negative insets (expand)": {
			rect:  NewRect(10, 10, 50, 50),
			edges: EdgeAll(-5),
			want:  NewRect(5, 5, 60, 60),
		},
		"inset past zero": {
			rect:  NewRect(0, 0, 10, 10),
			edges: EdgeAll(6),
			want:  NewRect(6, 6, -2, -2),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Inset(tt.edges); got != tt.want {
				t.Errorf("Inset() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRect_Translate(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	got := r.Translate(-5, 2.5)
	if got != NewRect(5, 22.5, 30, 40) {
		t.Errorf("Translate() = %+v", got)
	}
	if r != NewRect(10, 20, 30, 40) {
		t.Errorf("Translate modified the receiver: %+v", r)
	}
	if r.Origin() != (Point{X: 10, Y: 20}) || r.Size() != (Size{Width: 30, Height: 40}) {
		t.Errorf("Origin/Size = %+v %+v", r.Origin(), r.Size())
	}
}

func TestPoint(t *testing.T) {
	p := Point{X: 3, Y: 4}
	if got := p.Add(Point{X: 1.5, Y: -2}); got != (Point{X: 4.5, Y: 2}) {
		t.Errorf("Add() = %+v", got)
	}
	if got := p.Sub(Point{X: 1.5, Y: -2}); got != (Point{X: 1.5, Y: 6}) {
		t.Errorf("Sub() = %+v", got)
	}
	if got := p.Add(Point{X: 1, Y: 1}).Sub(Point{X: 1, Y: 1}); got != p {
		t.Errorf("Add then Sub = %+v, want %+v", got, p)
	}
}

func TestCornerRadius(t *testing.T) {
	type tc struct {
		radius  CornerRadius
		uniform bool
		zero    bool
	}

	tests := map[string]tc{
		"none":    {radius: CornerRadius{}, uniform: true, zero: true},
		"all":     {radius: RadiusAll(4), uniform: true, zero: false},
		"one off": {radius: CornerRadius{TopLeft: 4, TopRight: 4, BottomRight: 2, BottomLeft: 4}, uniform: false, zero: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.radius.IsUniform(); got != tt.uniform {
				t.Errorf("IsUniform() = %v, want %v", got, tt.uniform)
			}
			if got := tt.radius.IsZero(); got != tt.zero {
				t.Errorf("IsZero() = %v, want %v", got, tt.zero)
			}
		})
	}
}

func TestEdges(t *testing.T) {
	type tc struct {
		edges     Edges
		want      Edges
		leadingV  float64
		trailingH float64
	}

	tests := map[string]tc{
		"all":       {edges: EdgeAll(2), want: Edges{2, 2, 2, 2}, leadingV: 2, trailingH: 2},
		"symmetric": {edges: EdgeSymmetric(1, 3), want: Edges{Left: 3, Top: 1, Right: 3, Bottom: 1}, leadingV: 1, trailingH: 3},
		"trbl":      {edges: EdgeTRBL(1, 2, 3, 4), want: Edges{Left: 4, Top: 1, Right: 2, Bottom: 3}, leadingV: 1, trailingH: 2},
		"ltrb":      {edges: EdgeLTRB(1, 2, 3, 4), want: Edges{Left: 1, Top: 2, Right: 3, Bottom: 4}, leadingV: 2, trailingH: 3},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if tt.edges != tt.want {
				t.Fatalf("edges = %+v, want %+v", tt.edges, tt.want)
			}
			if got := tt.edges.Leading(Vertical); got != tt.leadingV {
				t.Errorf("Leading(Vertical) = %v, want %v", got, tt.leadingV)
			}
			if got := tt.edges.Trailing(Horizontal); got != tt.trailingH {
				t.Errorf("Trailing(Horizontal) = %v, want %v", got, tt.trailingH)
			}
			if got := tt.edges.Horizontal(); got != tt.want.Left+tt.want.Right {
				t.Errorf("Horizontal() = %v", got)
			}
			if got := tt.edges.Vertical(); got != tt.want.Top+tt.want.Bottom {
				t.Errorf("Vertical() = %v", got)
			}
		})
	}
	if !(Edges{}).IsZero() || EdgeAll(1).IsZero() {
		t.Error("IsZero mismatch")
	}
}
