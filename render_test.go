package scene

import "testing"

func TestRenderTree_Order(t *testing.T) {
	var visited []string
	boundsOf := map[string]Rect{}
	draw := func(_ DrawContext, e *Element, bounds Rect) {
		visited = append(visited, e.Name())
		boundsOf[e.Name()] = bounds
	}

	root := New(WithName("root"), WithSize(100, 100), WithOnDraw(draw))
	a := New(WithName("a"), WithPosition(10, 10), WithSize(50, 50), WithOnDraw(draw))
	a1 := New(WithName("a1"), WithPosition(5, 5), WithSize(5, 5), WithOnDraw(draw))
	hidden := New(WithName("hidden"), WithVisible(false), WithOnDraw(draw))
	hiddenChild := New(WithName("hidden-child"), WithOnDraw(draw))
	b := New(WithName("b"), WithOnDraw(draw))
	plain := New(WithName("plain"))

	root.AddChild(a, hidden, b, plain)
	a.AddChild(a1)
	hidden.AddChild(hiddenChild)

	RenderTree(nil, root)

	want := []string{"root", "a", "a1", "b"}
	if !equalStrings(visited, want) {
		t.Errorf("visit order = %v, want %v", visited, want)
	}
	if got := boundsOf["a1"]; got != NewRect(15, 15, 5, 5) {
		t.Errorf("a1 bounds = %+v, want absolute (15, 15)", got)
	}
}

func TestRenderTree_PassesContext(t *testing.T) {
	type target struct{ calls int }
	dc := &target{}
	root := New(WithOnDraw(func(ctx DrawContext, _ *Element, _ Rect) {
		ctx.(*target).calls++
	}))

	RenderTree(dc, root)
	RenderTree(dc, nil)

	if dc.calls != 1 {
		t.Errorf("calls = %d, want 1", dc.calls)
	}
}

func TestHitTest(t *testing.T) {
	root := New(WithName("root"), WithSize(100, 100))
	panel := New(WithName("panel"), WithPosition(10, 10), WithSize(50, 50))
	button := New(WithName("button"), WithPosition(5, 5), WithSize(10, 10))
	overlay := New(WithName("overlay"), WithPosition(10, 10), WithSize(20, 20))
	hidden := New(WithName("hidden"), WithSize(100, 100), WithVisible(false))
	root.AddChild(panel, hidden)
	panel.AddChild(button, overlay)

	type tc struct {
		x, y float64
		want string
	}

	tests := map[string]tc{
		"root background":     {x: 90, y: 90, want: "root"},
		"panel":               {x: 50, y: 50, want: "panel"},
		"nested button":       {x: 16, y: 16, want: "button"},
		"later sibling wins":  {x: 22, y: 22, want: "overlay"},
		"outside everything":  {x: 150, y: 5, want: ""},
		"right edge excluded": {x: 100, y: 50, want: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			hit := HitTest(root, tt.x, tt.y)
			got := ""
			if hit != nil {
				got = hit.Name()
			}
			if got != tt.want {
				t.Errorf("HitTest(%v, %v) = %q, want %q", tt.x, tt.y, got, tt.want)
			}
		})
	}
}
