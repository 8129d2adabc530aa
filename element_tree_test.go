package scene

import (
	"errors"
	"testing"
)

func names(children []*Element) []string {
	out := make([]string, len(children))
	for i, c := range children {
		out[i] = c.Name()
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestElement_New_Defaults(t *testing.T) {
	e := New()

	if !e.IsVisible() {
		t.Error("element should be visible by default")
	}
	if !e.IsEnabled() {
		t.Error("element should be enabled by default")
	}
	if e.Parent() != nil {
		t.Error("new element should have no parent")
	}
	if e.ChildCount() != 0 {
		t.Errorf("new element should have no children, got %d", e.ChildCount())
	}
	if e.IsContainer() {
		t.Error("plain element should not be a container")
	}
}

func TestElement_New_UniqueIDs(t *testing.T) {
	a, b := New(), New()
	if a.ID() == b.ID() {
		t.Errorf("IDs should differ, both %d", a.ID())
	}
}

func TestElement_String(t *testing.T) {
	named := New(WithName("panel"))
	if named.String() != "panel" {
		t.Errorf("String() = %q, want %q", named.String(), "panel")
	}
	unnamed := New()
	if unnamed.String() == "" {
		t.Error("String() of unnamed element should not be empty")
	}
	var nilElem *Element
	if nilElem.String() != "<nil>" {
		t.Errorf("String() of nil = %q", nilElem.String())
	}
}

func TestElement_AddChild(t *testing.T) {
	type tc struct {
		add  []string
		want []string
	}

	tests := map[string]tc{
		"single child": {
			add:  []string{"a"},
			want: []string{"a"},
		},
		"children keep insertion order": {
			add:  []string{"a", "b", "c"},
			want: []string{"a", "b", "c"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent := New()
			for _, n := range tt.add {
				if err := parent.AddChild(New(WithName(n))); err != nil {
					t.Fatalf("AddChild(%s) error: %v", n, err)
				}
			}
			got := names(parent.Children())
			if !equalStrings(got, tt.want) {
				t.Errorf("children = %v, want %v", got, tt.want)
			}
			for _, c := range parent.Children() {
				if c.Parent() != parent {
					t.Errorf("child %s parent not set", c.Name())
				}
			}
		})
	}
}

func TestElement_AddChild_Reparents(t *testing.T) {
	p1 := New(WithName("p1"))
	p2 := New(WithName("p2"))
	a, b, c := New(WithName("a")), New(WithName("b")), New(WithName("c"))
	p1.AddChild(a, b, c)

	if err := p2.AddChild(b); err != nil {
		t.Fatalf("AddChild error: %v", err)
	}

	if got := names(p1.Children()); !equalStrings(got, []string{"a", "c"}) {
		t.Errorf("old parent children = %v, want [a c]", got)
	}
	if got := names(p2.Children()); !equalStrings(got, []string{"b"}) {
		t.Errorf("new parent children = %v, want [b]", got)
	}
	if b.Parent() != p2 {
		t.Error("b should be owned by p2")
	}
}

func TestElement_AddChild_SameParentMovesToEnd(t *testing.T) {
	p := New()
	a, b := New(WithName("a")), New(WithName("b"))
	p.AddChild(a, b)
	p.AddChild(a)

	if got := names(p.Children()); !equalStrings(got, []string{"b", "a"}) {
		t.Errorf("children = %v, want [b a]", got)
	}
}

func TestElement_AddChild_Errors(t *testing.T) {
	type tc struct {
		build func() (*Element, *Element)
		isNil bool
	}

	tests := map[string]tc{
		"nil child": {
			build: func() (*Element, *Element) { return New(), nil },
			isNil: true,
		},
		"self": {
			build: func() (*Element, *Element) {
				e := New()
				return e, e
			},
		},
		"ancestor": {
			build: func() (*Element, *Element) {
				root, mid, leaf := New(), New(), New()
				root.AddChild(mid)
				mid.AddChild(leaf)
				return leaf, root
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent, child := tt.build()
			before := parent.ChildCount()

			err := parent.AddChild(child)
			var argErr *ArgumentError
			if !errors.As(err, &argErr) {
				t.Fatalf("error = %v, want *ArgumentError", err)
			}
			if argErr.Op != "AddChild" {
				t.Errorf("Op = %q, want AddChild", argErr.Op)
			}
			if got := errors.Is(err, ErrNilElement); got != tt.isNil {
				t.Errorf("errors.Is(ErrNilElement) = %v, want %v", got, tt.isNil)
			}
			if parent.ChildCount() != before {
				t.Error("tree should be unchanged after a rejected AddChild")
			}
		})
	}
}

func TestElement_InsertChild(t *testing.T) {
	type tc struct {
		index int
		want  []string
	}

	tests := map[string]tc{
		"front":           {index: 0, want: []string{"x", "a", "b"}},
		"middle":          {index: 1, want: []string{"a", "x", "b"}},
		"end":             {index: 2, want: []string{"a", "b", "x"}},
		"negative clamps": {index: -4, want: []string{"x", "a", "b"}},
		"past end clamps": {index: 99, want: []string{"a", "b", "x"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := New()
			p.AddChild(New(WithName("a")), New(WithName("b")))
			if err := p.InsertChild(tt.index, New(WithName("x"))); err != nil {
				t.Fatalf("InsertChild error: %v", err)
			}
			if got := names(p.Children()); !equalStrings(got, tt.want) {
				t.Errorf("children = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestElement_RemoveChild(t *testing.T) {
	p := New()
	a, b, c := New(WithName("a")), New(WithName("b")), New(WithName("c"))
	p.AddChild(a, b, c)

	removed, err := p.RemoveChild(b)
	if err != nil || !removed {
		t.Fatalf("RemoveChild = %v, %v; want true, nil", removed, err)
	}
	if got := names(p.Children()); !equalStrings(got, []string{"a", "c"}) {
		t.Errorf("children = %v, want [a c]", got)
	}
	if b.Parent() != nil {
		t.Error("removed child should have no parent")
	}

	removed, err = p.RemoveChild(b)
	if err != nil || removed {
		t.Errorf("second RemoveChild = %v, %v; want false, nil", removed, err)
	}

	_, err = p.RemoveChild(nil)
	if !errors.Is(err, ErrNilElement) {
		t.Errorf("RemoveChild(nil) error = %v, want ErrNilElement", err)
	}
}

func TestElement_Clear(t *testing.T) {
	p := New()
	kids := []*Element{New(), New(), New()}
	p.AddChild(kids...)

	changes := 0
	p.Subscribe(func(_ *Element, c Change) {
		if c == ChangeChildren {
			changes++
		}
	})

	p.Clear()

	if p.ChildCount() != 0 {
		t.Errorf("ChildCount = %d after Clear", p.ChildCount())
	}
	if changes != len(kids) {
		t.Errorf("ChangeChildren raised %d times, want %d", changes, len(kids))
	}
	for i, k := range kids {
		if k.Parent() != nil {
			t.Errorf("child %d still has a parent", i)
		}
	}
}

func TestElement_Detach(t *testing.T) {
	p, c := New(), New()
	p.AddChild(c)

	if !c.Detach() {
		t.Error("Detach should report true for a parented element")
	}
	if c.Detach() {
		t.Error("Detach should report false for a root")
	}
	if p.ChildCount() != 0 {
		t.Error("parent should have no children after Detach")
	}
}

func TestElement_TreeQueries(t *testing.T) {
	root := New(WithName("root"))
	mid := New(WithName("mid"))
	leaf := New(WithName("leaf"))
	root.AddChild(mid)
	mid.AddChild(leaf)

	if leaf.Root() != root {
		t.Error("Root() should return the topmost ancestor")
	}
	if !root.IsAncestorOf(leaf) {
		t.Error("root should be an ancestor of leaf")
	}
	if leaf.IsAncestorOf(root) {
		t.Error("leaf should not be an ancestor of root")
	}
	if root.IsAncestorOf(root) {
		t.Error("an element is not its own ancestor")
	}
	if root.ChildAt(0) != mid || root.ChildAt(1) != nil || root.ChildAt(-1) != nil {
		t.Error("ChildAt returned the wrong element")
	}
	if mid.IndexOf(leaf) != 0 || root.IndexOf(leaf) != -1 {
		t.Error("IndexOf returned the wrong index")
	}

	var visited []string
	root.Walk(func(e *Element) bool {
		visited = append(visited, e.Name())
		return true
	})
	if !equalStrings(visited, []string{"root", "mid", "leaf"}) {
		t.Errorf("Walk order = %v", visited)
	}

	visited = nil
	root.Walk(func(e *Element) bool {
		visited = append(visited, e.Name())
		return e != mid
	})
	if !equalStrings(visited, []string{"root", "mid"}) {
		t.Errorf("Walk with pruning = %v", visited)
	}
}

func TestElement_Children_ReturnsCopy(t *testing.T) {
	p := New()
	p.AddChild(New(WithName("a")))

	kids := p.Children()
	kids[0] = New(WithName("z"))

	if p.ChildAt(0).Name() != "a" {
		t.Error("mutating Children() result should not affect the element")
	}
}
