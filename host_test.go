package scene

import (
	"errors"
	"sync"
	"testing"
)

func TestNewHost_Options(t *testing.T) {
	type tc struct {
		opts    []HostOption
		wantErr bool
		want    Size
	}

	tests := map[string]tc{
		"defaults": {},
		"host size": {
			opts: []HostOption{WithHostSize(800, 600)},
			want: Size{Width: 800, Height: 600},
		},
		"negative size": {
			opts:    []HostOption{WithHostSize(-1, 10)},
			wantErr: true,
		},
		"nil tracer": {
			opts:    []HostOption{WithTracer(nil)},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h, err := NewHost(tt.opts...)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewHost: %v", err)
			}
			if h.Size() != tt.want {
				t.Errorf("Size = %+v, want %+v", h.Size(), tt.want)
			}
		})
	}
}

func TestHost_AttachForwardsSize(t *testing.T) {
	h, _ := NewHost(WithHostSize(640, 480))
	root := NewStack(Vertical, 0)

	if err := h.Attach(root.Element); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if root.Size() != (Size{Width: 640, Height: 480}) {
		t.Errorf("root size = %+v", root.Size())
	}
	if root.Host() != h || h.Root() != root.Element {
		t.Error("root and host should reference each other")
	}
	if !h.IsDirty() {
		t.Error("Attach should mark the host dirty")
	}

	h.Resize(100, 50)
	if root.Size() != (Size{Width: 100, Height: 50}) {
		t.Errorf("root size after Resize = %+v", root.Size())
	}
}

func TestHost_AttachErrors(t *testing.T) {
	h, _ := NewHost()

	if err := h.Attach(nil); !errors.Is(err, ErrNilElement) {
		t.Errorf("Attach(nil) = %v, want ErrNilElement", err)
	}

	parent, child := New(), New()
	parent.AddChild(child)
	var argErr *ArgumentError
	if err := h.Attach(child); !errors.As(err, &argErr) {
		t.Errorf("Attach(parented) = %v, want *ArgumentError", err)
	}
}

func TestHost_AttachReplacesRoot(t *testing.T) {
	h, _ := NewHost()
	first, second := New(), New()
	h.Attach(first)
	h.Attach(second)

	if first.Host() != nil {
		t.Error("replaced root should be released")
	}
	if h.Root() != second {
		t.Error("host should own the new root")
	}

	if got := h.Detach(); got != second {
		t.Error("Detach should return the root")
	}
	if h.Detach() != nil {
		t.Error("Detach with no root should return nil")
	}
}

func TestHost_RootAddedAsChildLeavesHost(t *testing.T) {
	h, _ := NewHost()
	root := New()
	h.Attach(root)

	other := New()
	other.AddChild(root)

	if h.Root() != nil {
		t.Error("host should release a root that gains a parent")
	}
	if root.Host() != nil {
		t.Error("re-parented root should report no host")
	}
}

func TestHost_RedrawRequests(t *testing.T) {
	var sources []*Element
	h, _ := NewHost(WithOnRedraw(func(source *Element) {
		sources = append(sources, source)
	}))
	root := New()
	leaf := New()
	root.AddChild(leaf)
	h.Attach(root)
	h.CheckAndClearDirty()
	sources = nil

	leaf.SetEnabled(false)

	if len(sources) != 1 || sources[0] != leaf {
		t.Errorf("redraw sources = %v, want [leaf]", sources)
	}
	if !h.CheckAndClearDirty() {
		t.Error("change should mark the host dirty")
	}
	if h.CheckAndClearDirty() {
		t.Error("CheckAndClearDirty should clear the flag")
	}

	// A detached subtree no longer reaches the host.
	leaf.Detach()
	h.CheckAndClearDirty()
	sources = nil
	leaf.SetEnabled(true)
	if len(sources) != 0 {
		t.Errorf("detached element requested %d redraws", len(sources))
	}
}

func TestHost_RenderIfDirty(t *testing.T) {
	h, _ := NewHost()
	draws := 0
	root := New(WithOnDraw(func(DrawContext, *Element, Rect) { draws++ }))
	h.Attach(root)

	if !h.RenderIfDirty(nil) {
		t.Error("first RenderIfDirty should render")
	}
	if h.RenderIfDirty(nil) {
		t.Error("second RenderIfDirty should be skipped")
	}
	root.SetSize(5, 5)
	h.RenderIfDirty(nil)

	if draws != 2 {
		t.Errorf("draws = %d, want 2", draws)
	}

	h.MarkDirty()
	h.Render(nil)
	if h.IsDirty() {
		t.Error("Render should clear the dirty flag")
	}
}

func TestHost_DirtyFlagConcurrentReads(t *testing.T) {
	h, _ := NewHost()

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.MarkDirty()
			_ = h.IsDirty()
		}()
	}
	wg.Wait()

	if !h.CheckAndClearDirty() {
		t.Error("host should be dirty after concurrent MarkDirty calls")
	}
}

func TestHost_ZeroValueArranges(t *testing.T) {
	var h Host
	s := NewStack(Vertical, 2)
	a := New(WithSize(10, 10))
	b := New(WithSize(10, 10))
	s.AddChild(a, b)

	if err := h.Attach(s.Element); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	h.Resize(100, 50)
	a.SetSize(10, 20)

	if got := b.Position(); got != (Point{X: 0, Y: 22}) {
		t.Errorf("b position = %+v, want (0, 22)", got)
	}
	if s.Size() != (Size{Width: 100, Height: 50}) {
		t.Errorf("root size = %+v", s.Size())
	}
	if !h.IsDirty() {
		t.Error("host should be dirty after layout changes")
	}
}
