package ui

// Layer is the root of a window's display tree. Children are painted in the
// order they were added.
type Layer struct {
	bounds   Rect
	children []*TextRegion
	dirty    bool
}

// NewLayer returns an empty layer covering bounds.
func NewLayer(bounds Rect) *Layer {
	return &Layer{bounds: bounds, dirty: true}
}

func (l *Layer) Bounds() Rect { return l.bounds }

// AddChild attaches t, moving it from any previous parent.
func (l *Layer) AddChild(t *TextRegion) {
	if t == nil {
		return
	}
	if t.parent == l {
		return
	}
	if t.parent != nil {
		t.parent.RemoveChild(t)
	}
	t.parent = l
	l.children = append(l.children, t)
	l.dirty = true
}

// RemoveChild detaches t if it belongs to l.
func (l *Layer) RemoveChild(t *TextRegion) {
	for i, c := range l.children {
		if c != t {
			continue
		}
		copy(l.children[i:], l.children[i+1:])
		l.children[len(l.children)-1] = nil
		l.children = l.children[:len(l.children)-1]
		t.parent = nil
		l.dirty = true
		return
	}
}

// Children returns the attached regions in paint order.
func (l *Layer) Children() []*TextRegion { return l.children }

func (l *Layer) Dirty() bool { return l.dirty }
func (l *Layer) MarkDirty()  { l.dirty = true }
