package game

// Brush is the colour of an annotation shape.
type Brush int

const (
	BrushGreen Brush = iota
	BrushRed
	BrushBlue
	BrushYellow
)

// BrushFor picks the brush from the modifiers held when the annotation started.
func BrushFor(shiftOrCtrl, altOrMeta bool) Brush {
	switch {
	case shiftOrCtrl && altOrMeta:
		return BrushYellow
	case shiftOrCtrl:
		return BrushRed
	case altOrMeta:
		return BrushBlue
	}
	return BrushGreen
}

// Shape is a circle (Orig == Dest) or an arrow between two anchors.
type Shape struct {
	Orig  Origin
	Dest  Origin
	Brush Brush
}

// IsCircle reports whether the shape marks a single anchor.
func (s Shape) IsCircle() bool {
	return s.Orig == s.Dest
}

// Annotations are the user's circles and arrows on the board and hands.
// They never affect the game.
type Annotations struct {
	shapes  []Shape
	current *Shape
}

// Begin starts drawing from anchor.
func (a *Annotations) Begin(anchor Origin, brush Brush) {
	a.current = &Shape{Orig: anchor, Dest: anchor, Brush: brush}
}

// Drawing returns the shape being drawn.
func (a *Annotations) Drawing() (Shape, bool) {
	if a.current == nil {
		return Shape{}, false
	}
	return *a.current, true
}

// Update moves the end of the shape being drawn. ok is false when the pointer is over no anchor.
func (a *Annotations) Update(anchor Origin, ok bool) {
	if a.current == nil || !ok {
		return
	}
	a.current.Dest = anchor
}

// Finish ends the shape on anchor and toggles it: drawing an identical shape removes it,
// and the same anchors with another brush replace the old one. It returns true when the
// shapes changed.
func (a *Annotations) Finish(anchor Origin, ok bool) bool {
	cur := a.current
	a.current = nil
	if cur == nil || !ok {
		return false
	}
	cur.Dest = anchor
	for i, s := range a.shapes {
		if s.Orig != cur.Orig || s.Dest != cur.Dest {
			continue
		}
		a.shapes = append(a.shapes[:i], a.shapes[i+1:]...)
		if s.Brush == cur.Brush {
			return true
		}
		break
	}
	a.shapes = append(a.shapes, *cur)
	return true
}

// Cancel abandons the shape being drawn.
func (a *Annotations) Cancel() {
	a.current = nil
}

// Clear removes every shape. It returns true when there was anything to remove.
func (a *Annotations) Clear() bool {
	had := len(a.shapes) > 0 || a.current != nil
	a.shapes = nil
	a.current = nil
	return had
}

// Shapes returns the finished shapes in drawing order.
func (a *Annotations) Shapes() []Shape {
	return append([]Shape(nil), a.shapes...)
}
