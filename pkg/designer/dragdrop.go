package designer

import (
	"errors"

	"github.com/formline/formline-terminal/pkg/models"
)

// DefaultDragThreshold is the pointer movement, in cells, below which a
// press-and-release stays a click. Keeps stray clicks from reordering.
const DefaultDragThreshold = 2

// ErrDragInProgress is returned when a gesture begins while another is
// still active. The input layer delivers gestures one at a time, so
// hitting this means the caller lost a release event.
var ErrDragInProgress = errors.New("drag already in progress")

// SourceKind says where a drag started.
type SourceKind int

const (
	SourcePalette SourceKind = iota
	SourceCanvasField
)

// DragSource identifies the dragged item: a palette entry carries the
// field type, a canvas field carries its id.
type DragSource struct {
	Kind      SourceKind
	FieldType models.FieldType // palette source
	FieldID   string           // canvas source
}

// TargetKind classifies where a drag was released.
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetCanvas
	TargetField
)

// DropTarget is the classified release point of a gesture.
type DropTarget struct {
	Kind    TargetKind
	FieldID string // set for TargetField
}

// Op is the designer operation a completed gesture maps to.
type Op interface{ isOp() }

// InsertOp inserts a new field of Type at the end of the canvas.
type InsertOp struct {
	Type models.FieldType
}

// ReorderOp moves the field MovedID to TargetID's position.
type ReorderOp struct {
	MovedID  string
	TargetID string
}

func (InsertOp) isOp()  {}
func (ReorderOp) isOp() {}

// Coordinator turns a single pointer-drag gesture into at most one
// designer operation. Two states: idle and dragging; every gesture ends
// back in idle whether it produced an operation or not.
type Coordinator struct {
	threshold int

	dragging bool
	source   DragSource
	originX  int
	originY  int
	moved    bool
}

// NewCoordinator returns a coordinator with the given movement threshold;
// zero or negative means DefaultDragThreshold.
func NewCoordinator(threshold int) *Coordinator {
	if threshold <= 0 {
		threshold = DefaultDragThreshold
	}
	return &Coordinator{threshold: threshold}
}

// Dragging reports whether a gesture is active.
func (c *Coordinator) Dragging() bool { return c.dragging }

// Source returns the active gesture's source. Only meaningful while
// Dragging is true.
func (c *Coordinator) Source() DragSource { return c.source }

// Begin starts a gesture at the given pointer cell.
func (c *Coordinator) Begin(source DragSource, x, y int) error {
	if c.dragging {
		return ErrDragInProgress
	}
	c.dragging = true
	c.source = source
	c.originX = x
	c.originY = y
	c.moved = false
	return nil
}

// Move records pointer motion during a gesture. Once movement passes the
// threshold the gesture counts as a real drag.
func (c *Coordinator) Move(x, y int) {
	if !c.dragging || c.moved {
		return
	}
	dx := x - c.originX
	if dx < 0 {
		dx = -dx
	}
	dy := y - c.originY
	if dy < 0 {
		dy = -dy
	}
	if dx >= c.threshold || dy >= c.threshold {
		c.moved = true
	}
}

// Drop ends the gesture and classifies it into at most one operation:
// palette onto the canvas surface inserts, canvas field onto another field
// reorders, anything else is a no-op. Sub-threshold gestures never count.
func (c *Coordinator) Drop(target DropTarget) (Op, bool) {
	if !c.dragging {
		return nil, false
	}
	source := c.source
	moved := c.moved
	c.reset()

	if !moved {
		return nil, false
	}

	switch {
	case source.Kind == SourcePalette && target.Kind == TargetCanvas:
		return InsertOp{Type: source.FieldType}, true
	case source.Kind == SourceCanvasField && target.Kind == TargetField && source.FieldID != target.FieldID:
		return ReorderOp{MovedID: source.FieldID, TargetID: target.FieldID}, true
	}
	return nil, false
}

// Cancel aborts the gesture without producing an operation.
func (c *Coordinator) Cancel() {
	c.reset()
}

func (c *Coordinator) reset() {
	c.dragging = false
	c.source = DragSource{}
	c.moved = false
}
