package replay

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/pathtrace/graph"
	"github.com/katalvlaran/pathtrace/trace"
)

// ErrBadInterval is returned by Player.Play for a non-positive interval.
var ErrBadInterval = errors.New("replay: interval must be positive")

// Cursor is a position in the step log of one run. It starts at step 0,
// the way a freshly computed run is first shown.
//
// A Cursor is not safe for concurrent use.
type Cursor struct {
	g   graph.Graph
	r   trace.Result
	pos int
}

// NewCursor returns a cursor over r, projected onto a private copy of g.
func NewCursor(g graph.Graph, r trace.Result) *Cursor {
	return &Cursor{g: g.Clone(), r: r}
}

// Pos returns the current step index.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the number of steps.
func (c *Cursor) Len() int { return len(c.r.Steps) }

// Last returns the index of the final step (-1 for an empty log).
func (c *Cursor) Last() int { return len(c.r.Steps) - 1 }

// AtEnd reports whether the cursor is on the final step or the log is empty.
func (c *Cursor) AtEnd() bool { return c.pos >= c.Last() }

// Next moves one step forward. It returns false, without moving, at the end.
func (c *Cursor) Next() bool {
	if c.AtEnd() {
		return false
	}
	c.pos++

	return true
}

// Prev moves one step back. It returns false, without moving, at step 0.
func (c *Cursor) Prev() bool {
	if c.pos <= 0 {
		return false
	}
	c.pos--

	return true
}

// Seek moves to step k, clamped to [0, Last()].
func (c *Cursor) Seek(k int) {
	if k > c.Last() {
		k = c.Last()
	}
	if k < 0 {
		k = 0
	}
	c.pos = k
}

// Reset moves back to step 0.
func (c *Cursor) Reset() { c.pos = 0 }

// Overlay projects the current position.
func (c *Cursor) Overlay() Overlay {
	return Project(c.g, c.r, c.pos)
}

// Player animates a Cursor.
type Player struct {
	c *Cursor
}

// NewPlayer returns a Player driving c.
func NewPlayer(c *Cursor) *Player {
	return &Player{c: c}
}

// Play calls fn with the current overlay, then advances one step every
// interval and calls fn again, until the last step has been shown or ctx is
// done. It returns nil after the last step and ctx.Err() on cancellation.
func (p *Player) Play(ctx context.Context, interval time.Duration, fn func(Overlay)) error {
	if interval <= 0 {
		return fmt.Errorf("Play(%s): %w", interval, ErrBadInterval)
	}

	fn(p.c.Overlay())
	if p.c.AtEnd() {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.c.Next()
			fn(p.c.Overlay())
			if p.c.AtEnd() {
				return nil
			}
		}
	}
}
