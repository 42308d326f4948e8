// Copyright © 2025 The icelang-ls authors

package syntax

import "fmt"

// Position is a 0-based line/column location in source text, matching the
// convention used by the editor protocol. Col counts bytes from the start
// of the line.
type Position struct {
	Line int
	Col  int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Before reports whether p is strictly before q in source order.
func (p Position) Before(q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Col < q.Col
}

// After reports whether p is strictly after q in source order.
func (p Position) After(q Position) bool {
	return q.Before(p)
}

// Range is a half-open [Start, End) span of source text.
type Range struct {
	Start Position
	End   Position
}

func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}

// Contains reports whether p falls within the half-open range.
func (r Range) Contains(p Position) bool {
	return !p.Before(r.Start) && p.Before(r.End)
}

// ContainsInner reports whether p is strictly inside the range, excluding
// both endpoints. Block scopes use this so that positions on the braces
// themselves do not count as inside the block.
func (r Range) ContainsInner(p Position) bool {
	return r.Start.Before(p) && p.Before(r.End)
}

// Empty reports whether the range spans no text.
func (r Range) Empty() bool {
	return r.Start == r.End
}
