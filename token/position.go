// Copyright 2022 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package token

import (
	"errors"
	"fmt"
	"strconv"
)

// Position describes a location within a single
// line of instruction text.
type Position uint32

// Start records the first position in the text.
const Start = Position(1 << columnShift)

// Position is encoded as a 16-bit column number
// and a 16-bit byte offset into the text. A
// position is valid if it has a non-zero column
// number.
const (
	columnShift = 16
	columnMax   = 0xffff
	columnMask  = columnMax << columnShift

	offsetShift = 0
	offsetMax   = 0xffff
	offsetMask  = offsetMax << offsetShift
)

// MaxOffset defines the largest offset into the
// text that can be represented in a Position.
const MaxOffset = offsetMax

var (
	invalidOffset = errors.New("invalid offset")
	invalidColumn = errors.New("invalid column number")
)

// NewPosition returns a compact representation
// for the given position.
func NewPosition(offset, column int) (Position, error) {
	if offset < 0 || offsetMax < offset {
		return 0, invalidOffset
	}

	if column < 1 || columnMax < column {
		return 0, invalidColumn
	}

	p := Position(offset)<<offsetShift |
		Position(column)<<columnShift

	return p, nil
}

// IsValid returns whether p is a valid position.
func (p Position) IsValid() bool {
	return p&columnMask != 0
}

// Column returns the column number for this
// position, counted in code points.
//
// Column numbers start from 1.
func (p Position) Column() int {
	return int((p & columnMask) >> columnShift)
}

// Offset returns the byte offset for this position.
//
// Offset numbers start from 0.
func (p Position) Offset() int {
	return int(p & offsetMask)
}

// Advance returns a new position that represents
// n bytes further into the text, assuming they are
// all single-byte code points.
func (p Position) Advance(n int) Position {
	p, err := NewPosition(p.Offset()+n, p.Column()+n)
	if err != nil {
		panic(err)
	}

	return p
}

// String describes this position with one of the
// following forms:
//
//	column  (Valid position)
//	?       (Invalid position)
func (p Position) String() string {
	if !p.IsValid() {
		return "?"
	}

	return strconv.Itoa(p.Column())
}

func (p Position) GoString() string {
	return fmt.Sprintf("token.Position{Offset: %d, Column: %d}", p.Offset(), p.Column())
}
