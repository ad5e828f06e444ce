// Copyright 2022 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package token

import (
	"testing"
)

func TestPosition(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		column int
		error  error
	}{
		{
			name:   "minimal",
			offset: 0,
			column: 1,
		},
		{
			name:   "simple",
			offset: 4,
			column: 3,
		},
		{
			name:   "max",
			offset: 0xffff,
			column: 0xffff,
		},
		{
			name:   "small offset",
			offset: -1,
			column: 1,
			error:  invalidOffset,
		},
		{
			name:   "big offset",
			offset: 0x1_0000,
			column: 1,
			error:  invalidOffset,
		},
		{
			name:   "small column",
			offset: 0,
			column: 0,
			error:  invalidColumn,
		},
		{
			name:   "big column",
			offset: 0,
			column: 0x1_0000,
			error:  invalidColumn,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			pos, err := NewPosition(test.offset, test.column)
			if err != test.error {
				t.Fatalf("NewPosition(%d, %d): got error %v, want %v", test.offset, test.column, err, test.error)
			}

			if err != nil {
				return
			}

			if !pos.IsValid() {
				t.Errorf("NewPosition(%d, %d): got invalid position", test.offset, test.column)
			}

			if got := pos.Offset(); got != test.offset {
				t.Errorf("NewPosition(%d, %d).Offset(): got %d", test.offset, test.column, got)
			}

			if got := pos.Column(); got != test.column {
				t.Errorf("NewPosition(%d, %d).Column(): got %d", test.offset, test.column, got)
			}
		})
	}
}

func TestPositionString(t *testing.T) {
	if got := Position(0).String(); got != "?" {
		t.Errorf("Position(0).String(): got %q, want %q", got, "?")
	}

	if got := Start.String(); got != "1" {
		t.Errorf("Start.String(): got %q, want %q", got, "1")
	}

	if got := Start.Advance(4); got.Offset() != 4 || got.Column() != 5 {
		t.Errorf("Start.Advance(4): got %#v", got)
	}
}
