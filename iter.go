/*

SPDX-Copyright: Copyright (c) Capital One Services, LLC
SPDX-License-Identifier: Apache-2.0
Copyright 2017 Capital One Services, LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and limitations under the License.

*/

package digitlist

import "iter"

// Sequence is any ordered collection of digits. List implements it, and so
// does Digits.
type Sequence interface {
	Len() int
	All() iter.Seq[Digit]
}

// Digits is a plain slice-backed Sequence.
type Digits []Digit

// Len returns the number of digits.
func (d Digits) Len() int { return len(d) }

// All returns an iterator over the digits in order.
func (d Digits) All() iter.Seq[Digit] {
	return func(yield func(Digit) bool) {
		for _, v := range d {
			if !yield(v) {
				return
			}
		}
	}
}

// All returns an iterator over the digits from head to tail.
func (l *List) All() iter.Seq[Digit] {
	return func(yield func(Digit) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/digit pairs from tail to head.
func (l *List) Backward() iter.Seq2[int, Digit] {
	return func(yield func(int, Digit) bool) {
		i := l.len - 1
		for n := l.tail; n != nil; n = n.prev {
			if !yield(i, n.value) {
				return
			}
			i--
		}
	}
}

// Cursor is a bidirectional position in a List. It sits between two digits:
// Next moves forward over one, Prev moves back over one. Set replaces the
// digit last moved over. The structure of the list cannot be changed through
// a Cursor, and changing it by other means invalidates the Cursor.
type Cursor struct {
	l           *List
	next        *node
	lastVisited *node
	nextIndex   int
}

// Cursor returns a Cursor positioned before index i. i may equal Len, in
// which case the Cursor starts after the last digit.
func (l *List) Cursor(i int) (*Cursor, error) {
	if err := l.checkPositionIndex(i); err != nil {
		return nil, err
	}
	c := &Cursor{l: l, nextIndex: i}
	if i < l.len {
		c.next = l.node(i)
	}
	return c, nil
}

// HasNext reports whether Next would return a digit.
func (c *Cursor) HasNext() bool { return c.nextIndex < c.l.len }

// HasPrevious reports whether Prev would return a digit.
func (c *Cursor) HasPrevious() bool { return c.nextIndex > 0 }

// NextIndex returns the index of the digit Next would return.
func (c *Cursor) NextIndex() int { return c.nextIndex }

// PreviousIndex returns the index of the digit Prev would return.
func (c *Cursor) PreviousIndex() int { return c.nextIndex - 1 }

// Next returns the next digit and advances the cursor. ok is false at the end
// of the list.
func (c *Cursor) Next() (d Digit, ok bool) {
	if !c.HasNext() {
		return 0, false
	}
	c.lastVisited = c.next
	c.next = c.next.next
	c.nextIndex++
	return c.lastVisited.value, true
}

// Prev returns the previous digit and moves the cursor back. ok is false at
// the start of the list.
func (c *Cursor) Prev() (d Digit, ok bool) {
	if !c.HasPrevious() {
		return 0, false
	}
	if c.next == nil {
		c.next = c.l.tail
	} else {
		c.next = c.next.prev
	}
	c.lastVisited = c.next
	c.nextIndex--
	return c.lastVisited.value, true
}

// Set replaces the digit last returned by Next or Prev.
func (c *Cursor) Set(d Digit) error {
	if c.lastVisited == nil {
		return ErrIllegalState
	}
	c.lastVisited.value = d
	return nil
}

// Insert always fails with ErrUnsupported.
func (c *Cursor) Insert(Digit) error { return ErrUnsupported }

// Remove always fails with ErrUnsupported.
func (c *Cursor) Remove() error { return ErrUnsupported }
