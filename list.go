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

import (
	"fmt"
	"slices"
)

// DefaultBase is the base of lists built by New and Parse.
const DefaultBase = 10

// Digit is a single digit. Values 0..15 are expected but a digit is never
// checked against the base of the list holding it.
type Digit uint8

type node struct {
	value      Digit
	prev, next *node
}

// List is a doubly linked sequence of digits, most significant digit first.
// The zero value is an empty base-10 list ready to use.
type List struct {
	head, tail *node
	len        int
	base       int
}

// New returns an empty base-10 list.
func New() *List {
	return &List{base: DefaultBase}
}

// NewBase returns an empty list interpreted in the given base.
func NewBase(base int) (*List, error) {
	if err := checkBase(base); err != nil {
		return nil, err
	}
	return &List{base: base}, nil
}

// FromDigits returns a base-10 list holding a copy of digits.
func FromDigits(digits ...Digit) *List {
	l := New()
	for _, d := range digits {
		l.Add(d)
	}
	return l
}

// Len returns the number of digits in the list.
func (l *List) Len() int { return l.len }

// IsEmpty reports whether the list holds no digits.
func (l *List) IsEmpty() bool { return l.len == 0 }

// Base returns the base the digits are interpreted in.
func (l *List) Base() int {
	if l.base == 0 {
		return DefaultBase
	}
	return l.base
}

// Get returns the digit at index i.
func (l *List) Get(i int) (Digit, error) {
	if err := l.checkElementIndex(i); err != nil {
		return 0, err
	}
	return l.node(i).value, nil
}

// Set replaces the digit at index i and returns the previous one.
func (l *List) Set(i int, d Digit) (Digit, error) {
	if err := l.checkElementIndex(i); err != nil {
		return 0, err
	}
	n := l.node(i)
	old := n.value
	n.value = d
	return old, nil
}

// Add appends d at the tail of the list.
func (l *List) Add(d Digit) {
	n := &node{value: d, prev: l.tail}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.len++
}

// Insert inserts d before position i. Inserting at Len appends.
func (l *List) Insert(i int, d Digit) error {
	if err := l.checkPositionIndex(i); err != nil {
		return err
	}
	if i == l.len {
		l.Add(d)
		return nil
	}
	l.insertBefore(d, l.node(i))
	return nil
}

func (l *List) insertBefore(d Digit, mark *node) {
	n := &node{value: d, prev: mark.prev, next: mark}
	if mark.prev == nil {
		l.head = n
	} else {
		mark.prev.next = n
	}
	mark.prev = n
	l.len++
}

// RemoveAt removes the digit at index i and returns it.
func (l *List) RemoveAt(i int) (Digit, error) {
	if err := l.checkElementIndex(i); err != nil {
		return 0, err
	}
	n := l.node(i)
	l.unlink(n)
	return n.value, nil
}

// Remove removes the first occurrence of d and reports whether one was found.
func (l *List) Remove(d Digit) bool {
	for n := l.head; n != nil; n = n.next {
		if n.value == d {
			l.unlink(n)
			return true
		}
	}
	return false
}

func (l *List) unlink(n *node) {
	if n.prev == nil {
		l.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		l.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.prev = nil
	n.next = nil
	l.len--
}

// IndexOf returns the index of the first occurrence of d, or -1.
func (l *List) IndexOf(d Digit) int {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if n.value == d {
			return i
		}
		i++
	}
	return -1
}

// LastIndexOf returns the index of the last occurrence of d, or -1.
func (l *List) LastIndexOf(d Digit) int {
	i := l.len
	for n := l.tail; n != nil; n = n.prev {
		i--
		if n.value == d {
			return i
		}
	}
	return -1
}

// Contains reports whether d is in the list.
func (l *List) Contains(d Digit) bool {
	return l.IndexOf(d) >= 0
}

// AddAll appends every digit of s at the tail of the list. s may be l itself.
func (l *List) AddAll(s Sequence) {
	for _, d := range collect(s) {
		l.Add(d)
	}
}

// InsertAll inserts the digits of s, in order, before position i. Inserting
// at Len appends. Nothing is inserted when i is out of range.
func (l *List) InsertAll(i int, s Sequence) error {
	if err := l.checkPositionIndex(i); err != nil {
		return err
	}
	digits := collect(s)
	if i == l.len {
		for _, d := range digits {
			l.Add(d)
		}
		return nil
	}
	mark := l.node(i)
	for _, d := range digits {
		l.insertBefore(d, mark)
	}
	return nil
}

// RemoveAll removes every occurrence of every digit in s and reports whether
// the list changed.
func (l *List) RemoveAll(s Sequence) bool {
	set := digitSet(s)
	return l.removeIf(func(d Digit) bool { return set[d] })
}

// RetainAll removes every digit that is not in s and reports whether the
// list changed.
func (l *List) RetainAll(s Sequence) bool {
	set := digitSet(s)
	return l.removeIf(func(d Digit) bool { return !set[d] })
}

// ContainsAll reports whether every digit of s is in the list.
func (l *List) ContainsAll(s Sequence) bool {
	have := digitSet(l)
	for _, d := range collect(s) {
		if !have[d] {
			return false
		}
	}
	return true
}

func (l *List) removeIf(drop func(Digit) bool) bool {
	removed := false
	for n := l.head; n != nil; {
		next := n.next
		if drop(n.value) {
			l.unlink(n)
			removed = true
		}
		n = next
	}
	return removed
}

// collect copies the digits of s so that s may be the list being changed.
func collect(s Sequence) []Digit {
	if isNil(s) {
		return nil
	}
	return slices.Collect(s.All())
}

func digitSet(s Sequence) *[256]bool {
	var set [256]bool
	for _, d := range collect(s) {
		set[d] = true
	}
	return &set
}

// Clear removes every digit. The base is kept.
func (l *List) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		n.prev = nil
		n.next = nil
		n = next
	}
	l.head = nil
	l.tail = nil
	l.len = 0
}

// Swap exchanges the digits at i and j. It returns false and leaves the list
// untouched when either index is invalid.
func (l *List) Swap(i, j int) bool {
	if !l.isElementIndex(i) || !l.isElementIndex(j) {
		return false
	}
	if i == j {
		return true
	}
	a, b := l.node(i), l.node(j)
	a.value, b.value = b.value, a.value
	return true
}

// SubList returns a new list holding a copy of the digits in [from, to).
// The result has the same base as l.
func (l *List) SubList(from, to int) (*List, error) {
	if from < 0 || to > l.len || from > to {
		return nil, fmt.Errorf("%w: [%d, %d) with length %d", ErrOutOfRange, from, to, l.len)
	}
	sub := &List{base: l.Base()}
	if from == to {
		return sub, nil
	}
	n := l.node(from)
	for i := from; i < to; i++ {
		sub.Add(n.value)
		n = n.next
	}
	return sub, nil
}

// Clone returns a copy of l.
func (l *List) Clone() *List {
	c := &List{base: l.Base()}
	for n := l.head; n != nil; n = n.next {
		c.Add(n.value)
	}
	return c
}

// Digits returns the digits of l as a slice, most significant first.
func (l *List) Digits() Digits {
	res := make(Digits, 0, l.len)
	for n := l.head; n != nil; n = n.next {
		res = append(res, n.value)
	}
	return res
}

// node returns the node at index i, walking from whichever end is closer.
// i must be a valid element index.
func (l *List) node(i int) *node {
	if i < l.len>>1 {
		n := l.head
		for ; i > 0; i-- {
			n = n.next
		}
		return n
	}
	n := l.tail
	for k := l.len - 1; k > i; k-- {
		n = n.prev
	}
	return n
}

func (l *List) isElementIndex(i int) bool {
	return i >= 0 && i < l.len
}

func (l *List) checkElementIndex(i int) error {
	if !l.isElementIndex(i) {
		return fmt.Errorf("%w: index %d with length %d", ErrOutOfRange, i, l.len)
	}
	return nil
}

func (l *List) checkPositionIndex(i int) error {
	if i < 0 || i > l.len {
		return fmt.Errorf("%w: position %d with length %d", ErrOutOfRange, i, l.len)
	}
	return nil
}
