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

// SortAscending sorts the digits in place, smallest first.
func (l *List) SortAscending() {
	l.bubble(func(a, b Digit) bool { return a > b })
}

// SortDescending sorts the digits in place, largest first.
func (l *List) SortDescending() {
	l.bubble(func(a, b Digit) bool { return a < b })
}

// bubble swaps neighbouring values while outOfOrder holds for some pair,
// stopping after a pass without swaps. Only values move; nodes stay put.
func (l *List) bubble(outOfOrder func(a, b Digit) bool) {
	if l.len <= 1 {
		return
	}
	for swapped := true; swapped; {
		swapped = false
		for n := l.head; n.next != nil; n = n.next {
			if outOfOrder(n.value, n.next.value) {
				n.value, n.next.value = n.next.value, n.value
				swapped = true
			}
		}
	}
}

// ShiftLeft rotates the list by one: the head becomes the tail.
func (l *List) ShiftLeft() {
	if l.len <= 1 {
		return
	}
	first := l.head
	l.head = first.next
	l.head.prev = nil

	first.prev = l.tail
	first.next = nil
	l.tail.next = first
	l.tail = first
}

// ShiftRight rotates the list by one: the tail becomes the head.
func (l *List) ShiftRight() {
	if l.len <= 1 {
		return
	}
	last := l.tail
	l.tail = last.prev
	l.tail.next = nil

	last.next = l.head
	last.prev = nil
	l.head.prev = last
	l.head = last
}

// Equal reports whether s holds the same digits as l in the same order. The
// base of either side is not compared.
func (l *List) Equal(s Sequence) bool {
	if s == nil {
		return false
	}
	if o, ok := s.(*List); ok {
		if o == nil {
			return false
		}
		if o == l {
			return true
		}
	}
	if l.len != s.Len() {
		return false
	}
	n := l.head
	for d := range s.All() {
		if n == nil || n.value != d {
			return false
		}
		n = n.next
	}
	return n == nil
}

// Hash returns a hash of the digits consistent with Equal.
func (l *List) Hash() int {
	h := 1
	for n := l.head; n != nil; n = n.next {
		h = 31*h + int(n.value)
	}
	return h
}
