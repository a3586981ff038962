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
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/capitalone/digitlist/numeral"
)

// DecimalRenderer is implemented by sequences that know the base-10
// rendering of the number they hold. Divide uses it for its divisor.
type DecimalRenderer interface {
	ToDecimal() string
}

func checkBase(base int) error {
	if base < numeral.MinRadix || base > numeral.MaxRadix {
		return fmt.Errorf("%w: %d", ErrInvalidBase, base)
	}
	return nil
}

// Magnitude returns the value of the digits read in the base of l. An empty
// list is zero.
func (l *List) Magnitude() *big.Int {
	x, err := numeral.Num(l.All(), uint64(l.Base()))
	if err != nil {
		// the base is validated when the list is created
		panic(err)
	}
	return &x
}

// ToDecimal returns the base-10 rendering of the number held by l. An empty
// list renders as the empty string, not "0".
func (l *List) ToDecimal() string {
	if l.IsEmpty() {
		return ""
	}
	return l.Magnitude().String()
}

// ChangeBase returns a new list holding the same number in newBase. l is not
// modified. An empty list converts to an empty list.
func (l *List) ChangeBase(newBase int) (*List, error) {
	if err := checkBase(newBase); err != nil {
		return nil, err
	}
	res := &List{base: newBase}
	if l.IsEmpty() {
		return res, nil
	}

	dec := l.ToDecimal()
	if dec == "" {
		res.Add(0)
		return res, nil
	}
	x, ok := numeral.Decimal(dec)
	if !ok {
		return nil, fmt.Errorf("bad decimal rendering %q", dec)
	}
	digits, err := numeral.Str(x, uint64(newBase))
	if err != nil {
		return nil, err
	}
	for _, d := range digits {
		res.Add(Digit(d))
	}
	return res, nil
}

// Divide returns the truncated quotient of l divided by s as a new base-10
// list. Each side is read in its own base when it implements
// DecimalRenderer. Any other Sequence is read by writing its raw digit
// values one after the other in decimal, so Digits{1, 12} is 112. A nil s,
// or one holding a nil pointer, counts as zero.
func (l *List) Divide(s Sequence) (*List, error) {
	dividend := decimalValue(l.ToDecimal())
	divisor := decimalValue(renderDecimal(s))
	if divisor.Sign() == 0 {
		return nil, ErrDivisionByZero
	}

	q := new(big.Int).Quo(dividend, divisor)
	res := New()
	for _, c := range q.String() {
		res.Add(Digit(c - '0'))
	}
	return res, nil
}

func renderDecimal(s Sequence) string {
	if isNil(s) {
		return ""
	}
	if r, ok := s.(DecimalRenderer); ok {
		return r.ToDecimal()
	}
	var sb strings.Builder
	for d := range s.All() {
		sb.WriteString(strconv.Itoa(int(d)))
	}
	return sb.String()
}

// isNil reports whether s is nil or holds a nil pointer, map, slice or func.
func isNil(s Sequence) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// decimalValue parses s, treating empty or malformed input as zero.
func decimalValue(s string) *big.Int {
	x, ok := numeral.Decimal(s)
	if !ok {
		return new(big.Int)
	}
	return x
}
