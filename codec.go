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
	"strings"
	"unicode/utf8"
)

// codec supports the conversion of an alphabet of symbols into digits.
// Element 'rtd' (rune-to-digit) maps symbols to digit values.
// Element 'dtr' (digit-to-rune) maps digit values back to symbols.
type codec struct {
	rtd map[rune]Digit
	dtr []rune
}

// digitCodec maps 0-9 and A-Z to the digits 0..35, enough for every base a
// List accepts.
var digitCodec = mustCodec("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ")

const maxAlphabet = 256

// newCodec builds a codec from the unique characters of s, in order.
// Duplicates are ignored. At most 256 distinct characters are allowed.
func newCodec(s string) (codec, error) {
	var ret codec
	ret.rtd = make(map[rune]Digit)
	ret.dtr = make([]rune, 0, utf8.RuneCountInString(s))

	for _, rv := range s {
		if _, ok := ret.rtd[rv]; ok {
			continue
		}
		if len(ret.dtr) == maxAlphabet {
			return ret, fmt.Errorf("alphabet must contain no more than %d characters", maxAlphabet)
		}
		ret.rtd[rv] = Digit(len(ret.dtr))
		ret.dtr = append(ret.dtr, rv)
	}
	return ret, nil
}

func mustCodec(s string) codec {
	c, err := newCodec(s)
	if err != nil {
		panic(err)
	}
	return c
}

// encode returns the digit of each character of s.
// It is an error for s to contain characters outside the alphabet.
func (c *codec) encode(s string) (Digits, error) {
	ret := make(Digits, 0, utf8.RuneCountInString(s))
	i := 0
	for _, rv := range s {
		d, ok := c.rtd[rv]
		if !ok {
			return nil, fmt.Errorf("character at position %d is not in alphabet", i)
		}
		ret = append(ret, d)
		i++
	}
	return ret, nil
}

// decode returns the symbols for the digits of s.
// It is an error for s to hold digits outside the alphabet.
func (c *codec) decode(s Sequence) (string, error) {
	var sb strings.Builder
	i := 0
	for d := range s.All() {
		if int(d) >= len(c.dtr) {
			return "", fmt.Errorf("digit at position %d out of range: %d not in [0..%d]", i, d, len(c.dtr)-1)
		}
		sb.WriteRune(c.dtr[d])
		i++
	}
	return sb.String(), nil
}

// Parse builds a base-10 list from a string of ASCII decimal digits. If s
// holds any other character the result is empty.
func Parse(s string) *List {
	l := New()
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			l.Clear()
			return l
		}
		l.Add(Digit(c - '0'))
	}
	return l
}

// ParseBase builds a list in the given base from the symbols 0-9 and A-Z,
// case insensitive. Symbols must be valid digits of base, so ParseBase
// accepts what String renders for any list whose digits fit its base.
func ParseBase(s string, base int) (*List, error) {
	l, err := NewBase(base)
	if err != nil {
		return nil, err
	}
	digits, err := digitCodec.encode(strings.ToUpper(s))
	if err != nil {
		return nil, err
	}
	for i, d := range digits {
		if int(d) >= base {
			return nil, fmt.Errorf("digit at position %d out of range for base %d: %d", i, base, d)
		}
		l.Add(d)
	}
	return l, nil
}

// String renders the digits with 0-9 then A-Z whatever the base of l, so 10
// to 15 read as A to F. A digit above 35 has no symbol: String then returns
// the decode error wrapped in "%!(...)", as fmt does for bad verbs.
func (l *List) String() string {
	s, err := digitCodec.decode(l)
	if err != nil {
		return "%!(" + err.Error() + ")"
	}
	return s
}
