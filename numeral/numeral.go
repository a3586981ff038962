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

// Package numeral provides the radix helpers used to fold a digit sequence
// into a big.Int and to unfold a big.Int back into digits.
package numeral

import (
	"fmt"
	"iter"
	"math/big"
)

// Radix bounds accepted by Num and Str.
const (
	MinRadix = 2
	MaxRadix = 36
)

// CheckRadix reports an error when radix is outside [MinRadix, MaxRadix].
func CheckRadix(radix uint64) error {
	if radix < MinRadix || radix > MaxRadix {
		return fmt.Errorf("radix (%d) out of range: expected %d..%d", radix, MinRadix, MaxRadix)
	}
	return nil
}

// Num constructs a big.Int from a sequence of digits in the given radix.
// The sequence yields the most significant digit first.
// Digits are not checked against the radix: a digit >= radix simply
// contributes its value at that position.
func Num[D ~uint8](s iter.Seq[D], radix uint64) (big.Int, error) {
	var bigRadix, bv, x big.Int
	if err := CheckRadix(radix); err != nil {
		return x, err
	}

	bigRadix.SetUint64(radix)
	for v := range s {
		bv.SetUint64(uint64(v))
		x.Mul(&x, &bigRadix)
		x.Add(&x, &bv)
	}
	return x, nil
}

// Str returns the digits representing x in the specified radix, most
// significant digit first. Zero is a single 0 digit. x must not be negative.
func Str(x *big.Int, radix uint64) ([]uint8, error) {
	var bigRadix, mod, v big.Int
	if err := CheckRadix(radix); err != nil {
		return nil, err
	}
	if x.Sign() < 0 {
		return nil, fmt.Errorf("negative value %s has no digits", x)
	}
	if x.Sign() == 0 {
		return []uint8{0}, nil
	}

	// collected least significant first, then reversed in place
	var r []uint8
	v.Set(x)
	bigRadix.SetUint64(radix)
	for v.Sign() != 0 {
		v.DivMod(&v, &bigRadix, &mod)
		r = append(r, uint8(mod.Uint64()))
	}
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return r, nil
}

// Decimal parses s as a non-negative base-10 integer. An empty string is
// zero. ok is false when s is not a decimal number.
func Decimal(s string) (x *big.Int, ok bool) {
	if s == "" {
		return new(big.Int), true
	}
	x, ok = new(big.Int).SetString(s, 10)
	if !ok || x.Sign() < 0 {
		return nil, false
	}
	return x, true
}
