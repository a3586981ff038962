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

import "errors"

var (
	// ErrOutOfRange is returned when an index is outside the bounds of the
	// addressed operation.
	ErrOutOfRange = errors.New("index out of range")

	// ErrUnsupported is returned by Cursor methods that would change the
	// structure of the list.
	ErrUnsupported = errors.New("operation not supported")

	// ErrIllegalState is returned by Cursor.Set before Next or Prev was called.
	ErrIllegalState = errors.New("cursor has no current element")

	// ErrDivisionByZero is returned by Divide when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidBase is returned for a base outside 2..36.
	ErrInvalidBase = errors.New("invalid base")
)
