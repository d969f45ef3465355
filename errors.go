// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package patrie

import "errors"

// ErrEmptyString is returned when a caller supplies a zero-length string to
// an operation that requires one.
var ErrEmptyString = errors.New("patrie: string must not be empty")

// ErrReservedCharacter is returned when a caller's string contains the
// trie's Reserved sentinel value.
var ErrReservedCharacter = errors.New("patrie: string contains the reserved character")
