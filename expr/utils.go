/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package expr encodes higher-level predicates (field equality,
// conjunction/disjunction, string prefix, numeric range) into the
// fixed-size keyword vectors package pecdk operates on. Every encoder
// takes a region name that namespaces its keywords so ciphertexts and
// trapdoors built for distinct logical domains never cross-match.
package expr

import "encoding/binary"

// concatBytes joins byte slices in order, without a separator.
func concatBytes(parts ...[]byte) []byte {
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	out := make([]byte, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// beUint64 returns the 8-byte big-endian encoding of v.
func beUint64(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
