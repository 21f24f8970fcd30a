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

package sample

import (
	"crypto/sha256"
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
)

// DeterministicStream is an io.Reader producing a reproducible keystream
// from a seed of arbitrary length. It exists so test fixtures can get the
// same ciphertexts and trapdoors run after run, the way the original test
// suite pinned a fixed XorShift seed.
//
// The seed is hashed down to a salsa20 key; each 64-byte block of output
// advances an internal block counter used as the salsa20 nonce, so the
// stream never repeats within the first 2^64 blocks and the bytes produced
// do not depend on how the reads are split.
type DeterministicStream struct {
	key     [32]byte
	counter uint64
	block   []byte
	pos     int
}

// NewDeterministicStream builds a DeterministicStream seeded by seed.
func NewDeterministicStream(seed []byte) *DeterministicStream {
	return &DeterministicStream{key: sha256.Sum256(seed)}
}

// Read fills p with keystream bytes. It always returns len(p), nil.
func (s *DeterministicStream) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if s.pos == len(s.block) {
			s.block = s.nextBlock()
			s.pos = 0
		}
		copied := copy(p[n:], s.block[s.pos:])
		n += copied
		s.pos += copied
	}
	return n, nil
}

func (s *DeterministicStream) nextBlock() []byte {
	var nonce [8]byte
	binary.BigEndian.PutUint64(nonce[:], s.counter)
	s.counter++

	const blockSize = 64
	in := make([]byte, blockSize)
	out := make([]byte, blockSize)
	salsa20.XORKeyStream(out, in, nonce[:], &s.key)
	return out
}
