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

package expr

import (
	"io"
	"math/bits"

	"github.com/fentec-project/pecdk/errs"
	"github.com/fentec-project/pecdk/pecdk"
)

// MaxKeywordSize returns the keyword-vector size a range search over
// bitSize bits requires. Sufficiency follows from a classical segment
// tree bound: the canonical cover of any [min, max] within bitSize
// bits never needs more than 2*bitSize nodes.
func MaxKeywordSize(bitSize int) int {
	return 2 * bitSize
}

// lengthMultiset counts how many times each prefix length is still
// available to the canonical cover algorithm.
type lengthMultiset map[int]int

func (m lengthMultiset) insert(length int) {
	m[length]++
}

func (m lengthMultiset) remove(length int) {
	if m[length] <= 1 {
		delete(m, length)
		return
	}
	m[length]--
}

func (m lengthMultiset) contains(length int) bool {
	return m[length] > 0
}

func (m lengthMultiset) min() int {
	first := true
	best := 0
	for length, count := range m {
		if count <= 0 {
			continue
		}
		if first || length < best {
			best = length
			first = false
		}
	}
	return best
}

func (m lengthMultiset) empty() bool {
	for _, count := range m {
		if count > 0 {
			return false
		}
	}
	return true
}

func computeMinUint(prefix []bool, bitSize int) uint64 {
	padded := make([]bool, bitSize)
	copy(padded, prefix)
	return bitsToUint(padded)
}

func computeMaxUint(prefix []bool, bitSize int) uint64 {
	padded := make([]bool, bitSize)
	copy(padded, prefix)
	for i := len(prefix); i < bitSize; i++ {
		padded[i] = true
	}
	return bitsToUint(padded)
}

// getCanonicalNextMax pops trailing bits off the bitSize-bit pattern of
// cursor for as long as the shorter prefix still covers an interval
// contained in [cursor, max] and its shrunken length remains usable,
// returning the longest removable prefix.
func getCanonicalNextMax(cursor, max uint64, bitSize int, allowedLens lengthMultiset) []bool {
	pattern := uintToBits(cursor, bitSize)
	minLenInSet := allowedLens.min()

	for len(pattern) >= 2 {
		shorter := pattern[:len(pattern)-1]
		if computeMinUint(shorter, bitSize) < cursor {
			break
		}
		if computeMaxUint(shorter, bitSize) > max {
			break
		}
		shorterLen := len(shorter)
		if !allowedLens.contains(shorterLen) && shorterLen < minLenInSet {
			break
		}
		pattern = shorter
	}
	return pattern
}

// getCanonicalCoverNodes computes the canonical segment cover of
// [min, max] over a bitSize-bit universe: a set of binary prefixes
// whose covered intervals partition [min, max] exactly.
func getCanonicalCoverNodes(min, max uint64, bitSize int) [][]bool {
	n1 := max - min + 1
	l := bits.Len64(n1+1) - 1
	n2 := n1 - (uint64(1) << uint(l)) + 1

	allowedLens := make(lengthMultiset)
	for i := 0; i < l; i++ {
		allowedLens.insert(bitSize - i)
	}
	n2Bits := uintToBits(n2, bitSize)
	for i := 0; i < len(n2Bits); i++ {
		bitFromLSB := n2Bits[len(n2Bits)-1-i]
		if bitFromLSB {
			allowedLens.insert(bitSize - i)
		}
	}

	var nodes [][]bool
	cursor := min
	for !allowedLens.empty() {
		node := getCanonicalNextMax(cursor, max, bitSize, allowedLens)
		cursor = computeMaxUint(node, bitSize) + 1
		allowedLens.remove(len(node))
		nodes = append(nodes, node)
	}
	return nodes
}

// EncryptRangeSearch builds a Ciphertext for a value val in
// [0, 2^bitSize), exposing one keyword per top-k-bits prefix of val so
// a trapdoor's cover set can test membership.
func EncryptRangeSearch(pk *pecdk.PublicKey, regionName string, bitSize int, val uint64, rng io.Reader) (*pecdk.Ciphertext, error) {
	n := MaxKeywordSize(bitSize)
	if pk.N() != n {
		return nil, errs.NewInvalidArgument("public key size does not match range search bit width")
	}

	region := []byte(regionName)
	valBits := uintToBits(val, bitSize)
	keywords := make([][]byte, 0, n)
	for i := 0; i < bitSize; i++ {
		prefixVal := bitsToUint(valBits[:i+1])
		keywords = append(keywords, concatBytes(region, []byte{0x01}, beUint64(uint64(i+1)), beUint64(prefixVal)))
	}
	for i := bitSize; i < n; i++ {
		keywords = append(keywords, concatBytes(region, []byte{0x00}, beUint64(0), beUint64(0)))
	}

	return pk.Encrypt(keywords, rng)
}

// TrapdoorRangeSearch builds a disjunctive trapdoor matching any
// ciphertext value in [min, max], via the canonical segment cover.
func TrapdoorRangeSearch(sk *pecdk.SecretKey, regionName string, min, max uint64, bitSize int, rng io.Reader) (*pecdk.Trapdoor, error) {
	n := MaxKeywordSize(bitSize)
	if sk.N() != n {
		return nil, errs.NewInvalidArgument("secret key size does not match range search bit width")
	}

	region := []byte(regionName)
	nodes := getCanonicalCoverNodes(min, max, bitSize)
	keywords := make([][]byte, 0, n)
	for _, node := range nodes {
		keywords = append(keywords, concatBytes(region, []byte{0x01}, beUint64(uint64(len(node))), beUint64(bitsToUint(node))))
	}
	for i := len(keywords); i < n; i++ {
		keywords = append(keywords, concatBytes(region, []byte{0x00}, beUint64(1), beUint64(1)))
	}

	return sk.GenTrapdoor(keywords, pecdk.OR, rng)
}
