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

// Package hashes collects the random-oracle helpers the searchable-encryption
// schemes build their keyword digests on top of: bytes-to-scalar,
// bytes-to-curve-point, and target-group-element-to-digest.
package hashes

import (
	"crypto/sha256"
	"encoding/binary"
	"math/big"

	"github.com/fentec-project/bn256"
	"github.com/fentec-project/pecdk/errs"
)

const sha256BlockSize = 64

// Field hashes msg into a scalar of Fr, domain-separated by tag. It follows
// the expand_message_xmd construction (RFC 9380 §5.3.1) over SHA-256, so
// independent implementations that agree on tag and bn256.Order produce the
// same Fr element from the same msg.
func Field(msg, tag []byte) (*big.Int, error) {
	lenInBytes := (bn256.Order.BitLen()+64)/8 + 1
	uniform, err := expandMessageXMD(msg, tag, lenInBytes)
	if err != nil {
		return nil, errs.NewHashError("hash-to-field expansion failed", err)
	}

	return new(big.Int).Mod(new(big.Int).SetBytes(uniform), bn256.Order), nil
}

// Point hashes msg onto a point of G1 using bn256's hash-to-curve suite.
func Point(msg []byte) (*bn256.G1, error) {
	p, err := bn256.HashG1(string(msg))
	if err != nil {
		return nil, errs.NewHashError("hash-to-curve failed", err)
	}

	return p, nil
}

// Digest compresses a Gt element into a fixed-length byte digest by
// marshaling it to its canonical form and taking SHA-256 of the result.
func Digest(x *bn256.GT) ([]byte, error) {
	marshaled := x.Marshal()
	sum := sha256.Sum256(marshaled)

	return sum[:], nil
}

// expandMessageXMD implements expand_message_xmd from RFC 9380 §5.3.1,
// instantiated with SHA-256, producing lenInBytes of uniform output from
// msg under domain separation tag dst.
func expandMessageXMD(msg, dst []byte, lenInBytes int) ([]byte, error) {
	if len(dst) > 255 {
		return nil, errs.NewInvalidArgument("hash-to-field domain separation tag exceeds 255 bytes")
	}

	ellBytes := sha256.Size
	ell := (lenInBytes + ellBytes - 1) / ellBytes
	if ell > 255 {
		return nil, errs.NewInvalidArgument("hash-to-field requested output too large")
	}

	dstPrime := append(append([]byte{}, dst...), byte(len(dst)))
	zPad := make([]byte, sha256BlockSize)
	lIBStr := make([]byte, 2)
	binary.BigEndian.PutUint16(lIBStr, uint16(lenInBytes))

	msgPrime := concatAll(zPad, msg, lIBStr, []byte{0}, dstPrime)
	b0 := sha256.Sum256(msgPrime)

	bVals := make([][]byte, ell+1)
	b1 := sha256.Sum256(concatAll(b0[:], []byte{1}, dstPrime))
	bVals[1] = b1[:]
	for i := 2; i <= ell; i++ {
		xored := make([]byte, sha256.Size)
		for j := range xored {
			xored[j] = b0[j] ^ bVals[i-1][j]
		}
		bi := sha256.Sum256(concatAll(xored, []byte{byte(i)}, dstPrime))
		bVals[i] = bi[:]
	}

	uniform := make([]byte, 0, ell*ellBytes)
	for i := 1; i <= ell; i++ {
		uniform = append(uniform, bVals[i]...)
	}

	return uniform[:lenInBytes], nil
}

func concatAll(parts ...[]byte) []byte {
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
