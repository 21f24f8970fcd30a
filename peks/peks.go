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

// Package peks implements public-key encryption with keyword search, the
// single-keyword predecessor of the conjunctive/disjunctive scheme in
// package pecdk. It shares the same pairing primitives and hash helpers.
package peks

import (
	"bytes"
	"io"
	"math/big"

	"github.com/fentec-project/bn256"
	"github.com/fentec-project/pecdk/hashes"
	"github.com/fentec-project/pecdk/internal/frmath"
)

// SecretKey holds the scheme's single scalar. It is held by the party that
// issues trapdoors.
type SecretKey struct {
	alpha *big.Int
}

// PublicKey is derived from a SecretKey and handed to encryptors.
type PublicKey struct {
	g *bn256.G2
	h *bn256.G2
}

// Ciphertext is produced by PublicKey.Encrypt.
type Ciphertext struct {
	a *bn256.G2
	b []byte
}

// Trapdoor is produced by SecretKey.Trapdoor and handed to the server
// running Test.
type Trapdoor struct {
	t *bn256.G1
}

// GenerateSecretKey samples a fresh SecretKey, drawing randomness from rng.
func GenerateSecretKey(rng io.Reader) (*SecretKey, error) {
	alpha, err := frmath.Random(rng)
	if err != nil {
		return nil, err
	}

	return &SecretKey{alpha: alpha}, nil
}

// PublicKey derives a fresh PublicKey from sk. Each call samples a new g, so
// repeated derivations from the same secret key are independent public keys.
func (sk *SecretKey) PublicKey(rng io.Reader) (*PublicKey, error) {
	g, err := frmath.RandomG2(rng)
	if err != nil {
		return nil, err
	}
	h := new(bn256.G2).ScalarMult(g, sk.alpha)

	return &PublicKey{g: g, h: h}, nil
}

// Encrypt produces a Ciphertext tagging the single keyword w.
func (pk *PublicKey) Encrypt(w []byte, rng io.Reader) (*Ciphertext, error) {
	r, err := frmath.Random(rng)
	if err != nil {
		return nil, err
	}
	a := new(bn256.G2).ScalarMult(pk.g, r)

	hw, err := hashes.Point(append([]byte{}, w...))
	if err != nil {
		return nil, err
	}
	rh := new(bn256.G2).ScalarMult(pk.h, r)
	paired := bn256.Pair(hw, rh)

	b, err := hashes.Digest(paired)
	if err != nil {
		return nil, err
	}

	return &Ciphertext{a: a, b: b}, nil
}

// Trapdoor derives a query token for keyword w.
func (sk *SecretKey) Trapdoor(w []byte) (*Trapdoor, error) {
	hw, err := hashes.Point(append([]byte{}, w...))
	if err != nil {
		return nil, err
	}
	t := new(bn256.G1).ScalarMult(hw, sk.alpha)

	return &Trapdoor{t: t}, nil
}

// Test reports whether td's keyword matches the one ct was encrypted
// under.
func (td *Trapdoor) Test(ct *Ciphertext) (bool, error) {
	paired := bn256.Pair(td.t, ct.a)
	digest, err := hashes.Digest(paired)
	if err != nil {
		return false, err
	}

	return bytes.Equal(digest, ct.b), nil
}
