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

// Package frmath collects the modular arithmetic every scheme package
// needs on elements of Fr, the scalar field of bn256.Order. It generalizes
// the single ModExp helper the earlier version of this tree carried into
// the full add/sub/mul/inverse/random vocabulary.
package frmath

import (
	"io"
	"math/big"

	"github.com/fentec-project/bn256"
)

// Order is the prime order of Fr (= bn256.Order).
var Order = bn256.Order

// ModExp calculates g^x in Z_m*, even if x < 0.
func ModExp(g, x, m *big.Int) *big.Int {
	ret := new(big.Int)
	if x.Sign() == -1 {
		xNeg := new(big.Int).Neg(x)
		ret.Exp(g, xNeg, m)
		ret.ModInverse(ret, m)
	} else {
		ret.Exp(g, x, m)
	}

	return ret
}

// Add returns a+b mod Order.
func Add(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Add(a, b), Order)
}

// Sub returns a-b mod Order.
func Sub(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Sub(a, b), Order)
}

// Mul returns a*b mod Order.
func Mul(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Mul(a, b), Order)
}

// Pow returns a^e mod Order for e >= 0.
func Pow(a *big.Int, e *big.Int) *big.Int {
	return new(big.Int).Exp(a, e, Order)
}

// Inverse returns a^-1 mod Order, or ok=false if a is zero mod Order.
func Inverse(a *big.Int) (inv *big.Int, ok bool) {
	reduced := new(big.Int).Mod(a, Order)
	if reduced.Sign() == 0 {
		return nil, false
	}
	return new(big.Int).ModInverse(reduced, Order), true
}

// Random draws a uniformly random element of Fr from rng, which must
// behave like a cryptographically secure byte stream (e.g. crypto/rand.Reader
// or a seeded deterministic stream in tests).
func Random(rng io.Reader) (*big.Int, error) {
	// Oversample by 64 extra bits before reducing, so the modular bias
	// introduced by Order not dividing 2^k evenly is negligible.
	byteLen := (Order.BitLen()+64)/8 + 1
	buf := make([]byte, byteLen)
	if _, err := io.ReadFull(rng, buf); err != nil {
		return nil, err
	}
	return new(big.Int).Mod(new(big.Int).SetBytes(buf), Order), nil
}

// RandomG1 draws a uniformly random point of G1 by scaling the generator
// with a uniform Fr scalar, the same way a random cyclic-group element is
// sampled throughout this tree.
func RandomG1(rng io.Reader) (*bn256.G1, error) {
	s, err := Random(rng)
	if err != nil {
		return nil, err
	}
	return new(bn256.G1).ScalarBaseMult(s), nil
}

// RandomG2 draws a uniformly random point of G2 by scaling the generator
// with a uniform Fr scalar.
func RandomG2(rng io.Reader) (*bn256.G2, error) {
	s, err := Random(rng)
	if err != nil {
		return nil, err
	}
	return new(bn256.G2).ScalarBaseMult(s), nil
}
