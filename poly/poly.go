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

// Package poly builds the root polynomial a trapdoor evaluates a
// ciphertext's keyword hash against.
package poly

import (
	"math/big"

	"github.com/fentec-project/pecdk/internal/frmath"
)

// FromRoots returns the coefficients of prod_i (x - roots[i]) over Fr,
// low-degree-first: the result has length len(roots)+1, and result[0] is
// the constant term. It builds the product incrementally, multiplying in
// one linear factor at a time, so the whole computation is O(len(roots)^2)
// scalar operations.
func FromRoots(roots []*big.Int) []*big.Int {
	coeffs := []*big.Int{big.NewInt(1)}

	for _, r := range roots {
		next := make([]*big.Int, len(coeffs)+1)
		for i := range next {
			next[i] = big.NewInt(0)
		}
		for i, c := range coeffs {
			next[i+1] = frmath.Add(next[i+1], c)
			next[i] = frmath.Sub(next[i], frmath.Mul(c, r))
		}
		coeffs = next
	}

	return coeffs
}

// EvalAt evaluates the polynomial given by coeffs (low-degree-first) at x,
// over Fr.
func EvalAt(coeffs []*big.Int, x *big.Int) *big.Int {
	result := big.NewInt(0)
	power := big.NewInt(1)
	for _, c := range coeffs {
		term := frmath.Mul(c, power)
		result = frmath.Add(result, term)
		power = frmath.Mul(power, x)
	}

	return result
}
