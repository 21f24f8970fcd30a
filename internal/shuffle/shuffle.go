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

// Package shuffle draws the Fisher-Yates permutation that ciphertext and
// trapdoor keyword vectors are shuffled under, so that a slot's position
// carries no information about which keyword occupies it.
package shuffle

import (
	"io"
	"math/big"

	"github.com/fentec-project/pecdk/sample"
)

// Bytes returns a copy of words permuted by a Fisher-Yates shuffle driven
// by rng.
func Bytes(words [][]byte, rng io.Reader) ([][]byte, error) {
	shuffled := make([][]byte, len(words))
	copy(shuffled, words)

	for i := len(shuffled) - 1; i > 0; i-- {
		sampler := sample.NewUniform(big.NewInt(int64(i + 1)))
		j, err := sampler.Sample(rng)
		if err != nil {
			return nil, err
		}
		shuffled[i], shuffled[j.Int64()] = shuffled[j.Int64()], shuffled[i]
	}

	return shuffled, nil
}
