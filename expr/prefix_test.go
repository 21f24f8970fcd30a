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
	"testing"

	"github.com/fentec-project/pecdk/pecdk"
	"github.com/fentec-project/pecdk/sample"
	"github.com/stretchr/testify/assert"
)

func TestPrefixSearchHit(t *testing.T) {
	rng := sample.NewDeterministicStream(seed)
	n := 5
	sk, err := pecdk.GenerateSecretKey(rng, n)
	assert.NoError(t, err)
	pk, err := sk.PublicKey(rng)
	assert.NoError(t, err)

	ct, err := EncryptPrefixSearch(pk, "region", []byte("abcde"), rng)
	assert.NoError(t, err)
	td, err := TrapdoorPrefixSearch(sk, "region", []byte("abc"), rng)
	assert.NoError(t, err)

	match, err := td.Test(ct)
	assert.NoError(t, err)
	assert.True(t, match)
}

func TestPrefixSearchMiss(t *testing.T) {
	rng := sample.NewDeterministicStream(seed)
	n := 5
	sk, err := pecdk.GenerateSecretKey(rng, n)
	assert.NoError(t, err)
	pk, err := sk.PublicKey(rng)
	assert.NoError(t, err)

	ct, err := EncryptPrefixSearch(pk, "region", []byte("abcde"), rng)
	assert.NoError(t, err)
	td, err := TrapdoorPrefixSearch(sk, "region", []byte("de"), rng)
	assert.NoError(t, err)

	match, err := td.Test(ct)
	assert.NoError(t, err)
	assert.False(t, match)
}

func TestPrefixSearchExact(t *testing.T) {
	rng := sample.NewDeterministicStream(seed)
	n := 5
	sk, err := pecdk.GenerateSecretKey(rng, n)
	assert.NoError(t, err)
	pk, err := sk.PublicKey(rng)
	assert.NoError(t, err)

	ct, err := EncryptPrefixSearch(pk, "region", []byte("abcde"), rng)
	assert.NoError(t, err)

	tdShort, err := TrapdoorPrefixSearchExact(sk, "region", []byte("abcd"), rng)
	assert.NoError(t, err)
	matchShort, err := tdShort.Test(ct)
	assert.NoError(t, err)
	assert.False(t, matchShort)

	tdFull, err := TrapdoorPrefixSearchExact(sk, "region", []byte("abcde"), rng)
	assert.NoError(t, err)
	matchFull, err := tdFull.Test(ct)
	assert.NoError(t, err)
	assert.True(t, matchFull)
}

func TestPrefixSearchTooManyKeywords(t *testing.T) {
	rng := sample.NewDeterministicStream(seed)
	n := 3
	sk, err := pecdk.GenerateSecretKey(rng, n)
	assert.NoError(t, err)
	pk, err := sk.PublicKey(rng)
	assert.NoError(t, err)

	_, err = EncryptPrefixSearch(pk, "region", []byte("abcde"), rng)
	assert.Error(t, err)
}
