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

var seed = []byte{0x59, 0x62, 0xbe, 0x5d, 0x76, 0x3d, 0x31, 0x8d,
	0x17, 0xdb, 0x37, 0x32, 0x54, 0x06, 0xbc, 0xe5}

func TestFieldAndValidCase(t *testing.T) {
	rng := sample.NewDeterministicStream(seed)
	n := 5
	sk, err := pecdk.GenerateSecretKey(rng, n)
	assert.NoError(t, err)
	pk, err := sk.PublicKey(rng)
	assert.NoError(t, err)

	fields := FieldMap{
		"name":    []byte("alice"),
		"city":    []byte("ljubljana"),
		"dept":    []byte("engineering"),
		"project": []byte("pecdk"),
		"role":    []byte("owner"),
	}

	ct, err := EncryptFieldSearch(pk, "region", fields, rng)
	assert.NoError(t, err)
	td, err := TrapdoorFieldAnd(sk, "region", fields, rng)
	assert.NoError(t, err)

	match, err := td.Test(ct)
	assert.NoError(t, err)
	assert.True(t, match)
}

func TestFieldOrValidCaseSingleField(t *testing.T) {
	rng := sample.NewDeterministicStream(seed)
	n := 5
	sk, err := pecdk.GenerateSecretKey(rng, n)
	assert.NoError(t, err)
	pk, err := sk.PublicKey(rng)
	assert.NoError(t, err)

	fields := FieldMap{
		"name":    []byte("alice"),
		"city":    []byte("ljubljana"),
		"dept":    []byte("engineering"),
		"project": []byte("pecdk"),
		"role":    []byte("owner"),
	}

	ct, err := EncryptFieldSearch(pk, "region", fields, rng)
	assert.NoError(t, err)

	query := FieldMap{"city": []byte("ljubljana")}
	td, err := TrapdoorFieldOr(sk, "region", query, rng)
	assert.NoError(t, err)

	match, err := td.Test(ct)
	assert.NoError(t, err)
	assert.True(t, match)
}

func TestFieldAndNonMatch(t *testing.T) {
	rng := sample.NewDeterministicStream(seed)
	n := 5
	sk, err := pecdk.GenerateSecretKey(rng, n)
	assert.NoError(t, err)
	pk, err := sk.PublicKey(rng)
	assert.NoError(t, err)

	fields := FieldMap{
		"name":    []byte("alice"),
		"city":    []byte("ljubljana"),
		"dept":    []byte("engineering"),
		"project": []byte("pecdk"),
		"role":    []byte("owner"),
	}

	ct, err := EncryptFieldSearch(pk, "region", fields, rng)
	assert.NoError(t, err)

	query := FieldMap{"city": []byte("maribor")}
	td, err := TrapdoorFieldAnd(sk, "region", query, rng)
	assert.NoError(t, err)

	match, err := td.Test(ct)
	assert.NoError(t, err)
	assert.False(t, match)
}

func TestFieldSearchTooManyKeywords(t *testing.T) {
	rng := sample.NewDeterministicStream(seed)
	n := 2
	sk, err := pecdk.GenerateSecretKey(rng, n)
	assert.NoError(t, err)
	pk, err := sk.PublicKey(rng)
	assert.NoError(t, err)

	fields := FieldMap{
		"a": []byte("1"),
		"b": []byte("2"),
		"c": []byte("3"),
	}

	_, err = EncryptFieldSearch(pk, "region", fields, rng)
	assert.Error(t, err)
}
