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

	"github.com/fentec-project/pecdk/errs"
	"github.com/fentec-project/pecdk/pecdk"
)

func prefixPresentKeyword(region []byte, idx int, b byte) []byte {
	return concatBytes(region, beUint64(uint64(idx)), []byte{0x01, b})
}

func prefixAbsentKeyword(region []byte, idx int) []byte {
	return concatBytes(region, beUint64(uint64(idx)), []byte{0x00, 0x00})
}

// EncryptPrefixSearch builds a Ciphertext over the bytes of s, padding
// up to pk.N() entries with a position-tagged absent sentinel.
func EncryptPrefixSearch(pk *pecdk.PublicKey, regionName string, s []byte, rng io.Reader) (*pecdk.Ciphertext, error) {
	n := pk.N()
	if len(s) > n {
		return nil, errs.NewTooManyKeywords(len(s), n)
	}

	region := []byte(regionName)
	keywords := make([][]byte, 0, n)
	for i, b := range s {
		keywords = append(keywords, prefixPresentKeyword(region, i, b))
	}
	for i := len(s); i < n; i++ {
		keywords = append(keywords, prefixAbsentKeyword(region, i))
	}

	return pk.Encrypt(keywords, rng)
}

// TrapdoorPrefixSearch builds a conjunctive trapdoor matching any
// ciphertext string whose first len(p) bytes equal p.
func TrapdoorPrefixSearch(sk *pecdk.SecretKey, regionName string, p []byte, rng io.Reader) (*pecdk.Trapdoor, error) {
	n := sk.N()
	if len(p) > n {
		return nil, errs.NewTooManyKeywords(len(p), n)
	}

	region := []byte(regionName)
	keywords := make([][]byte, 0, len(p))
	for i, b := range p {
		keywords = append(keywords, prefixPresentKeyword(region, i, b))
	}

	return sk.GenTrapdoor(keywords, pecdk.AND, rng)
}

// TrapdoorPrefixSearchExact builds a conjunctive trapdoor that, unlike
// TrapdoorPrefixSearch, also forces the ciphertext string's length to
// equal len(s): it pads with the same absent sentinel the ciphertext
// encoder uses, so an AND over all n slots only succeeds when lengths
// match too.
func TrapdoorPrefixSearchExact(sk *pecdk.SecretKey, regionName string, s []byte, rng io.Reader) (*pecdk.Trapdoor, error) {
	n := sk.N()
	if len(s) > n {
		return nil, errs.NewTooManyKeywords(len(s), n)
	}

	region := []byte(regionName)
	keywords := make([][]byte, 0, n)
	for i, b := range s {
		keywords = append(keywords, prefixPresentKeyword(region, i, b))
	}
	for i := len(s); i < n; i++ {
		keywords = append(keywords, prefixAbsentKeyword(region, i))
	}

	return sk.GenTrapdoor(keywords, pecdk.AND, rng)
}
