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

// FieldMap maps a field name to its value, both as raw bytes. Go maps
// can't key on []byte, so field names travel as string; callers that
// need binary field names can use string(rawBytes) on both sides.
type FieldMap map[string][]byte

func fieldKeywords(regionName string, fields FieldMap, present bool) [][]byte {
	region := []byte(regionName)
	keywords := make([][]byte, 0, len(fields))
	for field, val := range fields {
		if present {
			keywords = append(keywords, concatBytes(region, []byte{0x01}, []byte(field), val))
		}
	}
	return keywords
}

// EncryptFieldSearch builds a Ciphertext over fields, padding up
// to pk.N() entries with the absent sentinel. The same ciphertext
// serves both AND and OR trapdoors; only the trapdoor's symbol selects
// the predicate.
func EncryptFieldSearch(pk *pecdk.PublicKey, regionName string, fields FieldMap, rng io.Reader) (*pecdk.Ciphertext, error) {
	n := pk.N()
	if len(fields) > n {
		return nil, errs.NewTooManyKeywords(len(fields), n)
	}

	keywords := fieldKeywords(regionName, fields, true)
	region := []byte(regionName)
	for len(keywords) < n {
		keywords = append(keywords, concatBytes(region, []byte{0x00}))
	}

	return pk.Encrypt(keywords, rng)
}

// TrapdoorFieldAnd builds a conjunctive trapdoor requiring every entry
// of fields to be present in the matched ciphertext.
func TrapdoorFieldAnd(sk *pecdk.SecretKey, regionName string, fields FieldMap, rng io.Reader) (*pecdk.Trapdoor, error) {
	return trapdoorFieldSearch(sk, regionName, fields, pecdk.AND, rng)
}

// TrapdoorFieldOr builds a disjunctive trapdoor matching if any entry
// of fields is present in the ciphertext.
func TrapdoorFieldOr(sk *pecdk.SecretKey, regionName string, fields FieldMap, rng io.Reader) (*pecdk.Trapdoor, error) {
	return trapdoorFieldSearch(sk, regionName, fields, pecdk.OR, rng)
}

func trapdoorFieldSearch(sk *pecdk.SecretKey, regionName string, fields FieldMap, sym pecdk.SearchSym, rng io.Reader) (*pecdk.Trapdoor, error) {
	n := sk.N()
	if len(fields) > n {
		return nil, errs.NewTooManyKeywords(len(fields), n)
	}

	keywords := fieldKeywords(regionName, fields, true)
	return sk.GenTrapdoor(keywords, sym, rng)
}
