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

// Package pecdk implements public-key encryption with conjunctive and
// disjunctive keyword search: a data owner encrypts a fixed-size keyword
// vector per record, and issues AND/OR trapdoors that let an untrusted
// server test membership without learning the keywords.
package pecdk

import (
	"bytes"
	"io"
	"math/big"
	"sync"

	"github.com/fentec-project/bn256"
	"github.com/fentec-project/pecdk/data"
	"github.com/fentec-project/pecdk/errs"
	"github.com/fentec-project/pecdk/hashes"
	"github.com/fentec-project/pecdk/internal/frmath"
	"github.com/fentec-project/pecdk/internal/shuffle"
	"github.com/fentec-project/pecdk/poly"
	"github.com/fentec-project/pecdk/sample"
)

// tag domain-separates PECDK keyword hashes from other hash-to-field
// consumers in this tree.
var tag = []byte("pecdk_hash_to_field")

// SearchSym selects whether a Trapdoor tests a conjunctive (AND) or
// disjunctive (OR) match against a Ciphertext.
type SearchSym int

const (
	AND SearchSym = iota
	OR
)

// SecretKey holds the scheme's master secret. It is kept by the party that
// issues trapdoors; n bounds how many keywords any ciphertext or trapdoor
// derived from this key may carry.
type SecretKey struct {
	n      int
	alphas data.Vector
	betas  data.Vector
	theta  *big.Int
	g1     *bn256.G1
}

// PublicKey is derived from a SecretKey and handed to encryptors. Each
// derivation samples a fresh g2, so independently-derived public keys from
// the same secret key are unlinkable.
type PublicKey struct {
	n  int
	g2 *bn256.G2
	x  data.VectorG2
	y  data.VectorG2
	z  *bn256.G2
	mu *bn256.GT
}

// N reports the keyword-vector size this public key's ciphertexts require.
func (pk *PublicKey) N() int { return pk.n }

// Ciphertext carries n keyword slots, each contributing a row of n+1 G2
// pairs plus a target-group digest.
type Ciphertext struct {
	n int
	a []data.VectorG2
	b []data.VectorG2
	c data.VectorG2
	d [][]byte
}

// Trapdoor represents a query of at most n keywords, combined by sym.
type Trapdoor struct {
	t1  data.VectorG1
	t2  data.VectorG1
	t3  *big.Int
	sym SearchSym
}

// GenerateSecretKey samples a fresh SecretKey supporting up to n keywords
// per ciphertext or trapdoor.
func GenerateSecretKey(rng io.Reader, n int) (*SecretKey, error) {
	if n < 1 {
		return nil, errs.NewInvalidArgument("n must be at least 1")
	}

	alphas, err := data.NewRandomVector(n+1, sample.NewUniform(bn256.Order), rng)
	if err != nil {
		return nil, err
	}
	betas, err := data.NewRandomVector(n+1, sample.NewUniform(bn256.Order), rng)
	if err != nil {
		return nil, err
	}
	theta, err := frmath.Random(rng)
	if err != nil {
		return nil, err
	}
	g1, err := frmath.RandomG1(rng)
	if err != nil {
		return nil, err
	}

	return &SecretKey{n: n, alphas: alphas, betas: betas, theta: theta, g1: g1}, nil
}

// N reports the keyword-vector size this secret key was generated for.
func (sk *SecretKey) N() int { return sk.n }

// PublicKey derives a fresh PublicKey from sk.
func (sk *SecretKey) PublicKey(rng io.Reader) (*PublicKey, error) {
	g2, err := frmath.RandomG2(rng)
	if err != nil {
		return nil, err
	}

	x := make(data.VectorG2, len(sk.alphas))
	for j, alpha := range sk.alphas {
		x[j] = new(bn256.G2).ScalarMult(g2, alpha)
	}
	y := make(data.VectorG2, len(sk.betas))
	for j, beta := range sk.betas {
		y[j] = new(bn256.G2).ScalarMult(g2, beta)
	}
	z := new(bn256.G2).ScalarMult(g2, sk.theta)
	mu := bn256.Pair(sk.g1, g2)

	return &PublicKey{n: sk.n, g2: g2, x: x, y: y, z: z, mu: mu}, nil
}

// Encrypt produces a Ciphertext for a keyword set of exactly pk.N()
// entries. The keywords are shuffled with randomness from rng before being
// encoded, so their final slot order carries no information.
func (pk *PublicKey) Encrypt(keywords [][]byte, rng io.Reader) (*Ciphertext, error) {
	if len(keywords) != pk.n {
		return nil, errs.NewInvalidArgument("encrypt requires exactly n keywords")
	}

	shuffled, err := shuffle.Bytes(keywords, rng)
	if err != nil {
		return nil, err
	}

	n := pk.n
	rs := make([]*big.Int, n)
	for i := range rs {
		rs[i], err = frmath.Random(rng)
		if err != nil {
			return nil, err
		}
	}
	u, err := data.NewRandomMatrix(n, n+1, sample.NewUniform(bn256.Order), rng)
	if err != nil {
		return nil, err
	}

	a := make([]data.VectorG2, n)
	b := make([]data.VectorG2, n)
	c := make(data.VectorG2, n)
	d := make([][]byte, n)

	hashErrs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			r := rs[i]
			hw, err := hashes.Field(shuffled[i], tag)
			if err != nil {
				hashErrs[i] = err
				return
			}

			rowA := make(data.VectorG2, n+1)
			rowB := make(data.VectorG2, n+1)
			for j := 0; j <= n; j++ {
				xr := new(bn256.G2).ScalarMult(pk.x[j], r)
				hpow := frmath.Pow(hw, big.NewInt(int64(j)))
				rhu := frmath.Add(frmath.Mul(r, hpow), u[i][j])
				gPoint := new(bn256.G2).ScalarMult(pk.g2, rhu)
				rowA[j] = new(bn256.G2).Add(xr, gPoint)
				rowB[j] = new(bn256.G2).ScalarMult(pk.y[j], u[i][j])
			}
			a[i] = rowA
			b[i] = rowB
			c[i] = new(bn256.G2).ScalarMult(pk.z, r)

			muPow := new(bn256.GT).ScalarMult(pk.mu, r)
			digest, err := hashes.Digest(muPow)
			if err != nil {
				hashErrs[i] = err
				return
			}
			d[i] = digest
		}(i)
	}
	wg.Wait()

	for _, err := range hashErrs {
		if err != nil {
			return nil, err
		}
	}

	return &Ciphertext{n: n, a: a, b: b, c: c, d: d}, nil
}

// GenTrapdoor derives a Trapdoor for a query of at most sk.N() keywords,
// combined by sym.
func (sk *SecretKey) GenTrapdoor(keywords [][]byte, sym SearchSym, rng io.Reader) (*Trapdoor, error) {
	m := len(keywords)
	if m > sk.n {
		return nil, errs.NewInvalidArgument("trapdoor keyword count exceeds n")
	}

	shuffled, err := shuffle.Bytes(keywords, rng)
	if err != nil {
		return nil, err
	}

	wordHashes := make([]*big.Int, m)
	for k, w := range shuffled {
		h, err := hashes.Field(w, tag)
		if err != nil {
			return nil, err
		}
		wordHashes[k] = h
	}

	coefficients := poly.FromRoots(wordHashes)

	u, err := frmath.Random(rng)
	if err != nil {
		return nil, err
	}

	denominator := big.NewInt(0)
	for i := 0; i <= m; i++ {
		val := frmath.Mul(u, sk.theta)
		val = frmath.Add(val, sk.alphas[i])
		val = frmath.Mul(val, coefficients[i])
		denominator = frmath.Add(denominator, val)
	}
	denominatorInv, ok := frmath.Inverse(denominator)
	if !ok {
		return nil, errs.NewInverseFailure("trapdoor denominator", denominator.Text(16))
	}

	t1 := make(data.VectorG1, m+1)
	t2 := make(data.VectorG1, m+1)
	for j := 0; j <= m; j++ {
		betaInv, ok := frmath.Inverse(sk.betas[j])
		if !ok {
			return nil, errs.NewInverseFailure("trapdoor beta", sk.betas[j].Text(16))
		}
		scalar := frmath.Mul(coefficients[j], denominatorInv)
		t1[j] = new(bn256.G1).ScalarMult(sk.g1, scalar)
		t2[j] = new(bn256.G1).ScalarMult(t1[j], betaInv)
	}

	return &Trapdoor{t1: t1, t2: t2, t3: u, sym: sym}, nil
}

// Test reports whether ct's keyword set satisfies td's query.
func (td *Trapdoor) Test(ct *Ciphertext) (bool, error) {
	n := ct.n
	m := len(td.t1) - 1

	digests := make([][]byte, n)
	testErrs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			cPowed := new(bn256.G2).ScalarMult(ct.c[i], td.t3)

			l := new(bn256.GT).ScalarBaseMult(big.NewInt(0))
			for j := 0; j <= m; j++ {
				point := new(bn256.G2).Add(ct.a[i][j], cPowed)
				paired := bn256.Pair(td.t1[j], point)
				l = new(bn256.GT).Add(l, paired)
			}

			r := new(bn256.GT).ScalarBaseMult(big.NewInt(0))
			for j := 0; j <= m; j++ {
				paired := bn256.Pair(td.t2[j], ct.b[i][j])
				r = new(bn256.GT).Add(r, paired)
			}

			rIdentity := new(bn256.GT).ScalarBaseMult(big.NewInt(0))
			if r.String() == rIdentity.String() {
				testErrs[i] = errs.NewInverseFailure("test R_i", "0")
				return
			}
			rInv := new(bn256.GT).Neg(r)

			s := new(bn256.GT).Add(l, rInv)
			digest, err := hashes.Digest(s)
			if err != nil {
				testErrs[i] = err
				return
			}
			digests[i] = digest
		}(i)
	}
	wg.Wait()

	for _, err := range testErrs {
		if err != nil {
			return false, err
		}
	}

	matches := 0
	for i := 0; i < n; i++ {
		if bytes.Equal(digests[i], ct.d[i]) {
			matches++
		}
	}

	switch td.sym {
	case AND:
		return matches == m, nil
	case OR:
		return matches > 0, nil
	default:
		return false, errs.NewInvalidArgument("unknown search symbol")
	}
}
