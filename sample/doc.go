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

// Package sample includes samplers for drawing random *big.Int values
// from an explicit, caller-supplied randomness stream.
//
// Every sampler here takes its io.Reader as an explicit argument rather
// than reaching for a package-level source: reproducibility in tests and
// the ability to plug in a hardened entropy source both depend on
// randomness never being implicit. DeterministicStream is the io.Reader
// implementation test fixtures use to get reproducible ciphertexts and
// trapdoors from a fixed seed.
package sample
