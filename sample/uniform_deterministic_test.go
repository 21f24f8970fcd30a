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

package sample_test

import (
	"testing"

	"github.com/fentec-project/pecdk/sample"
	"github.com/stretchr/testify/assert"
)

func TestDeterministicStreamReproducible(t *testing.T) {
	seed := []byte{0x59, 0x62, 0xbe, 0x5d, 0x76, 0x3d, 0x31, 0x8d}

	s1 := sample.NewDeterministicStream(seed)
	s2 := sample.NewDeterministicStream(seed)

	buf1 := make([]byte, 200)
	buf2 := make([]byte, 200)
	_, err := s1.Read(buf1)
	assert.NoError(t, err)
	_, err = s2.Read(buf2)
	assert.NoError(t, err)

	assert.Equal(t, buf1, buf2)
}

func TestDeterministicStreamIndependentOfChunking(t *testing.T) {
	seed := []byte("another-seed")

	whole := sample.NewDeterministicStream(seed)
	wholeBuf := make([]byte, 128)
	_, err := whole.Read(wholeBuf)
	assert.NoError(t, err)

	chunked := sample.NewDeterministicStream(seed)
	chunkedBuf := make([]byte, 128)
	_, err = chunked.Read(chunkedBuf[:37])
	assert.NoError(t, err)
	_, err = chunked.Read(chunkedBuf[37:])
	assert.NoError(t, err)

	assert.Equal(t, wholeBuf, chunkedBuf)
}

func TestDeterministicStreamDifferentSeeds(t *testing.T) {
	s1 := sample.NewDeterministicStream([]byte("seed-a"))
	s2 := sample.NewDeterministicStream([]byte("seed-b"))

	buf1 := make([]byte, 64)
	buf2 := make([]byte, 64)
	_, _ = s1.Read(buf1)
	_, _ = s2.Read(buf2)

	assert.NotEqual(t, buf1, buf2)
}
