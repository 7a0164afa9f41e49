// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntList(t *testing.T) {
	var l intList
	require.NoError(t, l.Set("1,-2"))
	require.NoError(t, l.Set("3"))
	assert.Equal(t, intList{1, -2, 3}, l)
	assert.Equal(t, "1,-2,3", l.String())
	assert.Error(t, l.Set("a"))
}

func TestPatchList(t *testing.T) {
	var l patchList
	require.NoError(t, l.Set("1=12, 2=2"))
	assert.Equal(t, patchList{{1, 12}, {2, 2}}, l)
	assert.Equal(t, "1=12,2=2", l.String())
	assert.Error(t, l.Set("1"))
	assert.Error(t, l.Set("x=1"))
	assert.Error(t, l.Set("1=y"))
}

func TestReadInts(t *testing.T) {
	var prompt bytes.Buffer
	r := bufio.NewReader(strings.NewReader("\nfoo\n1 2,3\n4"))
	v, err := readInts(r, &prompt)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, v)
	v, err = readInts(r, &prompt)
	require.NoError(t, err)
	assert.Equal(t, []int64{4}, v)
	_, err = readInts(r, &prompt)
	assert.Error(t, err)
	assert.Equal(t, 5, strings.Count(prompt.String(), "? "), prompt.String())
}
