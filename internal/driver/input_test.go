/*
 * Copyright 2023 nebuly.com.
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

package driver

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestParseGroupSizes(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []int
		err      bool
	}{
		{name: "Empty string", input: "", expected: []int{}},
		{name: "Blank string", input: "  ", expected: []int{}},
		{name: "Single size", input: "4", expected: []int{4}},
		{name: "Default sizes", input: "3:2", expected: []int{3, 2}},
		{name: "Spaces and zeros", input: " 1 : 0 :2", expected: []int{1, 0, 2}},
		{name: "Not a number", input: "3:x", err: true},
		{name: "Missing size", input: "3::2", err: true},
		{name: "Negative size", input: "3:-1", err: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			sizes, err := ParseGroupSizes(tt.input)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, sizes)
		})
	}
}

func TestAlphabet(t *testing.T) {
	assert.Equal(t, []string{}, Alphabet(0))
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, Alphabet(5))

	letters := Alphabet(30)
	assert.Equal(t, "z", letters[25])
	assert.Equal(t, []string{"aa", "ab", "ac", "ad"}, letters[26:])

	long := Alphabet(703)
	assert.Equal(t, "zz", long[701])
	assert.Equal(t, "aaa", long[702])
}
