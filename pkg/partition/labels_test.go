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

package partition

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestInitialLabels(t *testing.T) {
	testCases := []struct {
		name       string
		groupSizes []int
		expected   []int
	}{
		{
			name:       "No groups",
			groupSizes: []int{},
			expected:   []int{},
		},
		{
			name:       "Groups filled in order",
			groupSizes: []int{2, 3},
			expected:   []int{0, 0, 1, 1, 1},
		},
		{
			name:       "Empty groups are skipped",
			groupSizes: []int{0, 2, 0, 1},
			expected:   []int{1, 1, 3},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			var length int
			for _, s := range tt.groupSizes {
				length += s
			}
			assert.Equal(t, tt.expected, initialLabels(tt.groupSizes, length))
		})
	}
}

func TestNextLabels(t *testing.T) {
	testCases := []struct {
		name     string
		labels   []int
		expected []int
		ok       bool
	}{
		{
			name:     "Empty sequence",
			labels:   []int{},
			expected: []int{},
			ok:       false,
		},
		{
			name:     "Single label",
			labels:   []int{0},
			expected: []int{0},
			ok:       false,
		},
		{
			name:     "All labels equal",
			labels:   []int{1, 1, 1},
			expected: []int{1, 1, 1},
			ok:       false,
		},
		{
			name:     "Pivot is the second-to-last position",
			labels:   []int{0, 0, 1, 1, 1},
			expected: []int{0, 1, 0, 1, 1},
			ok:       true,
		},
		{
			name:     "Suffix is reversed after the swap",
			labels:   []int{0, 1, 1, 1, 0},
			expected: []int{1, 0, 0, 1, 1},
			ok:       true,
		},
		{
			name:     "Rightmost greater value is picked among ties",
			labels:   []int{0, 2, 1, 1, 0},
			expected: []int{1, 0, 0, 1, 2},
			ok:       true,
		},
		{
			name:     "Last arrangement",
			labels:   []int{1, 1, 1, 0, 0},
			expected: []int{1, 1, 1, 0, 0},
			ok:       false,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			ok := nextLabels(tt.labels)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, tt.labels)
		})
	}
}

func TestNextLabels_ConservesLabelCounts(t *testing.T) {
	labels := initialLabels([]int{2, 0, 3, 1}, 6)
	expected := map[int]int{0: 2, 2: 3, 3: 1}
	for ok := true; ok; ok = nextLabels(labels) {
		counts := make(map[int]int)
		for _, l := range labels {
			counts[l]++
		}
		assert.Equal(t, expected, counts)
	}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "uninitialized", stateUninitialized.String())
	assert.Equal(t, "active", stateActive.String())
	assert.Equal(t, "exhausted", stateExhausted.String())
	assert.Equal(t, "unknown", state(42).String())
}
