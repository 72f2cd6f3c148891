/*
 * Copyright 2022 Nebuly.ai
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

package util

import (
	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/constraints"
	"os"
)

func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Sum returns the sum of the values provided as argument, 0 if none is provided.
func Sum[K constraints.Integer](values ...K) K {
	var res K
	for _, v := range values {
		res += v
	}
	return res
}

func InSlice[K comparable](item K, slice []K) bool {
	for _, i := range slice {
		if i == item {
			return true
		}
	}
	return false
}

// UnorderedEqual returns true if the two slices contain the same elements,
// with the same number of occurrences, regardless of their order.
func UnorderedEqual[K any](first []K, second []K) bool {
	firstLen := len(first)
	secondLen := len(second)
	if firstLen != secondLen {
		return false
	}

	visited := make([]bool, firstLen)

	for i := 0; i < firstLen; i++ {
		found := false
		element := first[i]
		for j := 0; j < secondLen; j++ {
			if visited[j] {
				continue
			}
			if cmp.Equal(element, second[j]) {
				visited[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
