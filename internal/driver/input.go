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
	"fmt"
	"strconv"
	"strings"
)

const groupSizesSeparator = ":"

// ParseGroupSizes parses a colon-separated list of group sizes, such as "3:2".
// An empty string results in an empty list.
func ParseGroupSizes(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []int{}, nil
	}
	parts := strings.Split(s, groupSizesSeparator)
	res := make([]int, len(parts))
	for i, part := range parts {
		size, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid group size %q: %w", part, err)
		}
		if size < 0 {
			return nil, fmt.Errorf("invalid group size %q: must be non-negative", part)
		}
		res[i] = size
	}
	return res, nil
}

// Alphabet returns n distinct element names: "a" to "z", then "aa", "ab", and so on.
func Alphabet(n int) []string {
	res := make([]string, n)
	for i := range res {
		res[i] = letters(i)
	}
	return res
}

func letters(i int) string {
	var b []byte
	for i++; i > 0; i = (i - 1) / 26 {
		b = append(b, byte('a'+(i-1)%26))
	}
	for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
		b[l], b[r] = b[r], b[l]
	}
	return string(b)
}
