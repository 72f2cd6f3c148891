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

// initialLabels returns the smallest labeling compatible with groupSizes:
// label 0 repeated groupSizes[0] times, then label 1, and so on.
func initialLabels(groupSizes []int, length int) []int {
	labels := make([]int, 0, length)
	for label, size := range groupSizes {
		for i := 0; i < size; i++ {
			labels = append(labels, label)
		}
	}
	return labels
}

// nextLabels rearranges labels in place into the next lexicographically
// greater sequence with the same multiset of values.
// It returns false, leaving labels untouched, if labels is already the
// greatest arrangement.
func nextLabels(labels []int) bool {
	n := len(labels)

	// Pivot: rightmost position smaller than its successor
	i := n - 2
	for i >= 0 && labels[i] >= labels[i+1] {
		i--
	}
	if i < 0 {
		return false
	}

	// The suffix after the pivot is non-increasing, so the rightmost value
	// greater than the pivot is also the smallest one
	j := n - 1
	for labels[j] <= labels[i] {
		j--
	}
	labels[i], labels[j] = labels[j], labels[i]

	// The swap keeps the suffix non-increasing, reversing it sorts it
	for l, r := i+1, n-1; l < r; l, r = l+1, r-1 {
		labels[l], labels[r] = labels[r], labels[l]
	}

	return true
}
