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

// IterGroupings calls `f` providing as argument each possible grouping of
// `elements` into groups of the sizes provided as argument.
// It stops iterating if `f` returns either `false` or an error, and
// it returns an error if any call to `f` returns error or if the
// group sizes are not valid.
func IterGroupings[K any](elements []K, groupSizes []int, f func(g Grouping[K]) (bool, error)) error {
	enumerator, err := NewEnumerator(elements, groupSizes)
	if err != nil {
		return err
	}
	for grouping, ok := enumerator.Next(); ok; grouping, ok = enumerator.Next() {
		continueIterating, err := f(grouping)
		if err != nil {
			return err
		}
		if !continueIterating {
			return nil
		}
	}
	return nil
}
