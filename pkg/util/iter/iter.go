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

package iter

// Generator produces a sequence of values, one per call to Next.
// Next returns false once the sequence is over.
type Generator[V any] interface {
	Next() (V, bool)
}

// ForEach calls `f` providing as argument each value produced by `g`.
// It stops iterating if `f` returns either `false` or an error, and
// it returns an error if any call to `f` returns error.
func ForEach[V any](g Generator[V], f func(v V) (bool, error)) error {
	for v, ok := g.Next(); ok; v, ok = g.Next() {
		continueIterating, err := f(v)
		if err != nil {
			return err
		}
		if !continueIterating {
			return nil
		}
	}
	return nil
}

// Collect returns the values produced by `g`, at most limit of them.
// A limit <= 0 collects all the values.
func Collect[V any](g Generator[V], limit int) []V {
	res := make([]V, 0)
	_ = ForEach(g, func(v V) (bool, error) {
		res = append(res, v)
		return limit <= 0 || len(res) < limit, nil
	})
	return res
}
