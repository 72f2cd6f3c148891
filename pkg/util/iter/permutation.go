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

import (
	"gonum.org/v1/gonum/stat/combin"
)

// PermutationGenerator generates all the permutations of a slice,
// treating every position as distinct even if it holds a repeated value.
type PermutationGenerator[K any] struct {
	generator      *combin.PermutationGenerator
	sourceSlice    []K
	sourceSliceLen int
}

func NewPermutationGenerator[K any](sourceSlice []K) *PermutationGenerator[K] {
	n := len(sourceSlice)
	p := &PermutationGenerator[K]{
		sourceSlice:    append(make([]K, 0, n), sourceSlice...),
		sourceSliceLen: n,
	}
	if n > 0 {
		p.generator = combin.NewPermutationGenerator(n, n)
	}
	return p
}

func (p *PermutationGenerator[K]) Next() ([]K, bool) {
	if p.generator == nil || !p.generator.Next() {
		return nil, false
	}
	perm := p.generator.Permutation(nil)
	res := make([]K, p.sourceSliceLen)
	for i, index := range perm {
		res[i] = p.sourceSlice[index]
	}
	return res, true
}
