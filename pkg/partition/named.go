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
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"math/big"
)

// RemainderGroupName is the name of the group that NamedEnumerator adds
// when the requested group sizes do not cover all the elements.
const RemainderGroupName = "_rest"

// NamedEnumerator is an Enumerator whose groups are identified by name
// rather than by position. Groups are ordered by name, so the first grouping
// assigns the first elements to the group whose name comes first.
type NamedEnumerator[K any] struct {
	enumerator *Enumerator[K]
	names      []string
}

// NewNamedEnumerator returns a NamedEnumerator over the elements provided as argument,
// with groupSizes mapping each group name to its size.
func NewNamedEnumerator[K any](elements []K, groupSizes map[string]int, opts ...Option) (*NamedEnumerator[K], error) {
	if _, ok := groupSizes[RemainderGroupName]; ok {
		return nil, ConfigurationErr.Errorf("group name %q is reserved", RemainderGroupName)
	}

	names := maps.Keys(groupSizes)
	slices.Sort(names)
	sizes := make([]int, len(names))
	for i, name := range names {
		sizes[i] = groupSizes[name]
	}

	enumerator, err := NewEnumerator(elements, sizes, opts...)
	if err != nil {
		return nil, err
	}
	if enumerator.HasSyntheticGroup() {
		names = append(names, RemainderGroupName)
	}

	return &NamedEnumerator[K]{
		enumerator: enumerator,
		names:      names,
	}, nil
}

// Next returns the next grouping and true, or nil and false once all the
// groupings have been returned.
func (e *NamedEnumerator[K]) Next() (map[string][]K, bool) {
	grouping, ok := e.enumerator.Next()
	if !ok {
		return nil, false
	}
	res := make(map[string][]K, len(grouping))
	for i, group := range grouping {
		res[e.names[i]] = group
	}
	return res, true
}

// Reset restarts the enumeration from the first grouping.
func (e *NamedEnumerator[K]) Reset() {
	e.enumerator.Reset()
}

// Names returns the names of the groups in the order used for enumerating them.
func (e *NamedEnumerator[K]) Names() []string {
	return slices.Clone(e.names)
}

// Count returns the number of groupings returned by a full enumeration.
func (e *NamedEnumerator[K]) Count() *big.Int {
	return e.enumerator.Count()
}
