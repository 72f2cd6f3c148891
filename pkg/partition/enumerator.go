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
	"github.com/go-logr/logr"
	"github.com/nebuly-ai/groupings/pkg/util"
	"math/big"
)

// Grouping is one assignment of the elements to the groups: Grouping[g]
// holds, in their original order, the elements assigned to group g.
type Grouping[K any] [][]K

// Sizes returns the number of elements of each group.
func (g Grouping[K]) Sizes() []int {
	res := make([]int, len(g))
	for i, group := range g {
		res[i] = len(group)
	}
	return res
}

type state int

const (
	stateUninitialized state = iota
	stateActive
	stateExhausted
)

func (s state) String() string {
	switch s {
	case stateUninitialized:
		return "uninitialized"
	case stateActive:
		return "active"
	case stateExhausted:
		return "exhausted"
	}
	return "unknown"
}

// Enumerator generates all the distinct ways of splitting a list of elements
// into a sequence of groups of fixed sizes. The order of the elements within
// a group is not significant, the order of the groups is.
//
// An Enumerator is not safe for concurrent use.
type Enumerator[K any] struct {
	elements   []K
	groupSizes []int
	synthetic  bool
	logger     logr.Logger

	state  state
	labels []int
}

// NewEnumerator returns an Enumerator over the elements provided as argument.
//
// If groupSizes sum up to less than the number of elements, an additional
// trailing group holding the remaining elements is appended to the groups.
// If they sum up to more than the number of elements, or any size is negative,
// a configuration error is returned.
func NewEnumerator[K any](elements []K, groupSizes []int, opts ...Option) (*Enumerator[K], error) {
	options := newOptions(opts...)

	sizes, synthetic, err := normalizeGroupSizes(len(elements), groupSizes)
	if err != nil {
		return nil, err
	}

	e := &Enumerator[K]{
		elements:   append(make([]K, 0, len(elements)), elements...),
		groupSizes: sizes,
		synthetic:  synthetic,
		logger:     options.logger,
		state:      stateUninitialized,
	}
	e.logger.V(1).Info(
		"enumerator created",
		"elements",
		len(e.elements),
		"groupSizes",
		e.groupSizes,
		"syntheticGroup",
		e.synthetic,
	)
	return e, nil
}

func normalizeGroupSizes(nElements int, groupSizes []int) ([]int, bool, error) {
	for i, size := range groupSizes {
		if size < 0 {
			return nil, false, ConfigurationErr.Errorf("group %d has negative size %d", i, size)
		}
	}

	total := util.Sum(groupSizes...)
	if total > nElements {
		return nil, false, ConfigurationErr.Errorf(
			"requested group sizes exceed available elements: %d > %d",
			total,
			nElements,
		)
	}

	sizes := make([]int, len(groupSizes), len(groupSizes)+1)
	copy(sizes, groupSizes)
	if total < nElements {
		return append(sizes, nElements-total), true, nil
	}
	return sizes, false, nil
}

// Next returns the next grouping and true, or nil and false once all the
// groupings have been returned. The first call after NewEnumerator or Reset
// returns the grouping in which the elements fill the groups in order.
//
// Every returned grouping is a new value that the caller is free to keep or
// modify.
func (e *Enumerator[K]) Next() (Grouping[K], bool) {
	switch e.state {
	case stateUninitialized:
		if len(e.elements) == 0 {
			e.setState(stateExhausted)
			return nil, false
		}
		e.labels = initialLabels(e.groupSizes, len(e.elements))
		e.setState(stateActive)
	case stateActive:
		if !nextLabels(e.labels) {
			e.labels = nil
			e.setState(stateExhausted)
			return nil, false
		}
	case stateExhausted:
		return nil, false
	}
	return e.grouping(), true
}

// Reset restarts the enumeration from the first grouping.
func (e *Enumerator[K]) Reset() {
	e.labels = nil
	e.setState(stateUninitialized)
}

// Len returns the number of elements being grouped.
func (e *Enumerator[K]) Len() int {
	return len(e.elements)
}

// GroupSizes returns the size of each group, including the trailing group
// added when the requested sizes do not cover all the elements.
func (e *Enumerator[K]) GroupSizes() []int {
	res := make([]int, len(e.groupSizes))
	copy(res, e.groupSizes)
	return res
}

// HasSyntheticGroup returns true if the last group was not requested
// by the caller but appended to cover the remaining elements.
func (e *Enumerator[K]) HasSyntheticGroup() bool {
	return e.synthetic
}

// Count returns the number of groupings returned by a full enumeration.
func (e *Enumerator[K]) Count() *big.Int {
	return Count(e.groupSizes)
}

func (e *Enumerator[K]) setState(s state) {
	if e.state == s {
		return
	}
	e.logger.V(1).Info("enumerator state changed", "from", e.state.String(), "to", s.String())
	e.state = s
}

func (e *Enumerator[K]) grouping() Grouping[K] {
	res := make(Grouping[K], len(e.groupSizes))
	for g, size := range e.groupSizes {
		res[g] = make([]K, 0, size)
	}
	for p, label := range e.labels {
		res[label] = append(res[label], e.elements[p])
	}
	return res
}
