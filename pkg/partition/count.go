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
	"math/big"
)

// Count returns the number of distinct groupings of sum(groupSizes) elements
// into groups of the provided sizes, that is the multinomial coefficient
// n! / (groupSizes[0]! * groupSizes[1]! * ...).
//
// Count returns 0 if the sizes sum up to 0 or any of them is negative,
// consistently with an Enumerator over an empty list of elements that
// never returns any grouping.
func Count(groupSizes []int) *big.Int {
	var total int64
	for _, size := range groupSizes {
		if size < 0 {
			return big.NewInt(0)
		}
		total += int64(size)
	}
	if total == 0 {
		return big.NewInt(0)
	}

	res := big.NewInt(1)
	binomial := new(big.Int)
	remaining := total
	for _, size := range groupSizes {
		res.Mul(res, binomial.Binomial(remaining, int64(size)))
		remaining -= int64(size)
	}
	return res
}
