// Copyright 2024 The h3go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package h3go

import "math"

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func maxInt(a, b int) int {
	if a < b {
		return b
	}
	return a
}

// _ipow does integer exponentiation efficiently. Taken from StackOverflow.
//
// Return the exponentiated value
func _ipow(base, exp int64) int64 {
	var result int64 = 1
	for exp > 0 {
		if exp&1 > 0 {
			result *= base
		}
		exp >>= 1
		base *= base
	}

	return result
}

// _sumInt32sOverflows reports whether a + b overflows the int32 range.
func _sumInt32sOverflows(a, b int32) bool {
	if a > 0 && b > math.MaxInt32-a {
		return true
	}
	if a < 0 && b < math.MinInt32-a {
		return true
	}
	return false
}

// _subInt32sOverflows reports whether a - b overflows the int32 range.
func _subInt32sOverflows(a, b int32) bool {
	if a >= 0 && b < a-math.MaxInt32 {
		return true
	}
	if a < 0 && b > a-math.MinInt32 {
		return true
	}
	return false
}
