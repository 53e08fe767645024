// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package unit

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Sort orders units by name, ignoring case. Units whose names fold to the
// same key are ordered by path.
func Sort(units []Unit) {
	fold := cases.Fold()
	keys := make(map[string]string, len(units))
	for _, u := range units {
		if _, ok := keys[u.Name]; !ok {
			keys[u.Name] = fold.String(u.Name)
		}
	}

	slices.SortStableFunc(units, func(a, b Unit) int {
		if c := strings.Compare(keys[a.Name], keys[b.Name]); c != 0 {
			return c
		}
		return strings.Compare(a.Path, b.Path)
	})
}
