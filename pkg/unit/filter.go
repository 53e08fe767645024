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

// CollectTogglable returns the units of type t that are enabled or disabled
// and are not templates, in input order.
func CollectTogglable(units []Unit, t Type) []Unit {
	result := make([]Unit, 0)

	for _, u := range units {
		if u.Type == t && u.Togglable() {
			result = append(result, u)
		}
	}

	return result
}

// CollectTogglableServices returns the togglable .service units.
func CollectTogglableServices(units []Unit) []Unit {
	return CollectTogglable(units, TypeService)
}

// CollectTogglableSockets returns the togglable .socket units.
func CollectTogglableSockets(units []Unit) []Unit {
	return CollectTogglable(units, TypeSocket)
}

// CollectTogglableTimers returns the togglable .timer units.
func CollectTogglableTimers(units []Unit) []Unit {
	return CollectTogglable(units, TypeTimer)
}
