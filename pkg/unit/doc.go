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

// Package unit models systemd unit files and selects the ones a user can
// toggle.
//
// # Classification
//
// A Unit is built from the two values the manager reports for every unit
// file: its path and its state string.
//
//	u, err := unit.New("/etc/systemd/system/sshd.service", "enabled")
//	// u.Name  == "sshd.service"
//	// u.Type  == unit.TypeService   (from the extension)
//	// u.State == unit.StateEnabled  (from the first character)
//
// Both derivations are total: unrecognized extensions give TypeUnknown and
// unrecognized states give StateUnknown.
//
// # Togglable Units
//
// Only enabled or disabled units can be toggled. Static, masked and unknown
// units are left out, and so are templates such as getty@.service:
//
//	services := unit.CollectTogglableServices(units)
//	sockets := unit.CollectTogglableSockets(units)
//	timers := unit.CollectTogglableTimers(units)
//
// Filters keep input order. Sort gives the case-insensitive name order used
// for listings.
package unit
