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

package defaults

import "time"

// Bus timeouts for calls to the systemd manager.
const (
	// BusCallTimeout bounds a single manager round trip, connection setup
	// included. A caller context may shorten it but never extend it.
	BusCallTimeout = 4000 * time.Millisecond
)

// Job settings for StartUnit and StopUnit.
const (
	// JobMode is passed to the manager with every start/stop request.
	// "fail" refuses the request when it conflicts with a queued job
	// instead of replacing that job.
	JobMode = "fail"
)

// Unit file change settings for EnableUnitFiles and DisableUnitFiles.
const (
	// UnitFileRuntime selects persistent (/etc) rather than runtime (/run) links.
	UnitFileRuntime = false

	// UnitFileForce replaces conflicting symlinks when enabling.
	UnitFileForce = true
)
