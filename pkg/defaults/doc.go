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

// Package defaults provides centralized configuration constants for unitctl.
//
// The values here are fixed by the systemd manager contract this module
// speaks: the per-call bus timeout, the job mode used for start/stop, and
// the runtime/force flags used for unit file changes. None of them is read
// from configuration.
//
// # Usage
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.BusCallTimeout)
//	defer cancel()
package defaults
