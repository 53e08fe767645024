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

// Package systemd lists, enables, disables, starts and stops systemd units
// through the manager object on the system bus.
//
// # Usage
//
//	m := systemd.NewManager()
//
//	units, err := m.ListUnitFiles(ctx)
//	if err != nil {
//	    return err
//	}
//
//	for _, u := range unit.CollectTogglableServices(units) {
//	    fmt.Println(u.Name, u.State)
//	}
//
//	msg, err := m.Enable(ctx, units[0])
//	// "sshd.service has been enabled" or "sshd.service already enabled"
//
// # Calls
//
// Every operation is one blocking request to org.freedesktop.systemd1.Manager:
//
//   - ListUnitFiles: decoded into unit.Unit values, sorted by name
//   - EnableUnitFiles: one name, runtime=false, force=true
//   - DisableUnitFiles: one name, runtime=false
//   - StartUnit / StopUnit: one name, mode "fail"
//
// Each request opens its own connection, is bounded by
// defaults.BusCallTimeout (4s) and closes the connection before returning.
// There are no retries.
//
// # Errors
//
// Failures are *errors.StructuredError values. The code separates a bus
// that could not be reached (SERVICE_UNAVAILABLE), a call that ran out of
// time (TIMEOUT), an error reply from the manager (NOT_FOUND, UNAUTHORIZED,
// DAEMON_FAILURE, ...) and a listing that could not be decoded
// (INVALID_REPLY). The manager's own diagnostic is the wrapped cause.
//
// # Logging
//
// Per-call records are written at debug level to slog.Default() unless
// WithLogger supplies another logger. Programs usually configure it once
// with logging.SetDefaultStructuredLogger or pass
// logging.NewStructuredLogger(...) to WithLogger.
//
// # Metrics
//
//   - unitctl_bus_call_duration_seconds{method}
//   - unitctl_bus_call_total{method,status}
//   - unitctl_units_listed
package systemd
