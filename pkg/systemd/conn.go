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

package systemd

import (
	"context"
	"fmt"

	sddbus "github.com/coreos/go-systemd/v22/dbus"
)

// Well-known address of the systemd manager object. go-systemd addresses this
// endpoint itself; the constants name it for logs and callers.
const (
	Destination = "org.freedesktop.systemd1"
	ObjectPath  = "/org/freedesktop/systemd1"
	Interface   = "org.freedesktop.systemd1.Manager"
)

// Manager methods used by this package.
const (
	MethodListUnitFiles    = "ListUnitFiles"
	MethodEnableUnitFiles  = "EnableUnitFiles"
	MethodDisableUnitFiles = "DisableUnitFiles"
	MethodStartUnit        = "StartUnit"
	MethodStopUnit         = "StopUnit"
)

// Member returns the fully qualified D-Bus member name of a manager method.
func Member(method string) string {
	return Interface + "." + method
}

// Conn is the subset of the manager surface this package calls.
// *sddbus.Conn satisfies it.
type Conn interface {
	ListUnitFilesContext(ctx context.Context) ([]sddbus.UnitFile, error)
	EnableUnitFilesContext(ctx context.Context, files []string, runtime bool, force bool) (bool, []sddbus.EnableUnitFileChange, error)
	DisableUnitFilesContext(ctx context.Context, files []string, runtime bool) ([]sddbus.DisableUnitFileChange, error)
	StartUnitContext(ctx context.Context, name string, mode string, ch chan<- string) (int, error)
	StopUnitContext(ctx context.Context, name string, mode string, ch chan<- string) (int, error)
	Close()
}

// Dialer opens a new connection to the manager. The Manager calls it once
// per operation and closes the result before returning.
type Dialer func(ctx context.Context) (Conn, error)

// SystemDialer connects to the manager over the system bus.
func SystemDialer(ctx context.Context) (Conn, error) {
	conn, err := sddbus.NewSystemConnectionContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("connect to system bus: %w", err)
	}
	return conn, nil
}
