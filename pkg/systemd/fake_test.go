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
	"sync"

	sddbus "github.com/coreos/go-systemd/v22/dbus"
)

type fakeCall struct {
	method  string
	files   []string
	runtime bool
	force   bool
	name    string
	mode    string
}

// fakeConn stands in for the manager. Mutating calls return err; when block
// is set every call waits for its context instead.
type fakeConn struct {
	mu sync.Mutex

	files          []sddbus.UnitFile
	carriesInstall bool
	enableChanges  []sddbus.EnableUnitFileChange
	disableChanges []sddbus.DisableUnitFileChange
	jobID          int
	err            error
	block          bool

	calls  []fakeCall
	dials  int
	closes int
}

func (f *fakeConn) dialer() Dialer {
	return func(ctx context.Context) (Conn, error) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.dials++
		return f, nil
	}
}

func (f *fakeConn) record(c fakeCall) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
}

func (f *fakeConn) wait(ctx context.Context) error {
	if f.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return f.err
}

func (f *fakeConn) ListUnitFilesContext(ctx context.Context) ([]sddbus.UnitFile, error) {
	f.record(fakeCall{method: MethodListUnitFiles})
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	return f.files, nil
}

func (f *fakeConn) EnableUnitFilesContext(ctx context.Context, files []string, runtime bool, force bool) (bool, []sddbus.EnableUnitFileChange, error) {
	f.record(fakeCall{method: MethodEnableUnitFiles, files: files, runtime: runtime, force: force})
	if err := f.wait(ctx); err != nil {
		return false, nil, err
	}
	return f.carriesInstall, f.enableChanges, nil
}

func (f *fakeConn) DisableUnitFilesContext(ctx context.Context, files []string, runtime bool) ([]sddbus.DisableUnitFileChange, error) {
	f.record(fakeCall{method: MethodDisableUnitFiles, files: files, runtime: runtime})
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	return f.disableChanges, nil
}

func (f *fakeConn) StartUnitContext(ctx context.Context, name string, mode string, _ chan<- string) (int, error) {
	f.record(fakeCall{method: MethodStartUnit, name: name, mode: mode})
	if err := f.wait(ctx); err != nil {
		return 0, err
	}
	return f.jobID, nil
}

func (f *fakeConn) StopUnitContext(ctx context.Context, name string, mode string, _ chan<- string) (int, error) {
	f.record(fakeCall{method: MethodStopUnit, name: name, mode: mode})
	if err := f.wait(ctx); err != nil {
		return 0, err
	}
	return f.jobID, nil
}

func (f *fakeConn) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closes++
}
