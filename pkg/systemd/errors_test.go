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
	stderrors "errors"
	"fmt"
	"reflect"
	"testing"

	sddbus "github.com/coreos/go-systemd/v22/dbus"
	"github.com/godbus/dbus/v5"

	"github.com/NVIDIA/unitctl/pkg/errors"
)

// storeMismatch returns the error godbus produces when a ListUnitFiles entry
// carries one string instead of a (ss) pair.
func storeMismatch(t *testing.T) error {
	t.Helper()
	var files []sddbus.UnitFile
	err := dbus.Store([]any{[]any{[]any{"/etc/systemd/system/sshd.service"}}}, &files)
	if err == nil {
		t.Fatal("expected dbus.Store to reject a short entry")
	}
	return err
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errors.ErrorCode
	}{
		{"deadline", context.DeadlineExceeded, errors.ErrCodeTimeout},
		{"wrapped deadline", fmt.Errorf("connect to system bus: %w", context.DeadlineExceeded), errors.ErrCodeTimeout},
		{"canceled", context.Canceled, errors.ErrCodeCanceled},
		{"no such unit", dbus.Error{Name: busErrNoSuchUnit}, errors.ErrCodeNotFound},
		{"file not found", dbus.Error{Name: busErrFileNotFound}, errors.ErrCodeNotFound},
		{"access denied", dbus.Error{Name: busErrAccessDenied}, errors.ErrCodeUnauthorized},
		{"auth required pointer", &dbus.Error{Name: busErrAuthRequired}, errors.ErrCodeUnauthorized},
		{"no reply", dbus.Error{Name: busErrNoReply}, errors.ErrCodeTimeout},
		{"service unknown", dbus.Error{Name: busErrServiceUnknown}, errors.ErrCodeUnavailable},
		{"invalid args", dbus.Error{Name: busErrInvalidArgs}, errors.ErrCodeInvalidRequest},
		{"unmapped daemon error", dbus.Error{Name: "org.freedesktop.systemd1.UnitMasked"}, errors.ErrCodeDaemonFailure},
		{"wrapped daemon error", fmt.Errorf("call: %w", dbus.Error{Name: "org.freedesktop.systemd1.TransactionIsDestructive"}), errors.ErrCodeDaemonFailure},
		{"type mismatch", dbus.InvalidTypeError{Type: reflect.TypeOf(0)}, errors.ErrCodeInvalidReply},
		{"store mismatch", storeMismatch(t), errors.ErrCodeInvalidReply},
		{"wrapped store mismatch", fmt.Errorf("list: %w", storeMismatch(t)), errors.ErrCodeInvalidReply},
		{"structured", errors.New(errors.ErrCodeInvalidReply, "bad entry"), errors.ErrCodeInvalidReply},
		{"transport", stderrors.New("dbus: connection closed by user"), errors.ErrCodeUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classify(tt.err); got != tt.want {
				t.Errorf("classify(%v) = %s, want %s", tt.err, got, tt.want)
			}
		})
	}
}

func TestWrapCallError(t *testing.T) {
	cause := dbus.Error{
		Name: busErrAccessDenied,
		Body: []any{"Access denied"},
	}

	err := wrapCallError(cause, "error enabling sshd.service", MethodEnableUnitFiles, "sshd.service")

	if err.Code != errors.ErrCodeUnauthorized {
		t.Errorf("code = %s, want %s", err.Code, errors.ErrCodeUnauthorized)
	}
	if err.Context["unit"] != "sshd.service" {
		t.Errorf("unit context = %v", err.Context["unit"])
	}
	if err.Context["dbus_error"] != busErrAccessDenied {
		t.Errorf("dbus_error context = %v", err.Context["dbus_error"])
	}
	if err.Context["method"] != MethodEnableUnitFiles {
		t.Errorf("method context = %v", err.Context["method"])
	}
	var busErr dbus.Error
	if !stderrors.As(err, &busErr) || busErr.Name != busErrAccessDenied {
		t.Error("expected daemon diagnostic to be the wrapped cause")
	}
	want := "[UNAUTHORIZED] error enabling sshd.service: Access denied"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapCallError_NoUnit(t *testing.T) {
	err := wrapCallError(context.DeadlineExceeded, "failed to list unit files", MethodListUnitFiles, "")

	if _, ok := err.Context["unit"]; ok {
		t.Error("expected no unit in context")
	}
	if _, ok := err.Context["dbus_error"]; ok {
		t.Error("expected no dbus_error in context")
	}
	if err.Code != errors.ErrCodeTimeout {
		t.Errorf("code = %s, want %s", err.Code, errors.ErrCodeTimeout)
	}
}
