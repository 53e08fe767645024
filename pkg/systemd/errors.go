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
	"strings"

	"github.com/godbus/dbus/v5"

	"github.com/NVIDIA/unitctl/pkg/errors"
)

// D-Bus error names the manager and the bus daemon reply with.
const (
	busErrNoSuchUnit     = "org.freedesktop.systemd1.NoSuchUnit"
	busErrFileNotFound   = "org.freedesktop.DBus.Error.FileNotFound"
	busErrAccessDenied   = "org.freedesktop.DBus.Error.AccessDenied"
	busErrAuthRequired   = "org.freedesktop.DBus.Error.InteractiveAuthorizationRequired"
	busErrNoReply        = "org.freedesktop.DBus.Error.NoReply"
	busErrTimeout        = "org.freedesktop.DBus.Error.Timeout"
	busErrTimedOut       = "org.freedesktop.DBus.Error.TimedOut"
	busErrServiceUnknown = "org.freedesktop.DBus.Error.ServiceUnknown"
	busErrNoServer       = "org.freedesktop.DBus.Error.NoServer"
	busErrDisconnected   = "org.freedesktop.DBus.Error.Disconnected"
	busErrNameHasNoOwner = "org.freedesktop.DBus.Error.NameHasNoOwner"
	busErrUnknownMethod  = "org.freedesktop.DBus.Error.UnknownMethod"
	busErrInvalidArgs    = "org.freedesktop.DBus.Error.InvalidArgs"
)

var busErrorCodes = map[string]errors.ErrorCode{
	busErrNoSuchUnit:     errors.ErrCodeNotFound,
	busErrFileNotFound:   errors.ErrCodeNotFound,
	busErrAccessDenied:   errors.ErrCodeUnauthorized,
	busErrAuthRequired:   errors.ErrCodeUnauthorized,
	busErrNoReply:        errors.ErrCodeTimeout,
	busErrTimeout:        errors.ErrCodeTimeout,
	busErrTimedOut:       errors.ErrCodeTimeout,
	busErrServiceUnknown: errors.ErrCodeUnavailable,
	busErrNoServer:       errors.ErrCodeUnavailable,
	busErrDisconnected:   errors.ErrCodeUnavailable,
	busErrNameHasNoOwner: errors.ErrCodeUnavailable,
	busErrUnknownMethod:  errors.ErrCodeInvalidRequest,
	busErrInvalidArgs:    errors.ErrCodeInvalidRequest,
}

// storeErrPrefix starts every error godbus returns when a reply body does not
// fit the Go values it is stored into.
const storeErrPrefix = "dbus.Store:"

// isStoreError reports whether err, or anything it wraps, is a godbus
// reply-decoding failure.
func isStoreError(err error) bool {
	for e := err; e != nil; e = stderrors.Unwrap(e) {
		if strings.HasPrefix(e.Error(), storeErrPrefix) {
			return true
		}
	}
	return false
}

// busErrorName extracts the D-Bus error name from an error reply.
func busErrorName(err error) (string, bool) {
	var v dbus.Error
	if stderrors.As(err, &v) {
		return v.Name, true
	}
	var p *dbus.Error
	if stderrors.As(err, &p) && p != nil {
		return p.Name, true
	}
	return "", false
}

// classify maps a failed round trip onto the error taxonomy. Context errors
// win over everything else since they decide whether the timeout fired.
func classify(err error) errors.ErrorCode {
	switch {
	case stderrors.Is(err, context.DeadlineExceeded):
		return errors.ErrCodeTimeout
	case stderrors.Is(err, context.Canceled):
		return errors.ErrCodeCanceled
	}

	if name, ok := busErrorName(err); ok {
		if code, found := busErrorCodes[name]; found {
			return code
		}
		return errors.ErrCodeDaemonFailure
	}

	var typeErr dbus.InvalidTypeError
	if stderrors.As(err, &typeErr) || isStoreError(err) {
		return errors.ErrCodeInvalidReply
	}

	if code := errors.CodeOf(err); code != "" {
		return code
	}

	// anything else is the bus connection itself
	return errors.ErrCodeUnavailable
}

// wrapCallError builds the error returned for a failed unit operation.
func wrapCallError(err error, message, method, unitName string) *errors.StructuredError {
	ctx := map[string]any{"method": method}
	if unitName != "" {
		ctx["unit"] = unitName
	}
	if name, ok := busErrorName(err); ok {
		ctx["dbus_error"] = name
	}
	return errors.WrapWithContext(classify(err), message, err, ctx)
}
