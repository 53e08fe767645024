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
	"log/slog"
	"time"

	sddbus "github.com/coreos/go-systemd/v22/dbus"

	"github.com/NVIDIA/unitctl/pkg/defaults"
	"github.com/NVIDIA/unitctl/pkg/errors"
	"github.com/NVIDIA/unitctl/pkg/unit"
)

// Manager issues unit file and job requests to the systemd manager.
//
// Every method is a single blocking round trip on its own connection,
// bounded by defaults.BusCallTimeout. A Manager holds no per-call state
// and may be shared between goroutines.
type Manager struct {
	dial    Dialer
	logger  *slog.Logger
	timeout time.Duration
}

// Option configures a Manager.
type Option func(*Manager)

// WithDialer replaces the system bus dialer.
func WithDialer(d Dialer) Option {
	return func(m *Manager) {
		if d != nil {
			m.dial = d
		}
	}
}

// WithLogger sets the logger used for per-call debug records.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewManager returns a Manager that talks to systemd over the system bus.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		dial:    SystemDialer,
		timeout: defaults.BusCallTimeout,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = slog.Default()
	}
	return m
}

// ListUnitFiles returns every unit file the manager knows about, sorted by
// name ignoring case.
func (m *Manager) ListUnitFiles(ctx context.Context) ([]unit.Unit, error) {
	var files []sddbus.UnitFile
	err := m.call(ctx, MethodListUnitFiles, "", func(ctx context.Context, c Conn) error {
		var err error
		files, err = c.ListUnitFilesContext(ctx)
		return err
	})
	if err != nil {
		return nil, wrapCallError(err, "failed to list unit files", MethodListUnitFiles, "")
	}

	units, err := DecodeUnitFiles(files)
	if err != nil {
		return nil, err
	}
	unitsListed.Set(float64(len(units)))

	return units, nil
}

// IsEnabled lists the unit files again and reports whether the unit with
// u's path is currently enabled. A unit missing from the listing is not
// enabled.
func (m *Manager) IsEnabled(ctx context.Context, u unit.Unit) (bool, error) {
	units, err := m.ListUnitFiles(ctx)
	if err != nil {
		return false, err
	}

	for _, cur := range units {
		if cur.Path == u.Path {
			return cur.State == unit.StateEnabled, nil
		}
	}
	return false, nil
}

// Enable enables the unit file and returns a message telling whether it
// was already enabled.
func (m *Manager) Enable(ctx context.Context, u unit.Unit) (string, error) {
	if err := validate(u, MethodEnableUnitFiles); err != nil {
		return "", err
	}

	var (
		carriesInstallInfo bool
		changes            []sddbus.EnableUnitFileChange
	)
	err := m.call(ctx, MethodEnableUnitFiles, u.Name, func(ctx context.Context, c Conn) error {
		var err error
		carriesInstallInfo, changes, err = c.EnableUnitFilesContext(ctx,
			[]string{u.Name}, defaults.UnitFileRuntime, defaults.UnitFileForce)
		return err
	})
	if err != nil {
		return "", wrapCallError(err, fmt.Sprintf("error enabling %s", u.Name), MethodEnableUnitFiles, u.Name)
	}

	if carriesInstallInfo && len(changes) == 0 {
		return fmt.Sprintf("%s already enabled", u.Name), nil
	}
	return fmt.Sprintf("%s has been enabled", u.Name), nil
}

// Disable disables the unit file and returns a message telling whether it
// was already disabled.
func (m *Manager) Disable(ctx context.Context, u unit.Unit) (string, error) {
	if err := validate(u, MethodDisableUnitFiles); err != nil {
		return "", err
	}

	var changes []sddbus.DisableUnitFileChange
	err := m.call(ctx, MethodDisableUnitFiles, u.Name, func(ctx context.Context, c Conn) error {
		var err error
		changes, err = c.DisableUnitFilesContext(ctx, []string{u.Name}, defaults.UnitFileRuntime)
		return err
	})
	if err != nil {
		return "", wrapCallError(err, fmt.Sprintf("error disabling %s", u.Name), MethodDisableUnitFiles, u.Name)
	}

	if len(changes) == 0 {
		return fmt.Sprintf("%s is already disabled", u.Name), nil
	}
	return fmt.Sprintf("%s has been disabled", u.Name), nil
}

// Start queues a start job for the unit. The job is rejected rather than
// queued when it conflicts with a pending job. Success means the manager
// accepted the job, not that the unit is running.
func (m *Manager) Start(ctx context.Context, u unit.Unit) (string, error) {
	return m.job(ctx, u, MethodStartUnit, "started", "start", Conn.StartUnitContext)
}

// Stop queues a stop job for the unit, with the same conflict rule as Start.
func (m *Manager) Stop(ctx context.Context, u unit.Unit) (string, error) {
	return m.job(ctx, u, MethodStopUnit, "stopped", "stop", Conn.StopUnitContext)
}

type jobFunc func(c Conn, ctx context.Context, name, mode string, ch chan<- string) (int, error)

func (m *Manager) job(ctx context.Context, u unit.Unit, method, done, verb string, fn jobFunc) (string, error) {
	if err := validate(u, method); err != nil {
		return "", err
	}

	var jobID int
	err := m.call(ctx, method, u.Name, func(ctx context.Context, c Conn) error {
		var err error
		jobID, err = fn(c, ctx, u.Name, defaults.JobMode, nil)
		return err
	})
	if err != nil {
		return "", wrapCallError(err, fmt.Sprintf("%s failed to %s", u.Name, verb), method, u.Name)
	}

	m.logger.Debug("job queued", "unit", u.Name, "method", method, "job", jobID)
	return fmt.Sprintf("%s successfully %s", u.Name, done), nil
}

// call opens a fresh connection, runs fn on it and closes it, all within
// the call timeout.
func (m *Manager) call(ctx context.Context, method, unitName string, fn func(context.Context, Conn) error) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	start := time.Now()

	conn, err := m.dial(ctx)
	if err == nil {
		err = fn(ctx, conn)
		conn.Close()
	}

	elapsed := time.Since(start)
	status := "success"
	if err != nil {
		status = string(classify(err))
	}
	busCallDuration.WithLabelValues(method).Observe(elapsed.Seconds())
	busCallTotal.WithLabelValues(method, status).Inc()

	m.logger.Debug("bus call",
		"member", Member(method),
		"unit", unitName,
		"status", status,
		"duration", elapsed)

	return err
}

func validate(u unit.Unit, method string) error {
	if u.Name == "" {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"unit has no name", map[string]any{"method": method, "path": u.Path})
	}
	return nil
}
