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

	"github.com/NVIDIA/unitctl/pkg/logging"
)

// ExampleWithLogger shows a manager sharing the structured logger set up by
// the calling program.
func ExampleWithLogger() {
	logger := logging.NewStructuredLogger("unitctl", "v0.1.0", "info")

	f := &fakeConn{
		carriesInstall: true,
		enableChanges: []sddbus.EnableUnitFileChange{{
			Type:        "symlink",
			Filename:    "/etc/systemd/system/multi-user.target.wants/sshd.service",
			Destination: "/etc/systemd/system/sshd.service",
		}},
	}
	m := NewManager(WithDialer(f.dialer()), WithLogger(logger))

	msg, err := m.Enable(context.Background(), sshd)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(msg)
	// Output: sshd.service has been enabled
}
