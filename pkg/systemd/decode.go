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
	"fmt"

	sddbus "github.com/coreos/go-systemd/v22/dbus"

	"github.com/NVIDIA/unitctl/pkg/errors"
	"github.com/NVIDIA/unitctl/pkg/unit"
)

// DecodeUnitFiles converts the (path, state) entries of a ListUnitFiles
// reply into units sorted by name, ignoring case.
//
// Any entry that cannot be turned into a unit fails the whole decode; no
// entry is dropped.
func DecodeUnitFiles(files []sddbus.UnitFile) ([]unit.Unit, error) {
	units := make([]unit.Unit, 0, len(files))

	for i, f := range files {
		if f.Type == "" {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidReply,
				fmt.Sprintf("unit file entry %d has an empty state", i),
				map[string]any{"index": i, "path": f.Path})
		}

		u, err := unit.New(f.Path, f.Type)
		if err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeInvalidReply,
				fmt.Sprintf("unit file entry %d has an invalid path", i), err,
				map[string]any{"index": i, "path": f.Path})
		}

		units = append(units, u)
	}

	unit.Sort(units)

	return units, nil
}
