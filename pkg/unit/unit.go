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

package unit

import (
	"path/filepath"
	"strings"

	"github.com/NVIDIA/unitctl/pkg/errors"
)

// Unit is a unit file known to the systemd manager.
// Type and State are derived from Path and the raw state token by New and
// are never set independently.
type Unit struct {
	Name  string `json:"name" yaml:"name"`
	Path  string `json:"path" yaml:"path"`
	Type  Type   `json:"type" yaml:"type"`
	State State  `json:"state" yaml:"state"`
}

// New builds a Unit from an absolute unit file path and the manager's state
// token for it.
func New(path, stateToken string) (Unit, error) {
	if !filepath.IsAbs(path) || strings.HasSuffix(path, "/") {
		return Unit{}, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"unit path must be an absolute file path", map[string]any{"path": path})
	}

	return Unit{
		Name:  filepath.Base(path),
		Path:  path,
		Type:  TypeFromPath(path),
		State: StateFromToken(stateToken),
	}, nil
}

// IsTemplate reports whether the unit is a template (e.g. getty@.service)
// that needs an instance name before it can be enabled or started.
func (u Unit) IsTemplate() bool {
	suffix := u.Type.TemplateSuffix()
	return suffix != "" && strings.HasSuffix(u.Path, suffix)
}

// Togglable reports whether the unit can be switched between enabled and
// disabled: its state is one of the two and it is not a template.
func (u Unit) Togglable() bool {
	return (u.State == StateEnabled || u.State == StateDisabled) && !u.IsTemplate()
}
