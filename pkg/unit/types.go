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
	"fmt"
	"path/filepath"
)

// Type is the kind of a unit, derived from its file extension.
type Type int

const (
	TypeUnknown Type = iota
	TypeService
	TypeSocket
	TypeTimer
	TypeMount
	TypeAutomount
	TypeTarget
	TypeDevice
	TypePath
	TypeSnapshot
)

var typeNames = map[Type]string{
	TypeUnknown:   "unknown",
	TypeService:   "service",
	TypeSocket:    "socket",
	TypeTimer:     "timer",
	TypeMount:     "mount",
	TypeAutomount: "automount",
	TypeTarget:    "target",
	TypeDevice:    "device",
	TypePath:      "path",
	TypeSnapshot:  "snapshot",
}

var typesByExt = map[string]Type{
	".service":   TypeService,
	".socket":    TypeSocket,
	".timer":     TypeTimer,
	".mount":     TypeMount,
	".automount": TypeAutomount,
	".target":    TypeTarget,
	".device":    TypeDevice,
	".path":      TypePath,
	".snapshot":  TypeSnapshot,
}

// TypeFromPath classifies a unit file by its extension.
// Unrecognized extensions map to TypeUnknown.
func TypeFromPath(path string) Type {
	if t, ok := typesByExt[filepath.Ext(path)]; ok {
		return t
	}
	return TypeUnknown
}

// String returns the extension name without the dot ("service", "socket", ...).
func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return typeNames[TypeUnknown]
}

// TemplateSuffix returns the file name suffix of template units of this
// type, e.g. "@.service". TypeUnknown has no template form.
func (t Type) TemplateSuffix() string {
	if t == TypeUnknown {
		return ""
	}
	return "@." + t.String()
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	for k, v := range typeNames {
		if v == string(text) {
			*t = k
			return nil
		}
	}
	return fmt.Errorf("unknown unit type %q", text)
}

// State is the enablement state of a unit file.
type State int

const (
	StateUnknown State = iota
	StateEnabled
	StateDisabled
	StateStatic
	StateMasked
)

var stateNames = map[State]string{
	StateUnknown:  "unknown",
	StateEnabled:  "enabled",
	StateDisabled: "disabled",
	StateStatic:   "static",
	StateMasked:   "masked",
}

// StateFromToken classifies the state string reported by the manager by its
// first character, so "enabled-runtime" is StateEnabled and
// "masked-runtime" is StateMasked. Anything else, including the empty
// string, is StateUnknown.
func StateFromToken(token string) State {
	if token == "" {
		return StateUnknown
	}
	switch token[0] {
	case 'e':
		return StateEnabled
	case 'd':
		return StateDisabled
	case 's':
		return StateStatic
	case 'm':
		return StateMasked
	default:
		return StateUnknown
	}
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return stateNames[StateUnknown]
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(text []byte) error {
	for k, v := range stateNames {
		if v == string(text) {
			*s = k
			return nil
		}
	}
	return fmt.Errorf("unknown unit state %q", text)
}
