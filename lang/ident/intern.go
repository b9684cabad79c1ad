// Copyright 2017 The Wuffs Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ident

import "fmt"

// reservedMax mirrors the teacher checker's own floor constant (base38.Max,
// the inclusive upper bound of a 4-byte base-38 encoding: 38^4 - 1): a
// cheap way to reserve a contiguous low range of AtomId values for
// built-ins without needing a real base-38 token encoder here, since MSL's
// toy grammar has no packed 4-byte identifier tokens to encode.
const reservedMax = 2085135

// firstDynamicID is the first AtomId handed out to a name interned at
// runtime; IDs below this are reserved for built-ins.
const firstDynamicID = AtomId(reservedMax + 1)

// Map interns atom names to AtomId values and back, structured like the
// teacher's token.Map (a byName map plus a byID slice).
type Map struct {
	byName map[string]AtomId
	byID   []string
}

// Insert returns the AtomId for name, allocating a fresh one if name has not
// been seen before.
func (m *Map) Insert(name string) (AtomId, error) {
	if name == "" {
		return 0, nil
	}
	if m.byName == nil {
		m.byName = map[string]AtomId{}
	}
	if id, ok := m.byName[name]; ok {
		return id, nil
	}
	id := firstDynamicID + AtomId(len(m.byID))
	m.byName[name] = id
	m.byID = append(m.byID, name)
	return id, nil
}

// ByName looks up an already-interned name, returning 0 if absent.
func (m *Map) ByName(name string) AtomId {
	if m.byName == nil {
		return 0
	}
	return m.byName[name]
}

// ByID returns the name for an interned AtomId, or "" if out of range.
func (m *Map) ByID(id AtomId) string {
	if id < firstDynamicID {
		return ""
	}
	i := int(id - firstDynamicID)
	if i < 0 || i >= len(m.byID) {
		return ""
	}
	return m.byID[i]
}

func (id AtomId) GoString() string { return fmt.Sprintf("AtomId(%d)", uint32(id)) }
