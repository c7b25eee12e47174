// Copyright 2025 Smartroomate Authors
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


package storage

import (
	"encoding/binary"
	"fmt"

	"github.com/SaiPrasanna98/Smartroomate/core"
	"github.com/fxamacker/cbor/v2"
)

// encMode keeps nanosecond timestamp fidelity; the default CBOR time
// encoding truncates to whole seconds.
var encMode, _ = cbor.EncOptions{Time: cbor.TimeRFC3339Nano}.EncMode()

// MarshalID serializes an ID to 8 big-endian bytes.
// Big-endian keeps lexicographic key order aligned with numeric order.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(id))
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	if len(data) < 8 {
		return 0, fmt.Errorf("%w: id needs 8 bytes, got %d", ErrTruncatedData, len(data))
	}
	return core.ID(binary.BigEndian.Uint64(data)), nil
}

// MarshalProfile serializes a Profile to CBOR bytes.
func MarshalProfile(profile *core.Profile) ([]byte, error) {
	data, err := encMode.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("%w: profile %d: %w", ErrSerializationFailed, profile.Id, err)
	}
	return data, nil
}

// UnmarshalProfile deserializes a Profile from CBOR bytes.
func UnmarshalProfile(data []byte) (*core.Profile, error) {
	var profile core.Profile
	if err := cbor.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("%w: profile: %w", ErrSerializationFailed, err)
	}
	return &profile, nil
}

// MarshalMatchHistoryEntry serializes a MatchHistoryEntry to CBOR bytes.
func MarshalMatchHistoryEntry(entry *core.MatchHistoryEntry) ([]byte, error) {
	data, err := encMode.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("%w: history entry %d: %w", ErrSerializationFailed, entry.Id, err)
	}
	return data, nil
}

// UnmarshalMatchHistoryEntry deserializes a MatchHistoryEntry from CBOR bytes.
func UnmarshalMatchHistoryEntry(data []byte) (*core.MatchHistoryEntry, error) {
	var entry core.MatchHistoryEntry
	if err := cbor.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("%w: history entry: %w", ErrSerializationFailed, err)
	}
	return &entry, nil
}
