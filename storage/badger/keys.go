package badger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/SaiPrasanna98/Smartroomate/core"
)

// Key prefixes for different data types
const (
	profileRecordPrefix = "prorec"
	profileUserPrefix   = "prouser"
	profileIDSeq        = "prorecseq"
	historyRecordPrefix = "hisrec"
	historyUserPrefix   = "hisuser"
	historyIDSeq        = "hisrecseq"
)

// makeProfileKey generates a key for a profile record by ID.
func makeProfileKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", profileRecordPrefix, id))
}

// makeProfileUserKey generates a key for the user index.
// Format: prefix:userID
func makeProfileUserKey(userID core.ID) []byte {
	prefix := profileUserPrefix + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+8)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(userID))
	return buf
}

// makeHistoryKey generates a key for a history entry by ID.
func makeHistoryKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", historyRecordPrefix, id))
}

// makeHistoryUserKey generates a composite key for the per-user history index.
// Format: prefix:userID:timestamp:id
func makeHistoryUserKey(userID core.ID, timestamp time.Time, id core.ID) []byte {
	prefix := historyUserPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 24 // 8 bytes each for userID, timestamp, and ID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(userID))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialHistoryUserKey generates a partial key covering all of a user's
// history index entries.
// Format: prefix:userID
func makePartialHistoryUserKey(userID core.ID) []byte {
	prefix := historyUserPrefix + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+8)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(userID))
	return buf
}
