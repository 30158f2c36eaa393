package badger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/inklab/docstream/core"
)

// Key prefixes for different data types
const (
	docRecordPrefix = "docrec"
	docDatePrefix   = "docrecd"
)

// makeDocumentKey generates a key for a document record by ID.
func makeDocumentKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", docRecordPrefix, id))
}

// makeDocumentDateKey generates a composite key for the upload-date index.
// Format: prefix:timestamp:id
func makeDocumentDateKey(uploadedAt time.Time, id core.ID) []byte {
	prefix := docDatePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 16 // 8 bytes for timestamp + 8 bytes for ID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(uploadedAt.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialDocumentDateKey generates a partial key for date-ordered scans.
// Format: prefix:timestamp
func makePartialDocumentDateKey(uploadedAt time.Time) []byte {
	prefix := docDatePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], uint64(uploadedAt.UnixMicro()))
	return buf
}
