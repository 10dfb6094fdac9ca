package badger

import (
	"fmt"

	"github.com/poiesic/gazetteer/core"
)

// Key prefixes for different data types
const (
	dictEntriesPrefix = "dictent"
)

// makeEntriesKey generates a key for a parsed dictionary by content ID.
func makeEntriesKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", dictEntriesPrefix, id))
}
