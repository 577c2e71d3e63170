package util

import (
	"strconv"
	"strings"
)

// UserIdFromRecordId derives the numeric userId from an opaque record id:
// dashes stripped, first 13 hex chars parsed base 16. Anything that does not
// parse yields 0. The movieSearchCount and savedMovie collections key on this
// value, so the transform must stay stable.
func UserIdFromRecordId(recordId string) int64 {
	hexStr := strings.ReplaceAll(recordId, "-", "")
	if len(hexStr) > 13 {
		hexStr = hexStr[:13]
	}
	if hexStr == "" {
		return 0
	}
	id, err := strconv.ParseInt(hexStr, 16, 64)
	if err != nil || id < 0 {
		return 0
	}
	return id
}
