package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserIdFromRecordId(t *testing.T) {
	testCases := []struct {
		name     string
		recordId string
		want     int64
	}{
		{"empty", "", 0},
		{"short hex", "ab", 171},
		{"thirteen chars", "ffffffffffffff", 4503599627370495},
		{"longer id only uses prefix", "0123456789abcdef0123456789abcdef", 0x0123456789abc},
		{"dashes stripped", "01234567-89ab-cdef-0123-456789abcdef", 0x0123456789abc},
		{"not hex", "not-a-hex-id", 0},
		{"leading zeros", "00000000-0000-0000-0000-000000000001", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, UserIdFromRecordId(tc.recordId))
		})
	}
}

func TestUserIdFromRecordId_Stable(t *testing.T) {
	id := "a1b2c3d4-e5f6-4a1b-8c2d-3e4f5a6b7c8d"
	assert.Equal(t, UserIdFromRecordId(id), UserIdFromRecordId(id))
	assert.NotZero(t, UserIdFromRecordId(id))
}
