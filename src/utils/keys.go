package utils

import (
	"github.com/google/uuid"
)

// GenerateUUID generates a deterministic UUID (version 3) from multiple input
// strings, used for stable cache keys. Callers must pass inputs in a fixed,
// canonical order.
func GenerateUUID(inputs ...string) string {
	namespace := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8") // DNS namespace

	combined := ""
	for _, input := range inputs {
		combined += input
	}

	return uuid.NewMD5(namespace, []byte(combined)).String()
}
