package common

import (
	"strings"

	"github.com/google/uuid"
)

// suffixLen is the number of characters kept from the generated UUID.
const suffixLen = 12

// MakeIDSuffix returns a short alphanumeric suffix for prefixed record ids
// such as "TXN_<millis>_<suffix>". The suffix is cut from a v4 UUID, so
// collisions are not a practical concern even within the same millisecond.
func MakeIDSuffix() string {
	s := strings.ReplaceAll(uuid.NewString(), "-", "")
	return s[:suffixLen]
}
