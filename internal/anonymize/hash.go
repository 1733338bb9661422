package anonymize

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/anonify/anonify/internal/dataset"
)

// HashColumn replaces each non-null value with the hex-encoded SHA-256 of the
// value concatenated with the salt. Equal inputs hash to equal outputs, so
// joins on the column keep working; nulls stay null.
func HashColumn(values []string, salt string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		if v == dataset.Null {
			continue
		}
		sum := sha256.Sum256([]byte(v + salt))
		out[i] = hex.EncodeToString(sum[:])
	}
	return out
}
