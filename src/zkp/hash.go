package zkp

import "crypto/sha256"

// HashActivity digests a raw activity description into the fixed-size value
// carried by an ActivityRecord. Deterministic: the same activity text always
// produces the same digest.
func HashActivity(activity string) [32]byte {
	return sha256.Sum256([]byte(activity))
}
