package service

import (
	"hash/fnv"
	"math/rand"
	"strconv"
	"strings"
)

// Fixed base mixed into the per-email seed. Changing it changes every id the
// generator would hand out, so it stays constant.
const membershipIDSeedBase int64 = 0x4d454d4252 // "MEMBR"

// GenerateMembershipID derives a 10-digit membership number from the
// applicant's email. Deterministic per email and not cryptographically
// secure; collisions are caught by the store's unique index only.
func GenerateMembershipID(email string) string {
	h := fnv.New64a()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(email))))
	rng := rand.New(rand.NewSource(membershipIDSeedBase ^ int64(h.Sum64())))
	return strconv.FormatInt(1_000_000_000+rng.Int63n(9_000_000_000), 10)
}
