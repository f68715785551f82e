package gen

import (
	"hash/fnv"
	"math/rand/v2"
)

// MoistureLabel is the derivation label for the moisture field seed.
const MoistureLabel = "moisture"

// DeriveSeed returns a secondary seed for the named field. The result depends
// only on primary and label, so independent fields never share state with
// each other or with any global generator.
func DeriveSeed(primary int64, label string) int64 {
	h := fnv.New64a()
	h.Write([]byte(label))
	r := rand.New(rand.NewPCG(uint64(primary), h.Sum64()))
	return r.Int64()
}
