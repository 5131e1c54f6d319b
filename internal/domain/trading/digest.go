package trading

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Digest computes a tamper-detection value over the mutable economic fields of
// a snapshot: credits, cargo capacity and the serialized cargo lines. It is a
// 32-bit rolling hash, kept cheap on purpose; this guards against accidental
// save corruption, not adversaries.
func Digest(s GameState) string {
	// Nil and empty cargo must hash alike; clones and decoded saves differ
	// in nilness for the same hold.
	lines := s.Player.Ship.Cargo.Items
	if lines == nil {
		lines = []CargoItem{}
	}
	items, err := json.Marshal(lines)
	if err != nil {
		// []CargoItem cannot fail to marshal; keep the signature total anyway.
		items = []byte("[]")
	}
	data := fmt.Sprintf("%d-%d-%s", s.Player.Credits, s.Player.Ship.Cargo.Capacity, items)
	var h int32
	for _, c := range []byte(data) {
		h = h*31 + int32(c)
	}
	return strconv.Itoa(int(h))
}

// VerifyDigest recomputes the digest and compares it to the stored field.
// Used at load time only; what to do on mismatch is the gateway's call.
func VerifyDigest(s GameState) bool {
	return Digest(s) == s.Checksum
}
