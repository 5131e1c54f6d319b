// Package savecodec serializes game snapshots for persistence. Both the gorm
// and in-memory gateways share it, so every save blob carries a fresh digest,
// never an AutoBot mission, and decodes through the same forward shim.
package savecodec

import (
	"encoding/json"
	"fmt"

	"galaxytrader/internal/app/ports"
	"galaxytrader/internal/domain/trading"
)

// Encode marshals a snapshot for storage: the digest is recomputed and any
// AutoBot state dropped (missions never survive a reload).
func Encode(state trading.GameState) ([]byte, error) {
	out := state.Clone()
	out.AutoBot = nil
	out.Checksum = trading.Digest(out)
	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encode save: %w", err)
	}
	return data, nil
}

// Decode unmarshals a stored snapshot, applies the forward-compatibility shim
// for pre-travel saves, and verifies the digest. A digest mismatch returns
// ports.ErrIntegrity; callers discard the blob and fabricate a fresh world.
func Decode(data []byte) (trading.GameState, error) {
	var state trading.GameState
	if err := json.Unmarshal(data, &state); err != nil {
		return trading.GameState{}, fmt.Errorf("decode save: %w", err)
	}

	// Older saves predate the travel state machine: no isTraveling flag, no
	// travel record, and possibly no current planet. Default to docked at the
	// start planet.
	if !state.Player.IsTraveling {
		state.Player.TravelInfo = nil
		if state.Player.CurrentPlanetID == "" {
			state.Player.CurrentPlanetID = trading.StartPlanetID
		}
	}

	if !trading.VerifyDigest(state) {
		return trading.GameState{}, ports.ErrIntegrity
	}
	return state, nil
}
