package node

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
	"github.com/goodnatureofminers/blockinsight7000-explorer/pkg/safe"
)

// Satoshis returns the output value in satoshis, preferring the node's valueSat.
func Satoshis(vout model.Vout) (uint64, error) {
	if vout.ValueSat != nil {
		return safe.Uint64(*vout.ValueSat)
	}
	return CoinsToSatoshis(vout.Value)
}

// CoinsToSatoshis converts a decimal coin amount to satoshis with overflow checks.
func CoinsToSatoshis(value float64) (uint64, error) {
	amt, err := btcutil.NewAmount(value)
	if err != nil {
		return 0, err
	}
	if amt < 0 {
		return 0, fmt.Errorf("negative amount: %d", amt)
	}
	return safe.Uint64(int64(amt))
}
