package node

import (
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
	"github.com/goodnatureofminers/blockinsight7000-explorer/pkg/safe"
)

// OutputConverter turns node outputs into UTXO records.
type OutputConverter struct {
	decoder ScriptDecoder
}

// NewOutputConverter constructs a converter that falls back to decoder for outputs without addresses.
func NewOutputConverter(decoder ScriptDecoder) *OutputConverter {
	return &OutputConverter{decoder: decoder}
}

// Convert builds one UTXO per output of tx, indexed by output position. A zero
// transaction height falls back to blockHeight.
func (c *OutputConverter) Convert(tx model.RawTransaction, blockHeight uint64) ([]model.UTXO, error) {
	height := tx.Height
	if height == 0 {
		height = blockHeight
	}

	outputs := make([]model.UTXO, 0, len(tx.Vout))
	for i, vout := range tx.Vout {
		index, err := safe.Uint32(i)
		if err != nil {
			return nil, fmt.Errorf("tx %s output index: %w", tx.TxID, err)
		}
		if vout.Value < 0 {
			return nil, fmt.Errorf("tx %s output %d negative value: %f", tx.TxID, index, vout.Value)
		}
		satoshis, err := Satoshis(vout)
		if err != nil {
			return nil, fmt.Errorf("tx %s output %d value: %w", tx.TxID, index, err)
		}

		outputs = append(outputs, model.UTXO{
			TxID:         tx.TxID,
			VoutIndex:    index,
			Height:       height,
			Address:      c.firstAddress(vout.ScriptPubKey),
			Satoshis:     satoshis,
			ScriptPubKey: vout.ScriptPubKey.Hex,
		})
	}
	return outputs, nil
}

// firstAddress returns "" for scripts neither the node nor the decoder can attribute.
func (c *OutputConverter) firstAddress(script model.ScriptPubKey) string {
	if len(script.Addresses) > 0 {
		return script.Addresses[0]
	}
	addrs, err := c.decoder.DecodeAddresses(script)
	if err != nil || len(addrs) == 0 {
		return ""
	}
	return addrs[0]
}
