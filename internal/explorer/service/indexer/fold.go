package indexer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
	"github.com/goodnatureofminers/blockinsight7000-explorer/pkg/workerpool"
	"go.uber.org/zap"
)

type addressAppends struct {
	address string
	refs    []model.TxRef
}

// fold records enriched transactions into the address index and the special
// transaction table. Appends for one address keep block order; distinct
// addresses are written concurrently. A special transaction whose payload
// cannot be projected is indexed but left out of the export.
func fold(ctx context.Context, store Store, concurrency int, height uint64, txs []*model.EnrichedTransaction, logger *zap.Logger) (model.BlockExport, error) {
	export := model.BlockExport{Height: height}

	groups := make([]*addressAppends, 0)
	byAddress := make(map[string]*addressAppends)
	var specials []model.RawTransaction

	for _, tx := range txs {
		if tx.IsSpecial() {
			specials = append(specials, tx.RawTransaction)
			continue
		}
		if !tx.IsStandard() {
			continue
		}

		ref := model.TxRef{TxID: tx.TxID, Height: tx.Height}
		if ref.Height == 0 {
			ref.Height = height
		}
		for _, address := range involvedAddresses(tx) {
			group, ok := byAddress[address]
			if !ok {
				group = &addressAppends{address: address}
				byAddress[address] = group
				groups = append(groups, group)
			}
			group.refs = append(group.refs, ref)
			export.AddressTransactions = append(export.AddressTransactions, model.AddressTransaction{
				Address: address,
				TxID:    ref.TxID,
				Height:  ref.Height,
			})
		}
	}

	err := workerpool.Process(ctx, concurrency, groups, func(ctx context.Context, group *addressAppends) error {
		for _, ref := range group.refs {
			if err := store.AppendAddressTransaction(ctx, group.address, ref); err != nil {
				return fmt.Errorf("append %s to %s: %w", ref.TxID, group.address, err)
			}
		}
		return nil
	}, nil)
	if err != nil {
		return model.BlockExport{}, err
	}

	for _, tx := range specials {
		if err := store.InsertSpecialTransaction(ctx, tx, height); err != nil {
			return model.BlockExport{}, fmt.Errorf("insert special %s: %w", tx.TxID, err)
		}
		special, err := specialExport(tx, height)
		if err != nil {
			logger.Warn("special transaction not exported", zap.Uint64("height", height), zap.Error(err))
			continue
		}
		export.SpecialTransactions = append(export.SpecialTransactions, special)
	}

	return export, nil
}

// involvedAddresses returns the distinct non-empty sender and recipient
// addresses of tx in first-appearance order.
func involvedAddresses(tx *model.EnrichedTransaction) []string {
	seen := make(map[string]struct{}, len(tx.Senders)+len(tx.Outputs))
	addresses := make([]string, 0, len(tx.Senders)+len(tx.Outputs))
	add := func(address string) {
		if address == "" {
			return
		}
		if _, ok := seen[address]; ok {
			return
		}
		seen[address] = struct{}{}
		addresses = append(addresses, address)
	}
	for _, sender := range tx.Senders {
		add(sender.Address)
	}
	for _, output := range tx.Outputs {
		add(output.Address)
	}
	return addresses
}

func specialExport(tx model.RawTransaction, height uint64) (model.SpecialTransactionExport, error) {
	payload := tx.Raw
	if len(payload) == 0 {
		var err error
		if payload, err = json.Marshal(tx); err != nil {
			return model.SpecialTransactionExport{}, fmt.Errorf("encode special %s: %w", tx.TxID, err)
		}
	}
	var special model.SpecialTransaction
	if err := json.Unmarshal(payload, &special); err != nil {
		return model.SpecialTransactionExport{}, fmt.Errorf("project special %s: %w", tx.TxID, err)
	}
	special.TxID = tx.TxID
	special.Version = tx.Version
	special.Height = height
	return model.SpecialTransactionExport{SpecialTransaction: special, Payload: payload}, nil
}
