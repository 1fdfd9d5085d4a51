package model

import "encoding/json"

// BlockExport carries the append-only ledger rows of one folded block.
type BlockExport struct {
	Height              uint64
	AddressTransactions []AddressTransaction
	SpecialTransactions []SpecialTransactionExport
}

// AddressTransaction is a flattened address index append.
type AddressTransaction struct {
	Address string
	TxID    string
	Height  uint64
}

// SpecialTransactionExport is a projected special transaction with its node payload.
type SpecialTransactionExport struct {
	SpecialTransaction
	Payload json.RawMessage
}
