// Package model defines domain models for the explorer indexes.
package model

// UTXO represents one unspent transaction output tracked by the UTXO store.
type UTXO struct {
	TxID         string `bson:"txid" json:"txid"`
	VoutIndex    uint32 `bson:"voutIndex" json:"voutIndex"`
	Height       uint64 `bson:"height" json:"height"`
	Address      string `bson:"address,omitempty" json:"address,omitempty"`
	Satoshis     uint64 `bson:"satoshis" json:"satoshis"`
	ScriptPubKey string `bson:"scriptPubKey" json:"scriptPubKey"`
}

// TxRef references a transaction that touched an address.
type TxRef struct {
	TxID   string `bson:"txid" json:"txid"`
	Height uint64 `bson:"height" json:"height"`
}

// AddressRecord is the append-only transaction history of one address.
type AddressRecord struct {
	Address      string  `bson:"address" json:"address"`
	Transactions []TxRef `bson:"transactions" json:"transactions"`
}

// CollectionStats holds storage statistics reported at checkpoints.
type CollectionStats struct {
	Collection string
	Size       int64
	Count      int64
	AvgObjSize int64
}
