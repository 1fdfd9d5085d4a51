package model

import "encoding/json"

const (
	// SpecialTransactionVersion marks node-registration transactions stored verbatim.
	SpecialTransactionVersion int32 = 5
)

// NodeBlock is the verbose block returned by the node with its transaction ids.
type NodeBlock struct {
	Hash          string   `json:"hash"`
	Height        uint64   `json:"height"`
	Confirmations int64    `json:"confirmations"`
	Time          int64    `json:"time"`
	PreviousHash  string   `json:"previousblockhash"`
	Tx            []string `json:"tx"`
}

// ScriptPubKey describes the locking script of an output.
type ScriptPubKey struct {
	Asm       string   `json:"asm"`
	Hex       string   `json:"hex"`
	Type      string   `json:"type"`
	Addresses []string `json:"addresses"`
}

// Vin is a transaction input as reported by the node.
type Vin struct {
	TxID     string `json:"txid,omitempty"`
	Vout     uint32 `json:"vout"`
	Coinbase string `json:"coinbase,omitempty"`
	Sequence uint32 `json:"sequence"`
}

// IsCoinbase reports whether the input has no predecessor output.
func (v Vin) IsCoinbase() bool {
	return v.Coinbase != ""
}

// Vout is a transaction output as reported by the node.
type Vout struct {
	Value        float64      `json:"value"`
	ValueSat     *int64       `json:"valueSat,omitempty"`
	N            uint32       `json:"n"`
	ScriptPubKey ScriptPubKey `json:"scriptPubKey"`
}

// RawTransaction is the verbose transaction detail returned by the node.
// Raw keeps the original payload so special transactions can be stored verbatim.
type RawTransaction struct {
	TxID    string          `json:"txid"`
	Version int32           `json:"version"`
	Height  uint64          `json:"height"`
	Vin     []Vin           `json:"vin"`
	Vout    []Vout          `json:"vout"`
	Raw     json.RawMessage `json:"-"`
}

// IsStandard reports whether the transaction takes part in UTXO and address indexing.
func (t RawTransaction) IsStandard() bool {
	return t.Version > 0 && t.Version < SpecialTransactionVersion
}

// IsSpecial reports whether the transaction is a node-registration transaction.
func (t RawTransaction) IsSpecial() bool {
	return t.Version == SpecialTransactionVersion
}

// EnrichedTransaction is a raw transaction with the UTXOs its inputs consumed.
type EnrichedTransaction struct {
	RawTransaction
	// Outputs are the UTXOs created from Vout, in output order.
	Outputs []UTXO
	// Senders are the consumed UTXOs, in input order.
	Senders []UTXO
}

// SpecialTransaction is the projected view of a stored node-registration transaction.
type SpecialTransaction struct {
	Hex              string `bson:"hex" json:"hex"`
	TxID             string `bson:"txid" json:"txid"`
	Version          int32  `bson:"version" json:"version"`
	Type             int32  `bson:"type" json:"type"`
	CollateralOutput string `bson:"collateral_output" json:"collateral_output"`
	SigTime          int64  `bson:"sigtime" json:"sigtime"`
	Sig              string `bson:"sig" json:"sig"`
	IP               string `bson:"ip" json:"ip"`
	UpdateType       int32  `bson:"update_type" json:"update_type"`
	BenchmarkTier    int32  `bson:"benchmark_tier" json:"benchmark_tier"`
	BenchmarkSigTime int64  `bson:"benchmark_sigtime" json:"benchmark_sigtime"`
	BenchmarkSig     string `bson:"benchmark_sig" json:"benchmark_sig"`
	CollateralPubKey string `bson:"collateral_pubkey" json:"collateral_pubkey"`
	NodePubKey       string `bson:"zelnode_pubkey" json:"zelnode_pubkey"`
	Height           uint64 `bson:"height" json:"height"`
}
