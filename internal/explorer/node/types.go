package node

import (
	"encoding/json"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RPCClient is the raw JSON-RPC surface of the full node.
	RPCClient interface {
		GetBlockCount() (int64, error)
		RawRequest(method string, params []json.RawMessage) (json.RawMessage, error)
	}
	// ScriptDecoder derives addresses from a locking script when the node reports none.
	ScriptDecoder interface {
		DecodeAddresses(script model.ScriptPubKey) ([]string, error)
	}
)
