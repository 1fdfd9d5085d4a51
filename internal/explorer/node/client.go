// Package node decodes full-node JSON-RPC responses into explorer models.
package node

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
	"github.com/goodnatureofminers/blockinsight7000-explorer/pkg/safe"
)

const (
	methodGetBlock          = "getblock"
	methodGetRawTransaction = "getrawtransaction"
	verbose                 = 1
)

// Client queries blocks and transactions from a Flux daemon.
type Client struct {
	rpc RPCClient
}

// NewClient constructs a node client on top of an rpc transport.
func NewClient(rpc RPCClient) *Client {
	return &Client{rpc: rpc}
}

// BlockCount returns the height of the node's best chain.
func (c *Client) BlockCount(ctx context.Context) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	count, err := c.rpc.GetBlockCount()
	if err != nil {
		return 0, upstreamError("getblockcount", err)
	}
	height, err := safe.Uint64(count)
	if err != nil {
		return 0, fmt.Errorf("block count: %w", err)
	}
	return height, nil
}

// Block returns the verbose block at height. The height is sent as a string,
// which Zcash-family daemons interpret as a height rather than a hash.
func (c *Client) Block(ctx context.Context, height uint64) (model.NodeBlock, error) {
	if err := ctx.Err(); err != nil {
		return model.NodeBlock{}, err
	}
	params, err := marshalParams(strconv.FormatUint(height, 10), verbose)
	if err != nil {
		return model.NodeBlock{}, err
	}
	raw, err := c.rpc.RawRequest(methodGetBlock, params)
	if err != nil {
		return model.NodeBlock{}, upstreamError(fmt.Sprintf("getblock %d", height), err)
	}

	var block model.NodeBlock
	if err := json.Unmarshal(raw, &block); err != nil {
		return model.NodeBlock{}, fmt.Errorf("decode block %d: %w", height, err)
	}
	return block, nil
}

// RawTransaction returns the verbose transaction for txid. The node payload
// is kept verbatim in Raw.
func (c *Client) RawTransaction(ctx context.Context, txid string) (model.RawTransaction, error) {
	if err := ctx.Err(); err != nil {
		return model.RawTransaction{}, err
	}
	params, err := marshalParams(txid, verbose)
	if err != nil {
		return model.RawTransaction{}, err
	}
	raw, err := c.rpc.RawRequest(methodGetRawTransaction, params)
	if err != nil {
		return model.RawTransaction{}, upstreamError("getrawtransaction "+txid, err)
	}

	var tx model.RawTransaction
	if err := json.Unmarshal(raw, &tx); err != nil {
		return model.RawTransaction{}, fmt.Errorf("decode transaction %s: %w", txid, err)
	}
	tx.Raw = raw
	return tx, nil
}

func marshalParams(values ...any) ([]json.RawMessage, error) {
	params := make([]json.RawMessage, 0, len(values))
	for _, v := range values {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("marshal rpc param %v: %w", v, err)
		}
		params = append(params, b)
	}
	return params, nil
}

// upstreamError wraps err with ErrUpstreamUnavailable. Unknown blocks and
// transactions additionally match ErrNotFound.
func upstreamError(call string, err error) error {
	var rpcErr *btcjson.RPCError
	if errors.As(err, &rpcErr) {
		switch rpcErr.Code {
		case btcjson.ErrRPCInvalidAddressOrKey, btcjson.ErrRPCInvalidParameter:
			return fmt.Errorf("%s: %w: %w: %w", call, model.ErrUpstreamUnavailable, model.ErrNotFound, err)
		}
	}
	return fmt.Errorf("%s: %w: %w", call, model.ErrUpstreamUnavailable, err)
}
