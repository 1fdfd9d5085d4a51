// Package rpcclient wraps the btcd rpc client with metrics and request pacing.
package rpcclient

import (
	"encoding/json"
	"time"

	"go.uber.org/ratelimit"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
	// RawClient is the subset of *rpcclient.Client used by the explorer.
	RawClient interface {
		GetBlockCount() (int64, error)
		RawRequest(method string, params []json.RawMessage) (json.RawMessage, error)
	}
)

type ObservedClient struct {
	client     RawClient
	rpcMetrics RPCMetrics
	limiter    ratelimit.Limiter
}

// NewObservedClient wraps client. A non-positive rps leaves requests unpaced.
func NewObservedClient(client RawClient, rpcMetrics RPCMetrics, rps int) *ObservedClient {
	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
		limiter:    limiter,
	}
}

func (r *ObservedClient) GetBlockCount() (count int64, err error) {
	r.limiter.Take()
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("getblockcount", err, started)
	}()
	return r.client.GetBlockCount()
}

// RawRequest issues an arbitrary JSON-RPC call; the method name is the metrics operation.
func (r *ObservedClient) RawRequest(method string, params []json.RawMessage) (res json.RawMessage, err error) {
	r.limiter.Take()
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe(method, err, started)
	}()
	return r.client.RawRequest(method, params)
}
