package node

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
)

// scriptDecoder extracts addresses from raw script hex using bitcoin-family params.
type scriptDecoder struct {
	params *chaincfg.Params
}

// fluxDecoder encodes transparent addresses with two-byte version prefixes,
// which chaincfg.Params cannot express.
type fluxDecoder struct {
	pubKeyHash [2]byte
	scriptHash [2]byte
}

var (
	fluxMainNet = fluxDecoder{pubKeyHash: [2]byte{0x1c, 0xb8}, scriptHash: [2]byte{0x1c, 0xbd}}
	fluxTestNet = fluxDecoder{pubKeyHash: [2]byte{0x1d, 0x25}, scriptHash: [2]byte{0x1c, 0xba}}
)

// noopDecoder is used when no address params are configured.
type noopDecoder struct{}

// NewScriptDecoder returns a decoder for the named params: flux or
// flux-testnet for Flux transparent addresses, or a bitcoin network name.
// An empty name disables the fallback.
func NewScriptDecoder(paramsName string) (ScriptDecoder, error) {
	switch strings.ToLower(paramsName) {
	case "":
		return noopDecoder{}, nil
	case "flux", "flux-mainnet":
		return fluxMainNet, nil
	case "flux-testnet":
		return fluxTestNet, nil
	}
	params, err := chainParamsByName(paramsName)
	if err != nil {
		return nil, err
	}
	return &scriptDecoder{params: params}, nil
}

func (noopDecoder) DecodeAddresses(model.ScriptPubKey) ([]string, error) {
	return nil, nil
}

func (d *scriptDecoder) DecodeAddresses(script model.ScriptPubKey) ([]string, error) {
	addrs, err := extractAddresses(script, d.params)
	if err != nil || addrs == nil {
		return script.Addresses, err
	}

	result := make([]string, 0, len(addrs))
	for _, addr := range addrs {
		result = append(result, addr.EncodeAddress())
	}
	return result, nil
}

func (d fluxDecoder) DecodeAddresses(script model.ScriptPubKey) ([]string, error) {
	// Params only drive bitcoin encoding, which is not used here.
	addrs, err := extractAddresses(script, &chaincfg.MainNetParams)
	if err != nil || addrs == nil {
		return script.Addresses, err
	}

	result := make([]string, 0, len(addrs))
	for _, addr := range addrs {
		switch a := addr.(type) {
		case *btcutil.AddressPubKeyHash:
			result = append(result, encodeFlux(d.pubKeyHash, a.ScriptAddress()))
		case *btcutil.AddressScriptHash:
			result = append(result, encodeFlux(d.scriptHash, a.ScriptAddress()))
		case *btcutil.AddressPubKey:
			result = append(result, encodeFlux(d.pubKeyHash, a.AddressPubKeyHash().ScriptAddress()))
		}
	}
	return result, nil
}

// extractAddresses returns nil addresses when the node already reported them
// or the script is empty; callers then return script.Addresses as is.
func extractAddresses(script model.ScriptPubKey, params *chaincfg.Params) ([]btcutil.Address, error) {
	if len(script.Addresses) > 0 {
		return nil, nil
	}
	if script.Hex == "" {
		return nil, nil
	}

	scriptBytes, err := hex.DecodeString(script.Hex)
	if err != nil {
		return nil, err
	}
	_, addrs, _, err := txscript.ExtractPkScriptAddrs(scriptBytes, params)
	if err != nil {
		return nil, err
	}
	if addrs == nil {
		addrs = []btcutil.Address{}
	}
	return addrs, nil
}

func encodeFlux(prefix [2]byte, hash []byte) string {
	payload := make([]byte, 0, 1+len(hash))
	payload = append(payload, prefix[1])
	payload = append(payload, hash...)
	return base58.CheckEncode(payload, prefix[0])
}

func chainParamsByName(name string) (*chaincfg.Params, error) {
	switch strings.ToLower(name) {
	case "main", "mainnet", "bitcoin":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported address params %q", name)
	}
}
