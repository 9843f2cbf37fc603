package ethereum

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/gabapcia/walletmon/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/walletmon/internal/txdecoder"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const erc20JSON = `[
  {"inputs": [], "name": "decimals", "outputs": [{"type": "uint8"}], "stateMutability": "view", "type": "function"},
  {"inputs": [], "name": "symbol", "outputs": [{"type": "string"}], "stateMutability": "view", "type": "function"}
]`

// Some early tokens (MKR among them) return symbol() as bytes32.
const erc20Bytes32JSON = `[
  {"inputs": [], "name": "symbol", "outputs": [{"type": "bytes32"}], "stateMutability": "view", "type": "function"}
]`

var (
	erc20ABI        = mustParseABI(erc20JSON)
	erc20Bytes32ABI = mustParseABI(erc20Bytes32JSON)
)

func mustParseABI(def string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		panic(err)
	}
	return parsed
}

type callMsg struct {
	To   common.Address `json:"to"`
	Data hexutil.Bytes  `json:"data"`
}

// call runs a read-only contract method against the latest block.
func (c *client) call(ctx context.Context, token common.Address, contract abi.ABI, method string) ([]any, error) {
	input, err := contract.Pack(method)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}

	out, err := jsonrpc.FetchInto[hexutil.Bytes](ctx, c.conn, "eth_call", callMsg{To: token, Data: input}, "latest")
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}

	values, err := contract.Unpack(method, out)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("unpack %s: empty output", method)
	}

	return values, nil
}

func (c *client) symbol(ctx context.Context, token common.Address) (string, error) {
	values, err := c.call(ctx, token, erc20ABI, "symbol")
	if err == nil {
		if s, ok := values[0].(string); ok {
			return s, nil
		}
	}

	values, err = c.call(ctx, token, erc20Bytes32ABI, "symbol")
	if err != nil {
		return "", err
	}

	raw, ok := values[0].([32]byte)
	if !ok {
		return "", fmt.Errorf("symbol: unexpected type %T", values[0])
	}

	return string(bytes.TrimRight(raw[:], "\x00")), nil
}

// TokenMetadata reads symbol() and decimals() from an ERC-20 contract.
func (c *client) TokenMetadata(ctx context.Context, token string) (txdecoder.TokenMetadata, error) {
	if !common.IsHexAddress(token) {
		return txdecoder.TokenMetadata{}, fmt.Errorf("invalid token address %q", token)
	}
	addr := common.HexToAddress(token)

	values, err := c.call(ctx, addr, erc20ABI, "decimals")
	if err != nil {
		return txdecoder.TokenMetadata{}, err
	}

	decimals, ok := values[0].(uint8)
	if !ok {
		return txdecoder.TokenMetadata{}, fmt.Errorf("decimals: unexpected type %T", values[0])
	}

	symbol, err := c.symbol(ctx, addr)
	if err != nil {
		return txdecoder.TokenMetadata{}, err
	}

	return txdecoder.TokenMetadata{
		Symbol:   symbol,
		Decimals: decimals,
	}, nil
}
