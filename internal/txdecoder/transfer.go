package txdecoder

import (
	"context"
	"errors"
	"math/big"
	"strings"

	"github.com/gabapcia/walletmon/internal/pkg/logger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"
)

// defaultDecimals is assumed when a token does not answer decimals().
const defaultDecimals = 18

var (
	// TransferTopic is keccak256("Transfer(address,address,uint256)").
	TransferTopic = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))

	// SwapTopic is keccak256 of the UniswapV2-style Swap event. The scanner
	// can be configured to match it instead of, or next to, TransferTopic.
	SwapTopic = crypto.Keccak256Hash([]byte("Swap(address,uint256,uint256,uint256,uint256,address)"))
)

var errMalformedTransfer = errors.New("malformed transfer log")

// transfer is a decoded Transfer log.
type transfer struct {
	Token  string
	Symbol string
	From   string
	To     string
	Amount decimal.Decimal
}

// TopicAddress returns the address packed in the lower 20 bytes of a topic,
// lowercased.
func TopicAddress(topic common.Hash) string {
	return strings.ToLower(common.BytesToAddress(topic.Bytes()).Hex())
}

// ScaleAmount converts a raw token amount to display units. The division is
// exact; no rounding is applied.
func ScaleAmount(raw *big.Int, decimals uint8) decimal.Decimal {
	return decimal.NewFromBigInt(raw, -int32(decimals))
}

// parseTransfer extracts from, to and the raw amount of a Transfer log.
func parseTransfer(log Log) (from, to string, raw *big.Int, err error) {
	if len(log.Topics) != 3 || log.Topics[0] != TransferTopic || len(log.Data) < common.HashLength {
		return "", "", nil, errMalformedTransfer
	}

	raw = new(big.Int).SetBytes(log.Data[:common.HashLength])
	return TopicAddress(log.Topics[1]), TopicAddress(log.Topics[2]), raw, nil
}

// tokenMetadata returns the cached metadata of token, querying the chain on
// the first use. Failures fall back to 18 decimals and no symbol, and are not
// cached.
func (s *service) tokenMetadata(ctx context.Context, token string) TokenMetadata {
	s.mu.Lock()
	md, ok := s.metadata[token]
	s.mu.Unlock()
	if ok {
		return md
	}

	md, err := s.chain.TokenMetadata(ctx, token)
	if err != nil {
		logger.Debug(ctx, "token metadata unavailable",
			"token.address", token,
			"error", err,
		)
		return TokenMetadata{Decimals: defaultDecimals}
	}

	s.mu.Lock()
	s.metadata[token] = md
	s.mu.Unlock()

	return md
}

// decodeTransfers returns the Transfer logs of logs in order. Logs that match
// the Transfer topic but cannot be decoded are logged and skipped.
func (s *service) decodeTransfers(ctx context.Context, logs []Log) []transfer {
	transfers := make([]transfer, 0, len(logs))
	for i, log := range logs {
		if len(log.Topics) == 0 || log.Topics[0] != TransferTopic {
			continue
		}

		from, to, raw, err := parseTransfer(log)
		if err != nil {
			logger.Warn(ctx, "skipping transfer log",
				"log.index", i,
				"log.address", log.Address,
				"error", err,
			)
			continue
		}

		token := strings.ToLower(log.Address)
		md := s.tokenMetadata(ctx, token)

		transfers = append(transfers, transfer{
			Token:  token,
			Symbol: md.Symbol,
			From:   from,
			To:     to,
			Amount: ScaleAmount(raw, md.Decimals),
		})
	}

	return transfers
}

// matchLegs returns the first transfer sent by subject and the last one
// received by it.
func matchLegs(transfers []transfer, subject string) (out, in *transfer) {
	for i := range transfers {
		if transfers[i].From == subject {
			out = &transfers[i]
			break
		}
	}

	for i := len(transfers) - 1; i >= 0; i-- {
		if transfers[i].To == subject {
			in = &transfers[i]
			break
		}
	}

	return out, in
}
