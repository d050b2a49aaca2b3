package waves

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/wavesplatform/gowaves/pkg/crypto"
	"github.com/wavesplatform/gowaves/pkg/proto"

	"wavesbot/internal/asset"
	"wavesbot/internal/maker"
)

// MatcherClient talks to the matcher's REST API: order book reads, order
// placement and pair-wide cancellation.
type MatcherClient struct {
	base      string
	http      *http.Client
	publicKey crypto.PublicKey
}

// NewMatcherClient builds a client for the matcher at base and fetches the
// matcher's public key, which every placed order is addressed to.
func NewMatcherClient(base string) (*MatcherClient, error) {
	c := &MatcherClient{
		base: base,
		http: &http.Client{Timeout: 10 * time.Second},
	}
	var pk string
	if err := c.get(c.base+"/matcher", &pk); err != nil {
		return nil, fmt.Errorf("matcher public key: %w", err)
	}
	key, err := crypto.NewPublicKeyFromBase58(pk)
	if err != nil {
		return nil, fmt.Errorf("matcher public key: %w", err)
	}
	c.publicKey = key
	return c, nil
}

type orderBookLevel struct {
	Price  int64 `json:"price"`
	Amount int64 `json:"amount"`
}

type orderBookResponse struct {
	Bids []orderBookLevel `json:"bids"`
	Asks []orderBookLevel `json:"asks"`
}

// OrderBook returns the best bid and ask in raw price units.
func (c *MatcherClient) OrderBook(pair asset.Pair) (bid, ask int64, err error) {
	url := fmt.Sprintf("%s/matcher/orderbook/%s/%s?depth=1", c.base, assetOrWaves(pair.Amount.ID), assetOrWaves(pair.Price.ID))
	var out orderBookResponse
	if err := c.get(url, &out); err != nil {
		return 0, 0, err
	}
	if len(out.Bids) == 0 || len(out.Asks) == 0 {
		return 0, 0, fmt.Errorf("matcher: empty order book for %s", pair)
	}
	return out.Bids[0].Price, out.Asks[0].Price, nil
}

// Place signs and submits a limit order. Amount and price are in smallest
// units; the returned id is the signed order's id.
func (c *MatcherClient) Place(acc *Account, pair asset.Pair, side maker.Side, amount, price, fee int64, lifetime time.Duration) (string, error) {
	amountAsset, err := proto.NewOptionalAssetFromString(assetOrWaves(pair.Amount.ID))
	if err != nil {
		return "", fmt.Errorf("amount asset: %w", err)
	}
	priceAsset, err := proto.NewOptionalAssetFromString(assetOrWaves(pair.Price.ID))
	if err != nil {
		return "", fmt.Errorf("price asset: %w", err)
	}

	orderType := proto.Buy
	if side == maker.Sell {
		orderType = proto.Sell
	}

	now := uint64(time.Now().UnixMilli())
	order := proto.NewUnsignedOrderV3(
		acc.PublicKey, c.publicKey,
		*amountAsset, *priceAsset,
		orderType,
		uint64(price), uint64(amount),
		now, now+uint64(lifetime.Milliseconds()),
		uint64(fee),
		proto.NewOptionalAssetWaves(),
	)
	if err := order.Sign(acc.Scheme, acc.SecretKey); err != nil {
		return "", fmt.Errorf("sign order: %w", err)
	}

	body, err := json.Marshal(order)
	if err != nil {
		return "", fmt.Errorf("encode order: %w", err)
	}
	if err := c.post(c.base+"/matcher/orderbook", body); err != nil {
		return "", err
	}
	return order.ID.String(), nil
}

// CancelAll asks the matcher to drop every open order for the pair. The
// matcher acknowledges before its book reflects it.
func (c *MatcherClient) CancelAll(acc *Account, pair asset.Pair) error {
	ts := time.Now().UnixMilli()

	// Signature covers the sender's public key followed by the big-endian
	// millisecond timestamp.
	data := make([]byte, 0, crypto.PublicKeySize+8)
	data = append(data, acc.PublicKey[:]...)
	data = binary.BigEndian.AppendUint64(data, uint64(ts))
	sig, err := crypto.Sign(acc.SecretKey, data)
	if err != nil {
		return fmt.Errorf("sign cancel: %w", err)
	}

	body, err := json.Marshal(map[string]any{
		"sender":    acc.PublicKey.String(),
		"timestamp": ts,
		"signature": sig.String(),
	})
	if err != nil {
		return fmt.Errorf("encode cancel: %w", err)
	}
	url := fmt.Sprintf("%s/matcher/orderbook/%s/%s/cancel", c.base, assetOrWaves(pair.Amount.ID), assetOrWaves(pair.Price.ID))
	return c.post(url, body)
}

func (c *MatcherClient) get(url string, out any) error {
	resp, err := c.http.Get(url)
	if err != nil {
		return fmt.Errorf("matcher: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("matcher: %s returned %s", url, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("matcher: decode %s: %w", url, err)
	}
	return nil
}

func (c *MatcherClient) post(url string, body []byte) error {
	resp, err := c.http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("matcher: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("matcher: %s returned %s", url, resp.Status)
	}
	return nil
}

func assetOrWaves(id string) string {
	if id == "" {
		return "WAVES"
	}
	return id
}
