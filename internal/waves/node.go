// Package waves is the REST glue between the maker core and a Waves node
// and matcher. Balances and the order book come back in smallest units /
// raw price units; the gateway adapter scales them for the core.
package waves

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"wavesbot/internal/asset"
)

// NodeClient reads balances and asset details from a Waves node.
type NodeClient struct {
	base string
	http *http.Client
}

// NewNodeClient builds a client for the node REST API at base.
func NewNodeClient(base string) *NodeClient {
	return &NodeClient{
		base: base,
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

type balanceResponse struct {
	Balance int64 `json:"balance"`
}

type assetDetailsResponse struct {
	AssetID  string `json:"assetId"`
	Name     string `json:"name"`
	Decimals int32  `json:"decimals"`
}

// Balance returns the smallest-unit balance of assetID held by addr. An
// empty assetID means WAVES.
func (c *NodeClient) Balance(addr, assetID string) (int64, error) {
	url := fmt.Sprintf("%s/addresses/balance/%s", c.base, addr)
	if assetID != "" {
		url = fmt.Sprintf("%s/assets/balance/%s/%s", c.base, addr, assetID)
	}
	var out balanceResponse
	if err := c.get(url, &out); err != nil {
		return 0, err
	}
	return out.Balance, nil
}

// AssetDetails resolves an asset's on-chain name and decimal precision.
func (c *NodeClient) AssetDetails(assetID string) (asset.Asset, error) {
	var out assetDetailsResponse
	if err := c.get(fmt.Sprintf("%s/assets/details/%s", c.base, assetID), &out); err != nil {
		return asset.Asset{}, err
	}
	return asset.Asset{ID: out.AssetID, Name: out.Name, Decimals: out.Decimals}, nil
}

func (c *NodeClient) get(url string, out any) error {
	resp, err := c.http.Get(url)
	if err != nil {
		return fmt.Errorf("node: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("node: %s returned %s", url, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("node: decode %s: %w", url, err)
	}
	return nil
}

// ResolveAsset turns a configured asset id into a handle with decimals
// fetched from the node. "WAVES" or an empty id is the native asset. A
// non-empty name overrides the on-chain one for display.
func ResolveAsset(node *NodeClient, id, name string) (asset.Asset, error) {
	if id == "" || id == "WAVES" {
		return asset.Waves(), nil
	}
	a, err := node.AssetDetails(id)
	if err != nil {
		return asset.Asset{}, err
	}
	if name != "" {
		a.Name = name
	}
	return a, nil
}
