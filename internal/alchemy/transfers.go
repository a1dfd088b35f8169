package alchemy

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"compound-risk-lab/internal/domain"
)

// MethodGetAssetTransfers is the Alchemy transfers API method.
const MethodGetAssetTransfers = "alchemy_getAssetTransfers"

// Page size limits for alchemy_getAssetTransfers.
const (
	DefaultMaxCount = 100
	MaxMaxCount     = 1000
)

// TransferCategory filters transfers by kind.
type TransferCategory string

const (
	CategoryERC20    TransferCategory = "erc20"
	CategoryExternal TransferCategory = "external"
	CategoryInternal TransferCategory = "internal"
)

// LendingCategories are the categories that can indicate lending/borrowing activity.
var LendingCategories = []TransferCategory{CategoryERC20, CategoryExternal, CategoryInternal}

// AssetTransfersParams holds the query for a single alchemy_getAssetTransfers page.
type AssetTransfersParams struct {
	FromAddress       string
	ContractAddresses []string
	Categories        []TransferCategory
	WithMetadata      bool
	ExcludeZeroValue  bool
	MaxCount          uint64 // 0 means DefaultMaxCount
	PageKey           string // empty for the first page
}

// AssetTransfersPage is one page of results.
// PageKey is empty when there are no further pages.
type AssetTransfersPage struct {
	Transfers []domain.TransferRecord `json:"transfers"`
	PageKey   string                  `json:"pageKey,omitempty"`
}

// assetTransfersRequest is the wire shape of the params object.
type assetTransfersRequest struct {
	FromAddress       string             `json:"fromAddress,omitempty"`
	ContractAddresses []string           `json:"contractAddresses,omitempty"`
	Category          []TransferCategory `json:"category"`
	WithMetadata      bool               `json:"withMetadata"`
	ExcludeZeroValue  bool               `json:"excludeZeroValue"`
	MaxCount          string             `json:"maxCount"`
	PageKey           string             `json:"pageKey,omitempty"`
}

// GetAssetTransfers retrieves one page of transfers matching params.
func (c *HTTPClient) GetAssetTransfers(ctx context.Context, params AssetTransfersParams) (*AssetTransfersPage, error) {
	maxCount := params.MaxCount
	if maxCount == 0 {
		maxCount = DefaultMaxCount
	}
	if maxCount > MaxMaxCount {
		return nil, fmt.Errorf("maxCount %d exceeds limit %d", maxCount, MaxMaxCount)
	}

	categories := params.Categories
	if len(categories) == 0 {
		categories = LendingCategories
	}

	req := assetTransfersRequest{
		FromAddress:       params.FromAddress,
		ContractAddresses: params.ContractAddresses,
		Category:          categories,
		WithMetadata:      params.WithMetadata,
		ExcludeZeroValue:  params.ExcludeZeroValue,
		MaxCount:          hexutil.EncodeUint64(maxCount),
		PageKey:           params.PageKey,
	}

	var page AssetTransfersPage
	if err := c.call(ctx, MethodGetAssetTransfers, []interface{}{req}, &page); err != nil {
		return nil, err
	}

	return &page, nil
}
