package types

import (
	"github.com/cosmos/cosmos-sdk/types/query"
)

type QueryVaultRequest struct {
	VaultID uint32 `json:"vault_id"`
}

type QueryVaultResponse struct {
	Vault VaultRecord `json:"vault"`
	// Balance is the real asset balance of the vault assets account.
	Balance uint64 `json:"balance"`
}

type QueryVaultsRequest struct {
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

type QueryVaultsResponse struct {
	Vaults     []VaultRecord       `json:"vaults"`
	Pagination *query.PageResponse `json:"pagination,omitempty"`
}

// QueryPreviewDepositRequest previews a deposit. Amount is an asset amount, or a
// share amount when Exact is set.
type QueryPreviewDepositRequest struct {
	VaultID uint32 `json:"vault_id"`
	Amount  uint64 `json:"amount"`
	WithFee bool   `json:"with_fee"`
	Exact   bool   `json:"exact"`
}

type QueryPreviewDepositResponse struct {
	Effect Effect `json:"effect"`
}

type QueryPreviewRedeemRequest struct {
	VaultID uint32 `json:"vault_id"`
	Shares  uint64 `json:"shares"`
}

type QueryPreviewRedeemResponse struct {
	Effect Effect `json:"effect"`
}
