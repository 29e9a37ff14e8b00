package rpc

import (
	"context"
	"encoding/hex"
	"encoding/json"

	"github.com/openfrac/gofracd/internal/core/tx"
	"github.com/openfrac/gofracd/internal/version"
)

const defaultHistoryLimit = 50

// registerAllMethods installs the method table.
func (s *Server) registerAllMethods() {
	s.methods["server_info"] = s.handleServerInfo
	s.methods["vault_info"] = s.handleVaultInfo
	s.methods["reserve_price"] = s.handleReservePrice
	s.methods["account_info"] = s.handleAccountInfo
	s.methods["submit"] = s.handleSubmit
	s.methods["tx"] = s.handleTx
	s.methods["auction_history"] = s.handleAuctionHistory
}

func (s *Server) handleServerInfo(ctx context.Context, params json.RawMessage) (map[string]any, *Error) {
	types := tx.SupportedTypes()
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, t.String())
	}
	return map[string]any{
		"version":         version.Version,
		"commit":          version.Commit,
		"time":            s.node.Now(),
		"supported_types": names,
	}, nil
}

func (s *Server) handleVaultInfo(ctx context.Context, params json.RawMessage) (map[string]any, *Error) {
	v := s.node.Vault()
	lg := s.node.Ledger()

	return map[string]any{
		"asset_id":       v.AssetID,
		"asset_owner":    lg.AssetOwner(),
		"curator":        v.Curator,
		"curator_fee":    v.CuratorFee,
		"last_claimed":   v.LastClaimed,
		"total_supply":   lg.TotalSupply(),
		"pool":           v.Pool,
		"auction_state":  v.Auction.String(),
		"auction_end":    v.AuctionEnd,
		"auction_length": v.AuctionLength,
		"live_price":     v.LivePrice,
		"winning":        v.Winning,
		"reserve_price":  v.ReservePrice(),
		"voting_tokens":  v.VotingTokens,
		"settings":       v.Settings,
	}, nil
}

func (s *Server) handleReservePrice(ctx context.Context, params json.RawMessage) (map[string]any, *Error) {
	v := s.node.Vault()
	return map[string]any{
		"reserve_price": v.ReservePrice(),
		"reserve_total": v.ReserveTotal,
		"voting_tokens": v.VotingTokens,
	}, nil
}

func (s *Server) handleAccountInfo(ctx context.Context, params json.RawMessage) (map[string]any, *Error) {
	var req struct {
		Account string `json:"account"`
	}
	if len(params) > 0 {
		if err := json.Unmarshal(params, &req); err != nil {
			return nil, ErrorInvalidParams("Invalid parameters: " + err.Error())
		}
	}
	if req.Account == "" {
		return nil, ErrorInvalidParams("Missing field 'account'")
	}

	acct, ok := s.node.Ledger().Account(req.Account)
	if !ok {
		return nil, ErrorNotFound("actNotFound", "Account not found")
	}

	v := s.node.Vault()
	return map[string]any{
		"account":    acct.Address,
		"shares":     acct.Shares,
		"native":     acct.Native,
		"wrapped":    acct.Wrapped,
		"sequence":   acct.Sequence,
		"contract":   acct.Contract,
		"user_price": v.UserPrices[acct.Address],
	}, nil
}

func (s *Server) handleSubmit(ctx context.Context, params json.RawMessage) (map[string]any, *Error) {
	var req struct {
		TxJSON json.RawMessage `json:"tx_json"`
	}
	if len(params) > 0 {
		if err := json.Unmarshal(params, &req); err != nil {
			return nil, ErrorInvalidParams("Invalid parameters: " + err.Error())
		}
	}
	if len(req.TxJSON) == 0 {
		return nil, ErrorInvalidParams("Missing field 'tx_json'")
	}

	txn, err := tx.FromJSON(req.TxJSON)
	if err != nil {
		return nil, ErrorInvalidParams("Invalid transaction: " + err.Error())
	}

	result := s.node.Submit(ctx, txn)
	hash := hex.EncodeToString(result.Hash[:])
	if result.Applied {
		s.txCache.Add(hash, result)
	}

	return map[string]any{
		"engine_result":         result.Result.String(),
		"engine_result_message": result.Message,
		"applied":               result.Applied,
		"tx_hash":               hash,
	}, nil
}

func (s *Server) handleTx(ctx context.Context, params json.RawMessage) (map[string]any, *Error) {
	var req struct {
		Hash string `json:"hash"`
	}
	if len(params) > 0 {
		if err := json.Unmarshal(params, &req); err != nil {
			return nil, ErrorInvalidParams("Invalid parameters: " + err.Error())
		}
	}
	if req.Hash == "" {
		return nil, ErrorInvalidParams("Missing field 'hash'")
	}

	result, ok := s.txCache.Get(req.Hash)
	if !ok {
		return nil, ErrorNotFound("txnNotFound", "Transaction not found")
	}

	return map[string]any{
		"tx_hash":               req.Hash,
		"engine_result":         result.Result.String(),
		"engine_result_message": result.Message,
		"applied":               result.Applied,
	}, nil
}

func (s *Server) handleAuctionHistory(ctx context.Context, params json.RawMessage) (map[string]any, *Error) {
	hist := s.node.History()
	if hist == nil {
		return nil, ErrorNotFound("noHistory", "History store is not configured")
	}

	var req struct {
		Limit int `json:"limit"`
	}
	if len(params) > 0 {
		if err := json.Unmarshal(params, &req); err != nil {
			return nil, ErrorInvalidParams("Invalid parameters: " + err.Error())
		}
	}
	if req.Limit <= 0 {
		req.Limit = defaultHistoryLimit
	}

	bids, err := hist.Bids(ctx, req.Limit)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load bid history")
		return nil, ErrorInternal("Failed to load bid history")
	}
	settlements, err := hist.Settlements(ctx, req.Limit)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load settlement history")
		return nil, ErrorInternal("Failed to load settlement history")
	}

	return map[string]any{
		"bids":        bids,
		"settlements": settlements,
	}, nil
}
