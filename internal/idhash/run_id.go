// Package idhash computes deterministic identifiers for scoring runs.
package idhash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// ComputeRunID computes a deterministic run_id using SHA256.
// Formula: SHA256(wallet_1,...,wallet_n|contract_1,...,contract_m|max_pages)
// Wallet order is significant since it fixes the output row order.
// Returns hex-encoded hash (64 characters).
func ComputeRunID(wallets []string, contracts []string, maxPages int) string {
	data := fmt.Sprintf("%s|%s|%d",
		strings.Join(wallets, ","),
		strings.Join(contracts, ","),
		maxPages,
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}

// ShortID returns the first 12 characters of id for log lines.
func ShortID(id string) string {
	if len(id) <= 12 {
		return id
	}
	return id[:12]
}
