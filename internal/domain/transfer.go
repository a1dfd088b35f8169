package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// TransferRecord represents one asset transfer between a wallet and a protocol contract.
// Optional provider fields are modelled as pointers; nil means the field was absent,
// null, or could not be interpreted. Defaulting happens once, at decode time.
type TransferRecord struct {
	Value    *float64 // decimal-adjusted transfer value, nil if absent or non-numeric
	Asset    *string  // asset symbol (e.g. "cUSDC"), nil if absent
	Hash     string   // transaction hash
	From     string   // sender address
	To       string   // receiver address
	Category string   // "erc20" | "external" | "internal"
	BlockNum string   // hex block number
	UniqueID string   // provider-assigned transfer id
}

// TransferSet is the fetched transfer history for a single wallet.
// An empty set is a valid result, not an error.
type TransferSet struct {
	Transfers         []TransferRecord
	TotalInteractions int
}

// NewTransferSet wraps transfers and fills TotalInteractions.
func NewTransferSet(transfers []TransferRecord) TransferSet {
	return TransferSet{
		Transfers:         transfers,
		TotalInteractions: len(transfers),
	}
}

// transferRecordJSON mirrors the provider payload before normalisation.
type transferRecordJSON struct {
	Value    json.RawMessage `json:"value"`
	Asset    json.RawMessage `json:"asset"`
	Hash     string          `json:"hash"`
	From     string          `json:"from"`
	To       string          `json:"to"`
	Category string          `json:"category"`
	BlockNum string          `json:"blockNum"`
	UniqueID string          `json:"uniqueId"`
}

// UnmarshalJSON decodes a provider transfer. Value accepts JSON numbers and
// numeric strings; anything else leaves Value nil.
func (t *TransferRecord) UnmarshalJSON(data []byte) error {
	var raw transferRecordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*t = TransferRecord{
		Value:    parseNumeric(raw.Value),
		Asset:    parseIdentifier(raw.Asset),
		Hash:     raw.Hash,
		From:     raw.From,
		To:       raw.To,
		Category: raw.Category,
		BlockNum: raw.BlockNum,
		UniqueID: raw.UniqueID,
	}
	return nil
}

// MarshalJSON encodes the record in provider shape (null for nil optionals).
func (t TransferRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Value    *float64 `json:"value"`
		Asset    *string  `json:"asset"`
		Hash     string   `json:"hash,omitempty"`
		From     string   `json:"from,omitempty"`
		To       string   `json:"to,omitempty"`
		Category string   `json:"category,omitempty"`
		BlockNum string   `json:"blockNum,omitempty"`
		UniqueID string   `json:"uniqueId,omitempty"`
	}{t.Value, t.Asset, t.Hash, t.From, t.To, t.Category, t.BlockNum, t.UniqueID})
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// parseNumeric coerces a JSON number or numeric string to float64.
// Non-finite results are treated as non-numeric.
func parseNumeric(raw json.RawMessage) *float64 {
	if isNull(raw) {
		return nil
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return finite(f)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return finite(f)
}

func finite(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// parseIdentifier returns a string identifier, or the literal JSON text for
// non-string scalars so they still count towards asset diversity.
func parseIdentifier(raw json.RawMessage) *string {
	if isNull(raw) {
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return &s
	}

	text := string(bytes.TrimSpace(raw))
	return &text
}
