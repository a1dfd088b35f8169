// Package wallets reads and normalises the list of wallet addresses to score.
package wallets

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Read parses one address per line. Lines are trimmed and lowercased, blank
// lines are skipped and repeated addresses keep their first position.
// Addresses are not validated here; see Valid.
func Read(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	seen := make(map[string]struct{})
	var result []string

	for scanner.Scan() {
		addr := Normalize(scanner.Text())
		if addr == "" {
			continue
		}
		if _, dup := seen[addr]; dup {
			continue
		}
		seen[addr] = struct{}{}
		result = append(result, addr)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan wallet list: %w", err)
	}

	return result, nil
}

// ReadFile reads a wallet list from path.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open wallet list: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Normalize trims whitespace and lowercases an address.
func Normalize(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}

// Valid reports whether addr is a 20-byte hex address (with or without 0x).
func Valid(addr string) bool {
	return common.IsHexAddress(addr)
}
