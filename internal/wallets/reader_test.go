package wallets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_NormalizesAndSkipsBlanks(t *testing.T) {
	input := strings.Join([]string{
		"  0xAbC0000000000000000000000000000000000001  ",
		"",
		"   ",
		"0x39AA39c021dfbaE8faC545936693aC917d5E7563",
		"\t0xdef0000000000000000000000000000000000002\r",
	}, "\n")

	got, err := Read(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"0xabc0000000000000000000000000000000000001",
		"0x39aa39c021dfbae8fac545936693ac917d5e7563",
		"0xdef0000000000000000000000000000000000002",
	}, got)
}

func TestRead_DedupesKeepingFirst(t *testing.T) {
	input := "0xB000000000000000000000000000000000000000\n" +
		"0xa000000000000000000000000000000000000000\n" +
		"0xb000000000000000000000000000000000000000\n"

	got, err := Read(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"0xb000000000000000000000000000000000000000",
		"0xa000000000000000000000000000000000000000",
	}, got)
}

func TestRead_Empty(t *testing.T) {
	got, err := Read(strings.NewReader("\n\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallets.txt")
	require.NoError(t, os.WriteFile(path, []byte("0xAA00000000000000000000000000000000000000\n"), 0644))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"0xaa00000000000000000000000000000000000000"}, got)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("0x39aa39c021dfbae8fac545936693ac917d5e7563"))
	assert.True(t, Valid("39aa39c021dfbae8fac545936693ac917d5e7563"))
	assert.False(t, Valid("0x39aa"))
	assert.False(t, Valid("0xzzaa39c021dfbae8fac545936693ac917d5e7563"))
	assert.False(t, Valid(""))
}
