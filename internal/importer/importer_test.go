package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balancebook-dev/balancebook/internal/journal"
)

const sampleCSV = journal.Header + "\n" +
	"1,2025-01-10,EARN,Penjualan,,1500,11,41,,,,,2025-01-10T09:00:00Z,\n" +
	"2,2025-01-11,OPEX,Sewa,,300,53,11,,,,,2025-01-11T09:00:00Z,\n"

func TestScan(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "import")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "processed"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jan.csv"), []byte(sampleCSV), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0o644))

	files, err := Scan(root)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "jan.csv", files[0].Name)
	assert.Equal(t, filepath.Join(dir, "jan.csv"), files[0].Path)
	assert.Equal(t, int64(len(sampleCSV)), files[0].Size)
}

func TestScan_NoImportDir(t *testing.T) {
	files, err := Scan(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestMarkProcessed(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "import")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jan.csv"), []byte(sampleCSV), 0o644))

	require.NoError(t, MarkProcessed(root, "jan.csv"))

	_, err := os.Stat(filepath.Join(dir, "jan.csv"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "processed", "jan.csv"))
	assert.NoError(t, err)
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()
	require.NotNil(t, r.Get("transactions"))
	assert.NotNil(t, r.Get("TRANSACTIONS"))
	assert.Nil(t, r.Get("mystery-bank"))
}

func TestTransactionsCSVParser_Parse(t *testing.T) {
	var p TransactionsCSVParser
	txns, err := p.Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, txns, 2)

	sale := txns[0]
	assert.Equal(t, "Penjualan", sale.Name)
	dp, ok := sale.Double()
	require.True(t, ok)
	assert.Equal(t, 11, dp.DebitAccountID)
	assert.Equal(t, 41, dp.CreditAccountID)
}

func TestTransactionsCSVParser_RejectsNonPositiveAmount(t *testing.T) {
	bad := journal.Header + "\n" +
		"1,2025-01-10,EARN,Penjualan,,0,11,41,,,,,2025-01-10T09:00:00Z,\n"

	var p TransactionsCSVParser
	_, err := p.Parse(strings.NewReader(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
	assert.Contains(t, err.Error(), "positive")
}

func TestTransactionsCSVParser_RejectsSameAccount(t *testing.T) {
	bad := journal.Header + "\n" +
		"1,2025-01-10,OPEX,Transfer,,50,11,11,,,,,2025-01-10T09:00:00Z,\n"

	var p TransactionsCSVParser
	_, err := p.Parse(strings.NewReader(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "differ")
}
