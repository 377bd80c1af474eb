package csvparser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ginjaninja78/coffee-sales-dashboard/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReader(t *testing.T) {
	content := "\ufeffdate,cash_type,money,coffee_name\n" +
		"2024-03-01,card,38.7,Latte\n" +
		"\n" +
		"2024-03-02,cash,\"40\",Cappuccino,extra\n" +
		"2024-03-03,card\n"

	table, err := ParseReader(strings.NewReader(content), Settings{})
	require.NoError(t, err)

	assert.Equal(t, []string{"date", "cash_type", "money", "coffee_name"}, table.Headers)
	require.Len(t, table.Rows, 3)

	assert.Equal(t, 2, table.Rows[0].Number)
	assert.Equal(t, "38.7", table.Rows[0].Fields["money"])

	// encoding/csv drops blank lines, so numbering follows records.
	assert.Equal(t, 3, table.Rows[1].Number)
	assert.Equal(t, "40", table.Rows[1].Fields["money"])
	assert.Equal(t, "Cappuccino", table.Rows[1].Fields["coffee_name"])

	assert.Equal(t, "", table.Rows[2].Fields["money"])
}

func TestParseReader_Delimiters(t *testing.T) {
	tests := []struct {
		delimiter string
		content   string
	}{
		{";", "money;cash_type\n1;card\n"},
		{"semicolon", "money;cash_type\n1;card\n"},
		{"tab", "money\tcash_type\n1\tcard\n"},
		{"pipe", "money|cash_type\n1|card\n"},
	}

	for _, tt := range tests {
		t.Run(tt.delimiter, func(t *testing.T) {
			table, err := ParseReader(strings.NewReader(tt.content), Settings{Delimiter: tt.delimiter})
			require.NoError(t, err)
			require.Len(t, table.Rows, 1)
			assert.Equal(t, "card", table.Rows[0].Fields["cash_type"])
		})
	}
}

func TestParseReader_Empty(t *testing.T) {
	_, err := ParseReader(strings.NewReader(""), Settings{})
	assert.ErrorContains(t, err, "empty")
}

func TestParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.csv")
	require.NoError(t, os.WriteFile(path, []byte("money\n1\n"), 0o644))

	table, err := Parse(path, Settings{})
	require.NoError(t, err)
	assert.Equal(t, path, table.SourceFile)

	_, err = Parse(filepath.Join(t.TempDir(), "missing.csv"), Settings{})
	assert.ErrorIs(t, err, types.ErrOpen)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseReader_DuplicateHeadersKeepFirstColumn(t *testing.T) {
	table, err := ParseReader(strings.NewReader("money,coffee_name,money\n38.70,Latte,999\n"), Settings{})
	require.NoError(t, err)

	assert.Equal(t, []string{"money", "coffee_name", "money.1"}, table.Headers)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "38.70", table.Rows[0].Fields["money"])
	assert.Equal(t, "999", table.Rows[0].Fields["money.1"])
}
