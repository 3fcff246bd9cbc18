package record_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/strcheck/pkg/record"
)

func TestReadCSV(t *testing.T) {
	t.Parallel()

	t.Run("header and rows", func(t *testing.T) {
		rows, err := record.ReadCSV(strings.NewReader("Key,Code\nA,X1\nB,\n"))
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, record.Map{"Key": "A", "Code": "X1"}, rows[0])
		assert.Equal(t, record.Map{"Key": "B", "Code": ""}, rows[1])
	})

	t.Run("short rows leave columns null", func(t *testing.T) {
		rows, err := record.ReadCSV(strings.NewReader("Key,Code,Status\nA\nB,C,D,E\n"))
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Nil(t, rows[0].Get("Code"))
		assert.Nil(t, rows[0].Get("Status"))
		assert.Equal(t, record.Map{"Key": "B", "Code": "C", "Status": "D"}, rows[1])
	})

	t.Run("null marker", func(t *testing.T) {
		rows, err := record.ReadCSV(strings.NewReader("Key,Code\nA,NULL\n"), record.WithNullValue("NULL"))
		require.NoError(t, err)
		assert.Nil(t, rows[0].Get("Code"))
		assert.Equal(t, "A", *rows[0].Get("Key"))
	})

	t.Run("empty cells as null", func(t *testing.T) {
		rows, err := record.ReadCSV(strings.NewReader("Key,Code\nA,\n"), record.WithNullValue(""))
		require.NoError(t, err)
		assert.Nil(t, rows[0].Get("Code"))
	})

	t.Run("delimiter and trimming", func(t *testing.T) {
		rows, err := record.ReadCSV(
			strings.NewReader(" Key ; Price \n A ; 1,5 \n"),
			record.WithComma(';'),
			record.WithTrimSpace(),
		)
		require.NoError(t, err)
		assert.Equal(t, record.Map{"Key": "A", "Price": "1,5"}, rows[0])
	})

	t.Run("header only", func(t *testing.T) {
		rows, err := record.ReadCSV(strings.NewReader("Key,Code\n"))
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := record.ReadCSV(strings.NewReader(""))
		assert.ErrorIs(t, err, record.ErrEmptyHeader)
	})

	t.Run("duplicate column", func(t *testing.T) {
		_, err := record.ReadCSV(strings.NewReader("Key,Key\nA,B\n"))
		assert.ErrorIs(t, err, record.ErrDuplicateColumn)
	})

	t.Run("malformed quoting", func(t *testing.T) {
		_, err := record.ReadCSV(strings.NewReader("Key\nA\"B\n"))
		assert.ErrorIs(t, err, record.ErrReadCSV)
	})
}
