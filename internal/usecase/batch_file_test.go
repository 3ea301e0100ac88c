package usecase_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palisade-org/palisade/internal/domain"
	"github.com/palisade-org/palisade/internal/domain/models"
	"github.com/palisade-org/palisade/internal/usecase"
)

func TestParseBatchFile(t *testing.T) {
	t.Run("parses calls with defaults", func(t *testing.T) {
		file, calls, err := usecase.ParseBatchFile([]byte(`
description: fund ops accounts
calls:
  - to: "0x2000000000000000000000000000000000000002"
    value: "1000000000000000000"
  - to: "0x3000000000000000000000000000000000000003"
    data: "0xa9059cbb"
`))
		require.NoError(t, err)
		assert.Equal(t, "fund ops accounts", file.Description)
		require.Len(t, calls, 2)
		assert.Equal(t, "1000000000000000000", calls[0].Value)
		assert.Equal(t, models.OperationCall, calls[0].Operation)
		assert.Equal(t, "0", calls[1].Value, "missing value defaults to zero")
		assert.Equal(t, "0xa9059cbb", calls[1].Data)
	})

	t.Run("named operations", func(t *testing.T) {
		_, calls, err := usecase.ParseBatchFile([]byte(`
calls:
  - to: "0x2000000000000000000000000000000000000002"
    operation: delegatecall
`))
		require.NoError(t, err)
		assert.Equal(t, models.OperationDelegateCall, calls[0].Operation)
	})

	t.Run("rejects unknown operation", func(t *testing.T) {
		_, _, err := usecase.ParseBatchFile([]byte(`
calls:
  - to: "0x2000000000000000000000000000000000000002"
    operation: staticcall
`))
		require.Error(t, err)
		assert.True(t, domain.IsCode(err, domain.ErrValidation))
	})

	t.Run("rejects empty batch", func(t *testing.T) {
		_, _, err := usecase.ParseBatchFile([]byte(`description: nothing here`))
		require.Error(t, err)
		assert.True(t, domain.IsCode(err, domain.ErrValidation))
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		_, _, err := usecase.ParseBatchFile([]byte(`calls: [`))
		require.Error(t, err)
		assert.True(t, domain.IsCode(err, domain.ErrValidation))
	})
}

func TestLoadBatchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
calls:
  - to: "0x2000000000000000000000000000000000000002"
`), 0o644))

	_, calls, err := usecase.LoadBatchFile(path)
	require.NoError(t, err)
	require.Len(t, calls, 1)

	_, _, err = usecase.LoadBatchFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
