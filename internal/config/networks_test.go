package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palisade-org/palisade/internal/domain"
)

func TestLoadNetworks(t *testing.T) {
	t.Run("defaults only when no file exists", func(t *testing.T) {
		networks, err := LoadNetworks(t.TempDir())
		require.NoError(t, err)

		mainnet, ok := networks["eip155:1"]
		require.True(t, ok)
		assert.Equal(t, "mainnet", mainnet.Name)
		assert.Empty(t, mainnet.RPCURL, "defaults never carry RPC endpoints")

		anvil, ok := networks["eip155:31337"]
		require.True(t, ok)
		assert.True(t, anvil.Testnet)
	})

	t.Run("file entries merge over defaults", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "networks.toml"), []byte(`
[networks.anvil]
chain_id = 31337
rpc_url = "http://localhost:8545"

[networks.devnet]
chain_id = 99999
name = "devnet"
rpc_url = "http://localhost:9545"
testnet = true
`), 0o644))

		networks, err := LoadNetworks(dir)
		require.NoError(t, err)

		anvil := networks["eip155:31337"]
		require.NotNil(t, anvil)
		assert.Equal(t, "http://localhost:8545", anvil.RPCURL)
		assert.True(t, anvil.Testnet, "default testnet flag survives the merge")

		devnet := networks["eip155:99999"]
		require.NotNil(t, devnet)
		assert.Equal(t, "devnet", devnet.Name)
		assert.Equal(t, "http://localhost:9545", devnet.RPCURL)

		// Untouched defaults are still present.
		assert.NotNil(t, networks["eip155:1"])
	})

	t.Run("entry name becomes the network name", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "networks.toml"), []byte(`
[networks.staging]
chain_id = 4242
rpc_url = "http://staging:8545"
`), 0o644))

		networks, err := LoadNetworks(dir)
		require.NoError(t, err)
		assert.Equal(t, "staging", networks["eip155:4242"].Name)
	})

	t.Run("missing chain_id is rejected", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "networks.toml"), []byte(`
[networks.broken]
rpc_url = "http://localhost:8545"
`), 0o644))

		_, err := LoadNetworks(dir)
		require.Error(t, err)
		assert.True(t, domain.IsCode(err, domain.ErrValidation))
	})

	t.Run("malformed toml is rejected", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "networks.toml"), []byte(`[networks.`), 0o644))

		_, err := LoadNetworks(dir)
		require.Error(t, err)
	})
}
