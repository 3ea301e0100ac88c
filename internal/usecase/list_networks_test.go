package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palisade-org/palisade/internal/usecase"
)

func TestListNetworks(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t)
	list := usecase.NewListNetworks(f.cfg, f.resolver, f.store)

	before, err := list.Run(ctx)
	require.NoError(t, err)
	require.Len(t, before.Networks, 1)
	assert.Equal(t, testChain, before.Networks[0].ChainID)
	assert.False(t, before.Networks[0].Deployed)

	// Deploy the full set; the listing flips to deployed.
	writeArtifacts(t, f.cfg.ArtifactsPath)
	fundOperator(f)
	f.chain.deployThroughFactory()
	_, err = newDeployer(f).Run(ctx, usecase.DeployInfrastructureParams{ChainID: testChain})
	require.NoError(t, err)

	after, err := list.Run(ctx)
	require.NoError(t, err)
	require.Len(t, after.Networks, 1)
	assert.True(t, after.Networks[0].Deployed)
	assert.NotEmpty(t, after.Networks[0].Contracts.Get("batchHelper"))
}
