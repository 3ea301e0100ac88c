package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palisade-org/palisade/internal/domain"
)

func TestNetworkDeploymentGasInvariant(t *testing.T) {
	record := NewNetworkDeployment("testchain", domain.MustChainID("eip155:31337"))

	record.Append(ContractDeployment{Name: ContractSingletonFactory, Address: "0x01", GasUsed: 100})
	record.Append(ContractDeployment{Name: ContractWalletSingleton, Address: "0x02", GasUsed: 250})
	record.Append(ContractDeployment{Name: ContractProxyFactory, Address: "0x03", AlreadyDeployed: true})

	assert.Equal(t, uint64(350), record.TotalGasUsed)
	require.NoError(t, record.Validate())

	// A hand-edited accumulator is rejected.
	record.TotalGasUsed = 999
	err := record.Validate()
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.ErrValidation))
}

func TestNetworkDeploymentComplete(t *testing.T) {
	record := NewNetworkDeployment("testchain", domain.MustChainID("eip155:31337"))
	assert.False(t, record.Complete())

	for i, name := range CanonicalContracts {
		record.Append(ContractDeployment{Name: name, Address: "0x0" + string(rune('1'+i))})
	}
	assert.True(t, record.Complete())

	for _, name := range CanonicalContracts {
		dep, ok := record.Find(name)
		assert.True(t, ok)
		assert.NotEmpty(t, dep.Address)
	}
	_, ok := record.Find(ContractName("bogus"))
	assert.False(t, ok)
}

func TestWalletTransactionConfirmations(t *testing.T) {
	tx := &WalletTransaction{SafeTxHash: "0xabc"}

	require.NoError(t, tx.AddConfirmation(SignatureRecord{
		Signer: "0xAAaa000000000000000000000000000000000001",
	}))

	// Same signer, different casing.
	err := tx.AddConfirmation(SignatureRecord{
		Signer: "0xaaAA000000000000000000000000000000000001",
	})
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.ErrDuplicateSignature))
	assert.Len(t, tx.Confirmations, 1)

	assert.True(t, tx.HasSigner("0xaaaa000000000000000000000000000000000001"))
	assert.False(t, tx.HasSigner("0xbbbb000000000000000000000000000000000002"))
}

func TestCallValueBig(t *testing.T) {
	assert.Equal(t, "0", Call{}.ValueBig().String())
	assert.Equal(t, "42", Call{Value: "42"}.ValueBig().String())
	assert.Equal(t, "0", Call{Value: "not-a-number"}.ValueBig().String())
}
