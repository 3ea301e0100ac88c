package safe

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictAddress(t *testing.T) {
	initCode := []byte{0x60, 0x80, 0x60, 0x40}

	first := PredictAddress(SingletonFactoryAddress, DeploymentSalt, initCode)
	second := PredictAddress(SingletonFactoryAddress, DeploymentSalt, initCode)
	assert.Equal(t, first, second, "prediction is a pure function of its inputs")
	assert.NotEqual(t, common.Address{}, first)

	// Different init code, different address.
	other := PredictAddress(SingletonFactoryAddress, DeploymentSalt, []byte{0x60, 0x80})
	assert.NotEqual(t, first, other)

	// Different salt, different address.
	salt := DeploymentSalt
	salt[31] = 1
	assert.NotEqual(t, first, PredictAddress(SingletonFactoryAddress, salt, initCode))

	// Different factory, different address.
	assert.NotEqual(t, first, PredictAddress(ProxyFactoryAddress, DeploymentSalt, initCode))
}

func TestPredictAddressFormula(t *testing.T) {
	// Recompose keccak256(0xff ++ factory ++ salt ++ keccak256(initCode))[12:]
	// by hand and compare.
	initCode := []byte{0x60, 0x01, 0x60, 0x00, 0xf3}
	salt := [32]byte{7}

	preimage := []byte{0xff}
	preimage = append(preimage, SingletonFactoryAddress.Bytes()...)
	preimage = append(preimage, salt[:]...)
	preimage = append(preimage, crypto.Keccak256(initCode)...)
	want := common.BytesToAddress(crypto.Keccak256(preimage)[12:])

	assert.Equal(t, want, PredictAddress(SingletonFactoryAddress, salt, initCode))
}

func TestFactoryDeployData(t *testing.T) {
	initCode := []byte{0xde, 0xad, 0xbe, 0xef}
	salt := [32]byte{}
	salt[0] = 0xaa

	data := FactoryDeployData(salt, initCode)
	require.Len(t, data, 36)
	assert.Equal(t, salt[:], data[:32])
	assert.Equal(t, initCode, data[32:])
}
