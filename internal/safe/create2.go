package safe

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// PredictAddress computes the content-addressed deployment address for init
// code placed through a CREATE2 factory:
//
//	address = keccak256(0xff ++ factory ++ salt ++ keccak256(initCode))[12:]
//
// The prediction is independent of chain and of whether the deployment has
// happened yet, which is what makes the deployer idempotent.
func PredictAddress(factory common.Address, salt [32]byte, initCode []byte) common.Address {
	return crypto.CreateAddress2(factory, salt, crypto.Keccak256(initCode))
}

// FactoryDeployData builds the calldata understood by the singleton factory:
// the 32-byte salt followed by the raw init code.
func FactoryDeployData(salt [32]byte, initCode []byte) []byte {
	data := make([]byte, 0, 32+len(initCode))
	data = append(data, salt[:]...)
	data = append(data, initCode...)
	return data
}
