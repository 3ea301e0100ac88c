package safe

import (
	"github.com/ethereum/go-ethereum/common"
)

// Canonical addresses of the infrastructure set (v1.3.0 deployment). The
// singleton factory lives at the same address on every chain because it is
// always deployed with the same bytes from the same one-time deployer; the
// remaining contracts land at identical addresses everywhere because they are
// placed through it with a fixed salt.
var (
	// SingletonFactoryAddress is the deterministic deployment proxy.
	SingletonFactoryAddress = common.HexToAddress("0x4e59b44847b379578588920cA78FbF26c0B4956C")

	// WalletSingletonAddress is the wallet implementation singleton.
	WalletSingletonAddress = common.HexToAddress("0xd9Db270c1B5E3Bd161E8c8503c55cEABeE709552")

	// ProxyFactoryAddress creates wallet proxies pointing at the singleton.
	ProxyFactoryAddress = common.HexToAddress("0xa6B71E26C5e0845f74c812102Ca7114b6a896AB2")

	// FallbackHandlerAddress provides default behavior for unknown calls.
	FallbackHandlerAddress = common.HexToAddress("0xf48f2B2d2a534e402487b3ee7C18c33Aec0Fe5e4")

	// BatchHelperAddress is the call-only multi-send helper.
	BatchHelperAddress = common.HexToAddress("0x40A2aCCbd92BCA938b02010E17A5b8929b49130D")
)

// DeploymentSalt is the fixed salt used for every contract placed through the
// singleton factory. Constant by protocol: changing it changes every address.
var DeploymentSalt = [32]byte{}
