package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// NamespaceEIP155 is the only chain namespace palisade currently supports.
const NamespaceEIP155 = "eip155"

// ChainID is a canonical chain identifier in the form `<namespace>:<id>`,
// e.g. "eip155:1" for Ethereum mainnet.
type ChainID struct {
	Namespace string
	ID        uint64
}

// ParseChainID parses a canonical chain identifier. Anything that is not
// `eip155:<decimal>` is rejected at the boundary.
func ParseChainID(s string) (ChainID, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return ChainID{}, Errorf(ErrValidation, "invalid chain identifier %q: expected <namespace>:<chain-id>", s)
	}
	if parts[0] != NamespaceEIP155 {
		return ChainID{}, Errorf(ErrValidation, "unsupported chain namespace %q", parts[0])
	}
	id, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return ChainID{}, Errorf(ErrValidation, "invalid numeric chain id %q", parts[1])
	}
	if id == 0 {
		return ChainID{}, Errorf(ErrValidation, "chain id must be non-zero")
	}
	return ChainID{Namespace: parts[0], ID: id}, nil
}

// MustChainID parses a chain identifier and panics on failure. Test helper.
func MustChainID(s string) ChainID {
	id, err := ParseChainID(s)
	if err != nil {
		panic(err)
	}
	return id
}

func (c ChainID) String() string {
	return fmt.Sprintf("%s:%d", c.Namespace, c.ID)
}

// IsZero reports whether the identifier is unset.
func (c ChainID) IsZero() bool {
	return c.Namespace == "" && c.ID == 0
}
