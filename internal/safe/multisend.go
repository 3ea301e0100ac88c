package safe

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// BatchCall is one entry of a multi-send batch.
type BatchCall struct {
	To        common.Address
	Value     *big.Int
	Data      []byte
	Operation uint8
}

// EncodeBatch packs calls into the byte stream consumed by the batch helper
// contract. The packed layout per call is
//
//	operation (1) ‖ to (20) ‖ value (32) ‖ dataLength (32) ‖ data
//
// and calls execute strictly in the order given here.
func EncodeBatch(calls []BatchCall) []byte {
	var packed []byte
	for _, call := range calls {
		packed = append(packed, call.Operation)
		packed = append(packed, call.To.Bytes()...)
		packed = append(packed, uint256Word(call.Value)...)
		packed = append(packed, uint256Word(big.NewInt(int64(len(call.Data))))...)
		packed = append(packed, call.Data...)
	}
	return packed
}
