package safe

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeBatch(t *testing.T) {
	to := common.HexToAddress("0x2000000000000000000000000000000000000002")
	calls := []BatchCall{
		{To: to, Value: big.NewInt(5), Data: []byte{0xaa, 0xbb}},
		{To: to, Value: nil, Data: nil},
	}

	packed := EncodeBatch(calls)

	// op(1) + to(20) + value(32) + len(32) = 85 bytes per call plus data.
	require.Len(t, packed, 85+2+85)

	first := packed[:87]
	assert.Equal(t, byte(0), first[0])
	assert.Equal(t, to.Bytes(), first[1:21])
	assert.Equal(t, common.LeftPadBytes(big.NewInt(5).Bytes(), 32), first[21:53])
	assert.Equal(t, common.LeftPadBytes(big.NewInt(2).Bytes(), 32), first[53:85])
	assert.Equal(t, []byte{0xaa, 0xbb}, first[85:])

	// Nil value and nil data encode as zero words with no trailing bytes.
	second := packed[87:]
	assert.Equal(t, make([]byte, 32), second[21:53])
	assert.Equal(t, make([]byte, 32), second[53:85])
}

func TestEncodeBatchPreservesOrder(t *testing.T) {
	a := BatchCall{To: common.HexToAddress("0xa"), Data: []byte{0x01}}
	b := BatchCall{To: common.HexToAddress("0xb"), Data: []byte{0x02}}

	ab := EncodeBatch([]BatchCall{a, b})
	ba := EncodeBatch([]BatchCall{b, a})
	assert.NotEqual(t, ab, ba, "batch order is part of the encoding")
}

func TestEncodeBatchEmpty(t *testing.T) {
	assert.Empty(t, EncodeBatch(nil))
}
