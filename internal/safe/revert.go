package safe

import (
	"encoding/hex"
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

// RevertReason extracts a human-readable revert reason from an RPC error, if
// the node attached revert data. Returns the raw message otherwise.
func RevertReason(err error) string {
	if err == nil {
		return ""
	}

	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if reason, ok := decodeRevertData(dataErr.ErrorData()); ok {
			return reason
		}
	}
	return err.Error()
}

// decodeRevertData decodes the standard Error(string) revert payload.
func decodeRevertData(data any) (string, bool) {
	raw, ok := data.(string)
	if !ok {
		return "", false
	}
	raw = strings.TrimPrefix(raw, "0x")
	payload, err := hex.DecodeString(raw)
	if err != nil || len(payload) < 4 {
		return "", false
	}

	// Error(string) selector.
	if hexutil.Encode(payload[:4]) != "0x08c379a0" {
		return "", false
	}

	stringType, err := abi.NewType("string", "", nil)
	if err != nil {
		return "", false
	}
	unpacked, err := abi.Arguments{{Type: stringType}}.Unpack(payload[4:])
	if err != nil || len(unpacked) != 1 {
		return "", false
	}
	reason, ok := unpacked[0].(string)
	return reason, ok
}
