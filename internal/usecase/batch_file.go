package usecase

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/palisade-org/palisade/internal/domain"
	"github.com/palisade-org/palisade/internal/domain/models"
)

// BatchFile is the on-disk shape of a proposal batch.
//
//	description: Fund the ops accounts
//	calls:
//	  - to: "0xAbc..."
//	    value: "1000000000000000000"
//	  - to: "0xDef..."
//	    data: "0xa9059cbb..."
type BatchFile struct {
	Description string          `yaml:"description"`
	Calls       []batchFileCall `yaml:"calls"`
}

type batchFileCall struct {
	To        string `yaml:"to"`
	Value     string `yaml:"value"`
	Data      string `yaml:"data"`
	Operation string `yaml:"operation"`
}

// LoadBatchFile reads and parses a YAML batch description.
func LoadBatchFile(path string) (*BatchFile, []models.Call, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	return ParseBatchFile(data)
}

// ParseBatchFile parses a YAML batch description into proposal calls.
func ParseBatchFile(data []byte) (*BatchFile, []models.Call, error) {
	var file BatchFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, domain.WrapError(domain.ErrValidation, err, "invalid batch file")
	}
	if len(file.Calls) == 0 {
		return nil, nil, domain.NewError(domain.ErrValidation, "batch file contains no calls")
	}

	calls := make([]models.Call, 0, len(file.Calls))
	for i, c := range file.Calls {
		call := models.Call{
			To:    c.To,
			Value: c.Value,
			Data:  c.Data,
		}
		if call.Value == "" {
			call.Value = "0"
		}
		switch c.Operation {
		case "", "call":
			call.Operation = models.OperationCall
		case "delegatecall":
			call.Operation = models.OperationDelegateCall
		default:
			return nil, nil, domain.Errorf(domain.ErrValidation,
				"call %d: unknown operation %q (want call or delegatecall)", i, c.Operation)
		}
		calls = append(calls, call)
	}
	return &file, calls, nil
}
