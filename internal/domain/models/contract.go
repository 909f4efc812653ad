package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Contract represents a compiled contract located on disk
type Contract struct {
	Name         string
	Path         string
	ArtifactPath string
	Artifact     *Artifact
}

// BytecodeObject holds creation bytecode. Hardhat writes it as a bare hex
// string, Foundry as {"object": "0x..."}; both decode into Object.
type BytecodeObject struct {
	Object         string         `json:"object"`
	SourceMap      string         `json:"sourceMap,omitempty"`
	LinkReferences map[string]any `json:"linkReferences,omitempty"`
}

// UnmarshalJSON accepts both the Hardhat and Foundry bytecode layouts
func (b *BytecodeObject) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &b.Object)
	}

	type plain BytecodeObject
	var obj plain
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*b = BytecodeObject(obj)
	return nil
}

// Bytes decodes the creation bytecode
func (b BytecodeObject) Bytes() ([]byte, error) {
	object := strings.TrimSpace(b.Object)
	if object == "" || object == "0x" {
		return nil, fmt.Errorf("empty bytecode")
	}
	if strings.Contains(object, "__") {
		return nil, fmt.Errorf("bytecode has unlinked library references")
	}
	if !strings.HasPrefix(object, "0x") {
		object = "0x" + object
	}
	code, err := hexutil.Decode(object)
	if err != nil {
		return nil, fmt.Errorf("invalid bytecode: %w", err)
	}
	return code, nil
}

// Artifact represents a Hardhat or Foundry compilation artifact
type Artifact struct {
	ContractName string           `json:"contractName,omitempty"`
	SourceName   string           `json:"sourceName,omitempty"`
	ABI          json.RawMessage  `json:"abi"`
	Bytecode     BytecodeObject   `json:"bytecode"`
	Metadata     ArtifactMetadata `json:"metadata"`
}

// ArtifactMetadata represents the metadata section of a Foundry artifact
type ArtifactMetadata struct {
	Compiler struct {
		Version string `json:"version"`
	} `json:"compiler"`
	Settings struct {
		CompilationTarget map[string]string `json:"compilationTarget"`
	} `json:"settings"`
}

// Source returns the source file the contract was compiled from
func (a *Artifact) Source() string {
	if a.SourceName != "" {
		return a.SourceName
	}
	for path := range a.Metadata.Settings.CompilationTarget {
		return path
	}
	return ""
}
