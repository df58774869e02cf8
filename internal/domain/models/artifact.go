package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// ArtifactName is the lookup key of an artifact, derived from its file name
type ArtifactName string

// NameFromFile strips the directory and the last extension from a file name.
// "Token.json" and "dir/Token.abi" both yield "Token"; "Token.v2.json" yields "Token.v2".
// A leading dot does not start an extension, so ".gitkeep" stays ".gitkeep".
func NameFromFile(file string) ArtifactName {
	base := path.Base(file)
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	return ArtifactName(base)
}

// InterfaceDescriptor is a parsed contract interface (ABI) document
type InterfaceDescriptor json.RawMessage

// ParseInterfaceDescriptor validates data as JSON and returns its compacted form
func ParseInterfaceDescriptor(data []byte) (InterfaceDescriptor, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return nil, err
	}
	return InterfaceDescriptor(buf.Bytes()), nil
}

// IsEmpty reports whether the descriptor carries no usable document: no bytes,
// or one of the JSON scalars null, false, 0 and "".
func (d InterfaceDescriptor) IsEmpty() bool {
	if len(d) == 0 {
		return true
	}
	v, err := d.Decode()
	if err != nil {
		return false
	}
	switch v := v.(type) {
	case nil:
		return true
	case bool:
		return !v
	case float64:
		return v == 0
	case string:
		return v == ""
	}
	return false
}

// Decode returns the generic parsed value of the descriptor
func (d InterfaceDescriptor) Decode() (any, error) {
	var v any
	if err := json.Unmarshal(d, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// ParseABI parses the descriptor as an Ethereum contract ABI
func (d InterfaceDescriptor) ParseABI() (abi.ABI, error) {
	return abi.JSON(bytes.NewReader(d))
}

// MarshalJSON keeps the descriptor verbatim when embedded in other documents
func (d InterfaceDescriptor) MarshalJSON() ([]byte, error) {
	if d == nil {
		return []byte("null"), nil
	}
	return d, nil
}

func (d InterfaceDescriptor) String() string {
	return string(d)
}

// BytecodeBlob is compiled contract bytecode as stored on disk
type BytecodeBlob string

// IsEmpty reports whether the blob has no content
func (b BytecodeBlob) IsEmpty() bool {
	return len(b) == 0
}

// Hex returns the trimmed blob with a 0x prefix
func (b BytecodeBlob) Hex() string {
	s := strings.TrimSpace(string(b))
	if has0xPrefix(s) {
		return "0x" + s[2:]
	}
	return "0x" + s
}

// Bytes decodes the blob. solc emits hex without 0x and usually with a trailing newline.
func (b BytecodeBlob) Bytes() ([]byte, error) {
	data, err := hexutil.Decode(b.Hex())
	if err != nil {
		return nil, fmt.Errorf("invalid bytecode: %w", err)
	}
	return data, nil
}

// CodeHash returns the keccak256 hash of the decoded bytecode
func (b BytecodeBlob) CodeHash() (common.Hash, error) {
	data, err := b.Bytes()
	if err != nil {
		return common.Hash{}, err
	}
	return crypto.Keccak256Hash(data), nil
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
