package models

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const transferABI = `[
  {"type":"function","name":"transfer","stateMutability":"nonpayable",
   "inputs":[{"name":"to","type":"address"},{"name":"value","type":"uint256"}],
   "outputs":[{"name":"","type":"bool"}]}
]`

func TestNameFromFile(t *testing.T) {
	tests := []struct {
		file string
		want ArtifactName
	}{
		{"Token.json", "Token"},
		{"Token.abi", "Token"},
		{"Token", "Token"},
		{"abi/Token.bin", "Token"},
		{"Token.v2.json", "Token.v2"},
		{".gitkeep", ".gitkeep"},
		{".Hidden.json", ".Hidden"},
		{"abi/.env", ".env"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			assert.Equal(t, tt.want, NameFromFile(tt.file))
		})
	}
}

func TestInterfaceDescriptorIsEmpty(t *testing.T) {
	tests := []struct {
		doc  string
		want bool
	}{
		{"", true},
		{"null", true},
		{"false", true},
		{"0", true},
		{"0.0", true},
		{`""`, true},
		{"[]", false},
		{"{}", false},
		{"true", false},
		{"1", false},
		{`"x"`, false},
		{transferABI, false},
	}

	for _, tt := range tests {
		t.Run(tt.doc, func(t *testing.T) {
			assert.Equal(t, tt.want, InterfaceDescriptor(tt.doc).IsEmpty())
		})
	}
}

func TestParseInterfaceDescriptor(t *testing.T) {
	t.Run("compacts valid JSON", func(t *testing.T) {
		desc, err := ParseInterfaceDescriptor([]byte("{\n  \"type\": \"function\",\n  \"name\": \"transfer\"\n}\n"))
		require.NoError(t, err)
		assert.Equal(t, `{"type":"function","name":"transfer"}`, desc.String())

		v, err := desc.Decode()
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"type": "function", "name": "transfer"}, v)
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		_, err := ParseInterfaceDescriptor([]byte(`{"type":`))
		require.Error(t, err)
	})

	t.Run("rejects empty file", func(t *testing.T) {
		_, err := ParseInterfaceDescriptor(nil)
		require.Error(t, err)
	})
}

func TestInterfaceDescriptorParseABI(t *testing.T) {
	desc, err := ParseInterfaceDescriptor([]byte(transferABI))
	require.NoError(t, err)

	parsed, err := desc.ParseABI()
	require.NoError(t, err)

	method, ok := parsed.Methods["transfer"]
	require.True(t, ok)
	assert.Equal(t, "transfer(address,uint256)", method.Sig)
	assert.Equal(t, []byte{0xa9, 0x05, 0x9c, 0xbb}, method.ID)
}

func TestBytecodeBlob(t *testing.T) {
	t.Run("decodes with and without prefix", func(t *testing.T) {
		for _, raw := range []string{"6080604052", "0x6080604052", "6080604052\n", "  0X6080604052  "} {
			data, err := BytecodeBlob(raw).Bytes()
			require.NoError(t, err, raw)
			assert.Equal(t, []byte{0x60, 0x80, 0x60, 0x40, 0x52}, data, raw)
		}
	})

	t.Run("hex keeps the stored digits", func(t *testing.T) {
		assert.Equal(t, "0x6080604052", BytecodeBlob("6080604052\n").Hex())
	})

	t.Run("rejects non-hex content", func(t *testing.T) {
		_, err := BytecodeBlob("not bytecode").Bytes()
		require.Error(t, err)

		_, err = BytecodeBlob("608").Bytes()
		require.Error(t, err)
	})

	t.Run("code hash of empty code", func(t *testing.T) {
		hash, err := BytecodeBlob("0x").CodeHash()
		require.NoError(t, err)
		assert.Equal(t, common.HexToHash("0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"), hash)
	})

	t.Run("empty", func(t *testing.T) {
		assert.True(t, BytecodeBlob("").IsEmpty())
		assert.False(t, BytecodeBlob("00").IsEmpty())
	})
}
