package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openstfoundation/abibin/internal/domain"
)

// setupProject creates contracts/abi and contracts/bin in a temp dir and chdirs into it
func setupProject(t *testing.T, abis, bins map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for dir, files := range map[string]map[string]string{"abi": abis, "bin": bins} {
		path := filepath.Join(root, "contracts", dir)
		require.NoError(t, os.MkdirAll(path, 0755))
		for name, content := range files {
			require.NoError(t, os.WriteFile(filepath.Join(path, name), []byte(content), 0644))
		}
	}
	t.Chdir(root)
	return root
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestABICommand(t *testing.T) {
	setupProject(t,
		map[string]string{"Token.json": `{"type":"function","name":"transfer"}`},
		map[string]string{"Token.bin": "6080604052"},
	)

	t.Run("local json", func(t *testing.T) {
		out, err := runCmd(t, "abi", "Token")
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"type\": \"function\",\n  \"name\": \"transfer\"\n}\n", out)
	})

	t.Run("local yaml", func(t *testing.T) {
		out, err := runCmd(t, "abi", "Token", "--output", "yaml")
		require.NoError(t, err)
		assert.Equal(t, "name: transfer\ntype: function\n", out)
	})

	t.Run("bundled method selector", func(t *testing.T) {
		out, err := runCmd(t, "abi", "ERC20", "--method", "transfer")
		require.NoError(t, err)
		assert.Equal(t, "0xa9059cbb  transfer(address,uint256)\n", out)
	})

	t.Run("method on a non-ABI document", func(t *testing.T) {
		_, err := runCmd(t, "abi", "Token", "-m", "transfer")
		require.Error(t, err)
	})

	t.Run("unknown method", func(t *testing.T) {
		_, err := runCmd(t, "abi", "ERC20", "-m", "mint")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `method "mint" not found`)
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := runCmd(t, "abi", "Token", "-o", "xml")
		require.Error(t, err)
	})

	t.Run("not found suggests names", func(t *testing.T) {
		_, err := runCmd(t, "abi", "token")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrArtifactNotFound))
		assert.Contains(t, err.Error(), "did you mean")
		assert.Contains(t, err.Error(), "- Token")
	})
}

func TestBINCommand(t *testing.T) {
	setupProject(t, nil, map[string]string{"Token.bin": "6080604052"})

	t.Run("local", func(t *testing.T) {
		out, err := runCmd(t, "bin", "Token")
		require.NoError(t, err)
		assert.Equal(t, "6080604052\n", out)
	})

	t.Run("bundled", func(t *testing.T) {
		out, err := runCmd(t, "bin", "Answer")
		require.NoError(t, err)
		assert.Equal(t, "600a600c600039600a6000f3602a60005260206000f3\n", out)
	})

	t.Run("hash", func(t *testing.T) {
		out, err := runCmd(t, "bin", "Token", "--hash")
		require.NoError(t, err)
		assert.Regexp(t, `^0x[0-9a-f]{64}\n$`, out)
	})

	t.Run("missing everywhere", func(t *testing.T) {
		_, err := runCmd(t, "bin", "Missing")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrArtifactNotFound))
		assert.Contains(t, err.Error(), "bundled")
	})
}

func TestListCommand(t *testing.T) {
	setupProject(t,
		map[string]string{"Token.json": `[]`, "ERC20.json": `[]`},
		map[string]string{"Token.bin": "00"},
	)

	out, err := runCmd(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "ARTIFACT")
	assert.Contains(t, out, "Token")
	assert.Contains(t, out, "CreateX")
	assert.Contains(t, out, "Local")
	assert.Contains(t, out, "Bundled")
	assert.Contains(t, out, "4 artifacts")

	out, err = runCmd(t, "list", "--source", "local")
	require.NoError(t, err)
	assert.NotContains(t, out, "CreateX")
	assert.Contains(t, out, "2 artifacts")
}

func TestGlobalFlags(t *testing.T) {
	root := setupProject(t, nil, nil)
	custom := filepath.Join(root, "build", "abi")
	require.NoError(t, os.MkdirAll(custom, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(custom, "Vault.abi"), []byte(`[]`), 0644))

	out, err := runCmd(t, "--abi-dir", custom, "abi", "Vault")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)

	_, err = runCmd(t, "abi", "Vault")
	require.Error(t, err)
}

func TestInitFailsOnBrokenProject(t *testing.T) {
	t.Run("missing directories", func(t *testing.T) {
		t.Chdir(t.TempDir())

		_, err := runCmd(t, "abi", "ERC20")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to initialize app")
	})

	t.Run("malformed abi", func(t *testing.T) {
		setupProject(t, map[string]string{"Token.json": `{"type":`}, nil)

		_, err := runCmd(t, "abi", "ERC20")
		require.Error(t, err)
		var parseErr *domain.ParseError
		assert.True(t, errors.As(err, &parseErr))
	})
}

func TestMissingNameNonInteractive(t *testing.T) {
	setupProject(t, nil, nil)

	_, err := runCmd(t, "--non-interactive", "abi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "artifact name required")

	t.Setenv("ABIBIN_NON_INTERACTIVE", "true")
	_, err = runCmd(t, "bin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "artifact name required")
}

func TestVersionCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := runCmd(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "abibin version dev\n", out)
}

func TestConfigCommand(t *testing.T) {
	root := setupProject(t, nil, nil)
	require.NoError(t, os.WriteFile(filepath.Join(root, "abibin.toml"), []byte(`
[artifacts]
abi_dir = "out/abi"
on_duplicate = "last-wins"
`), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "out", "abi"), 0755))

	out, err := runCmd(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "ABI dir:      out/abi")
	assert.Contains(t, out, "BIN dir:      contracts/bin")
	assert.Contains(t, out, "On duplicate: last-wins")
	assert.Contains(t, out, "Config source: abibin.toml")
}
