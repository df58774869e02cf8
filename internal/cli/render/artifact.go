package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/openstfoundation/abibin/internal/domain/models"
)

// Output formats for ABI documents
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ArtifactRenderer renders single ABI and BIN lookups
type ArtifactRenderer struct {
	out   io.Writer
	color bool
}

// NewArtifactRenderer creates a new artifact renderer
func NewArtifactRenderer(out io.Writer, color bool) *ArtifactRenderer {
	return &ArtifactRenderer{
		out:   out,
		color: color,
	}
}

// RenderABI writes the descriptor as indented JSON or as YAML
func (r *ArtifactRenderer) RenderABI(desc models.InterfaceDescriptor, format string) error {
	switch strings.ToLower(format) {
	case "", FormatJSON:
		var buf bytes.Buffer
		if err := json.Indent(&buf, desc, "", "  "); err != nil {
			return fmt.Errorf("failed to format ABI: %w", err)
		}
		buf.WriteByte('\n')
		_, err := buf.WriteTo(r.out)
		return err
	case FormatYAML:
		v, err := desc.Decode()
		if err != nil {
			return fmt.Errorf("failed to decode ABI: %w", err)
		}
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to format ABI: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q (want %q or %q)", format, FormatJSON, FormatYAML)
	}
}

// RenderMethod writes the signature and selector of one ABI method
func (r *ArtifactRenderer) RenderMethod(method abi.Method) error {
	selector := hexutil.Encode(method.ID)
	if r.color {
		selector = color.New(color.FgCyan, color.Bold).Sprint(selector)
	}
	_, err := fmt.Fprintf(r.out, "%s  %s\n", selector, method.Sig)
	return err
}

// RenderBIN writes the blob exactly as stored
func (r *ArtifactRenderer) RenderBIN(blob models.BytecodeBlob) error {
	s := string(blob)
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	_, err := io.WriteString(r.out, s)
	return err
}

// RenderCodeHash writes the keccak256 hash of the decoded blob
func (r *ArtifactRenderer) RenderCodeHash(blob models.BytecodeBlob) error {
	hash, err := blob.CodeHash()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.out, hash.Hex())
	return err
}
