package services

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/validator-ops/solana-version-check/internal/domain"
)

// ManifestService reads and rewrites the validator version pinned in a deployment
// manifest. The version lives at a dotted key path, e.g. spec.values.image.tag of a
// HelmRelease.
type ManifestService struct {
	versionKey string
	keyPath    []string
}

// NewManifestService creates a ManifestService for the given dotted key path
func NewManifestService(versionKey string) *ManifestService {
	return &ManifestService{
		versionKey: versionKey,
		keyPath:    strings.Split(versionKey, "."),
	}
}

// CurrentVersion implements domain.ManifestReader
func (m *ManifestService) CurrentVersion(path string) (domain.Version, error) {
	content, err := readManifest(path)
	if err != nil {
		return domain.Version{}, err
	}

	raw, err := m.rawVersion(path, content)
	if err != nil {
		return domain.Version{}, err
	}

	version, err := domain.ParseVersion(raw)
	if err != nil {
		return domain.Version{}, &domain.ParseError{Path: path, Key: m.versionKey, Err: err}
	}
	return version, nil
}

// UpdateVersion rewrites the pinned version in place, keeping the quoting style and
// "v" prefix convention of the existing value. It returns the version that was replaced.
func (m *ManifestService) UpdateVersion(path string, newVersion domain.Version) (domain.Version, error) {
	content, err := readManifest(path)
	if err != nil {
		return domain.Version{}, err
	}

	raw, err := m.rawVersion(path, content)
	if err != nil {
		return domain.Version{}, err
	}

	previous, err := domain.ParseVersion(raw)
	if err != nil {
		return domain.Version{}, &domain.ParseError{Path: path, Key: m.versionKey, Err: err}
	}

	replacement := newVersion.String()
	if strings.HasPrefix(strings.TrimSpace(raw), "v") {
		replacement = "v" + replacement
	}

	updated, ok := spliceScalar(content, m.versionNode(content), replacement)
	if !ok {
		return domain.Version{}, &domain.ParseError{
			Path:   path,
			Key:    m.versionKey,
			Reason: fmt.Sprintf("could not locate %q in file content", raw),
		}
	}

	written, err := m.rawVersion(path, updated)
	if err != nil {
		return domain.Version{}, fmt.Errorf("generated invalid YAML: %w", err)
	}
	if written != replacement {
		return domain.Version{}, fmt.Errorf("rewrite did not update %s: found %q", m.versionKey, written)
	}

	info, err := os.Stat(path)
	if err != nil {
		return domain.Version{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, updated, info.Mode().Perm()); err != nil {
		return domain.Version{}, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return previous, nil
}

func readManifest(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &domain.FileNotFoundError{Path: path, Err: err}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return content, nil
}

// rawVersion decodes every document, merges their top-level keys in order and returns
// the scalar found at the version key path
func (m *ManifestService) rawVersion(path string, content []byte) (string, error) {
	merged, err := mergeDocuments(content)
	if err != nil {
		return "", &domain.ParseError{Path: path, Reason: "error parsing YAML file", Err: err}
	}
	if len(merged) == 0 {
		return "", &domain.ParseError{Path: path, Reason: "no valid YAML content found"}
	}

	var node any = merged
	for i, segment := range m.keyPath {
		fields, ok := node.(map[string]any)
		if !ok {
			return "", &domain.ParseError{
				Path:   path,
				Key:    m.versionKey,
				Reason: fmt.Sprintf("%q is not a mapping", strings.Join(m.keyPath[:i], ".")),
			}
		}
		node, ok = fields[segment]
		if !ok {
			return "", &domain.ParseError{Path: path, Key: m.versionKey, Reason: "required key not found"}
		}
	}

	switch v := node.(type) {
	case string:
		return v, nil
	case nil, map[string]any, []any:
		return "", &domain.ParseError{Path: path, Key: m.versionKey, Reason: "value is not a scalar version string"}
	default:
		return fmt.Sprint(v), nil
	}
}

func mergeDocuments(content []byte) (map[string]any, error) {
	merged := make(map[string]any)
	dec := yaml.NewDecoder(bytes.NewReader(content))
	for {
		var doc map[string]any
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return merged, nil
		}
		if err != nil {
			return nil, err
		}
		for k, v := range doc {
			merged[k] = v
		}
	}
}

// versionNode returns the scalar node at the version key path, taken from the last
// document defining the top-level key so it agrees with mergeDocuments
func (m *ManifestService) versionNode(content []byte) *yaml.Node {
	var root *yaml.Node
	dec := yaml.NewDecoder(bytes.NewReader(content))
	for {
		var doc yaml.Node
		if err := dec.Decode(&doc); err != nil {
			break
		}
		if len(doc.Content) == 0 {
			continue
		}
		if top := doc.Content[0]; mappingValue(top, m.keyPath[0]) != nil {
			root = top
		}
	}

	node := root
	for _, segment := range m.keyPath {
		node = mappingValue(node, segment)
		if node == nil {
			return nil
		}
	}
	if node.Kind != yaml.ScalarNode {
		return nil
	}
	return node
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	var value *yaml.Node
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			value = node.Content[i+1]
		}
	}
	return value
}

// spliceScalar swaps the scalar token at the node's position for replacement, keeping
// its quotes. Only plain and quoted scalars whose source text equals their value qualify.
func spliceScalar(content []byte, node *yaml.Node, replacement string) ([]byte, bool) {
	if node == nil {
		return nil, false
	}

	var quote string
	switch node.Style {
	case 0:
	case yaml.DoubleQuotedStyle:
		quote = `"`
	case yaml.SingleQuotedStyle:
		quote = "'"
	default:
		return nil, false
	}

	offset, ok := byteOffset(content, node.Line, node.Column)
	if !ok {
		return nil, false
	}
	token := quote + node.Value + quote
	if !bytes.HasPrefix(content[offset:], []byte(token)) {
		return nil, false
	}

	updated := make([]byte, 0, len(content)+len(replacement))
	updated = append(updated, content[:offset]...)
	updated = append(updated, quote+replacement+quote...)
	updated = append(updated, content[offset+len(token):]...)
	return updated, true
}

// byteOffset converts a 1-based line and character column to an offset into content
func byteOffset(content []byte, line, column int) (int, bool) {
	offset := 0
	for l := 1; l < line; l++ {
		i := bytes.IndexByte(content[offset:], '\n')
		if i < 0 {
			return 0, false
		}
		offset += i + 1
	}
	for c := 1; c < column; c++ {
		if offset >= len(content) || content[offset] == '\n' {
			return 0, false
		}
		_, size := utf8.DecodeRune(content[offset:])
		offset += size
	}
	return offset, true
}
