package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/particlezoo/internal/log"
	"github.com/zjrosen/particlezoo/internal/physconst"
)

// SaveRelease sets constants.release in the config file. The release is
// validated and stored in canonical form ("2018" is saved as "CODATA2018").
// Comments and other sections are preserved.
func SaveRelease(configPath, release string) error {
	consts, err := physconst.ForRelease(release)
	if err != nil {
		return err
	}
	return SetValue(configPath, "constants.release", string(consts.Release()))
}

// SetValue writes a scalar at a dotted key path, creating intermediate
// mappings as needed. This preserves comments and formatting in other
// sections by using yaml.Node.
func SetValue(configPath, key, value string) error {
	path := strings.Split(key, ".")
	for _, part := range path {
		if part == "" {
			return fmt.Errorf("invalid config key %q", key)
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading config: %w", err)
	}

	var doc yaml.Node
	if len(bytes.TrimSpace(data)) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	}
	if doc.Kind == 0 {
		doc = yaml.Node{
			Kind:    yaml.DocumentNode,
			Content: []*yaml.Node{{Kind: yaml.MappingNode}},
		}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return fmt.Errorf("parsing config: top level is not a mapping")
	}

	node := doc.Content[0]
	for i, part := range path {
		last := i == len(path)-1
		child := lookupKey(node, part)
		if child == nil {
			child = &yaml.Node{Kind: yaml.MappingNode}
			if last {
				child = &yaml.Node{Kind: yaml.ScalarNode}
			}
			node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: part}, child)
		}
		if last {
			child.Kind = yaml.ScalarNode
			child.Tag = ""
			child.Content = nil
			child.Value = value
			break
		}
		if child.Kind != yaml.MappingNode {
			return fmt.Errorf("config key %q is not a mapping", strings.Join(path[:i+1], "."))
		}
		node = child
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	if err := writeAtomic(configPath, buf.Bytes()); err != nil {
		return err
	}

	log.Info(log.CatConfig, "Saved config value", "path", configPath, "key", key, "value", value)
	return nil
}

// lookupKey returns the value node for key in a mapping node, or nil.
func lookupKey(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i < len(mapping.Content)-1; i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

// writeAtomic writes to a temp file in the same directory, then renames it.
func writeAtomic(configPath string, data []byte) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".particlezoo.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tempPath, configPath); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}
