// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	chart_model "github.com/chartkit/dwclient/models/chart"
	"github.com/chartkit/dwclient/modules/charset"
	"github.com/chartkit/dwclient/modules/dataset"
	"github.com/chartkit/dwclient/modules/json"
	"github.com/chartkit/dwclient/modules/util"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed definition.schema.json
var definitionSchemaJSON []byte

const definitionSchemaURL = "chart-definition.json"

var definitionSchema = jsonschema.MustCompileString(definitionSchemaURL, string(definitionSchemaJSON))

// Definition is a chart definition file
type Definition struct {
	Type     string         `yaml:"type" json:"type"`
	Title    string         `yaml:"title,omitempty" json:"title,omitempty"`
	Theme    string         `yaml:"theme,omitempty" json:"theme,omitempty"`
	Language string         `yaml:"language,omitempty" json:"language,omitempty"`
	FolderID int            `yaml:"folderId,omitempty" json:"folderId,omitempty"`
	Data     DataSource     `yaml:"data,omitempty" json:"-"`
	Metadata map[string]any `yaml:"metadata,omitempty" json:"metadata,omitempty"`

	// dir resolves relative data paths
	dir string
}

// DataSource names the file holding the chart data. In YAML it is either a
// path or {path, sheet}.
type DataSource struct {
	Path  string `yaml:"path"`
	Sheet string `yaml:"sheet,omitempty"`
}

// UnmarshalYAML accepts the short string form
func (d *DataSource) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		d.Path = node.Value
		return nil
	}
	type plain DataSource
	return node.Decode((*plain)(d))
}

// ReadDefinition parses and validates a definition file
func ReadDefinition(path string) (*Definition, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	def, err := ParseDefinition(charset.ToUTF8WithFallback(content))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	def.dir = filepath.Dir(path)
	return def, nil
}

// ParseDefinition validates content against the definition schema and decodes it
func ParseDefinition(content []byte) (*Definition, error) {
	var doc any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, util.NewInvalidArgumentErrorf("invalid yaml: %v", err)
	}
	// the schema validator wants JSON values
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	value, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	if err := definitionSchema.Validate(value); err != nil {
		return nil, util.NewInvalidArgumentErrorf("invalid chart definition: %v", err)
	}

	def := &Definition{}
	if err := yaml.Unmarshal(content, def); err != nil {
		return nil, util.NewInvalidArgumentErrorf("invalid chart definition: %v", err)
	}
	return def, nil
}

// Chart builds the chart of the definition and loads its data
func (def *Definition) Chart() (chart_model.Chart, error) {
	doc, err := json.Marshal(def)
	if err != nil {
		return nil, err
	}
	c, err := chart_model.Parse(doc)
	if err != nil {
		return nil, err
	}
	if def.Data.Path != "" {
		ds, err := def.loadData()
		if err != nil {
			return nil, err
		}
		c.Common().Data = ds
	}
	return c, nil
}

func (def *Definition) loadData() (*dataset.Dataset, error) {
	p := def.Data.Path
	if !filepath.IsAbs(p) && def.dir != "" {
		p = filepath.Join(def.dir, p)
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(p)) {
	case ".xlsx":
		return dataset.FromXLSX(f, def.Data.Sheet)
	default:
		return dataset.FromCSV(f)
	}
}
