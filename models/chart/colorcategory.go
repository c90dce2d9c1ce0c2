// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package chart

import (
	"github.com/chartkit/dwclient/modules/log"
	"github.com/chartkit/dwclient/modules/optional"
	"github.com/chartkit/dwclient/modules/wire"

	"github.com/tidwall/gjson"
)

// Mapping is one key/value entry of an ordered string map
type Mapping struct {
	Key   string
	Value string
}

// ColorCategory assigns colors to series or category labels
type ColorCategory struct {
	// Colors keeps insertion order. A repeated key keeps its first position
	// and takes the last color. A nil map is not written.
	Colors         []Mapping
	Labels         []Mapping
	Order          optional.Option[[]string]
	ExcludeFromKey optional.Option[[]string]
	Extras         wire.Extras
}

// NewColorCategory builds a color map from label, color pairs
func NewColorCategory(pairs ...string) ColorCategory {
	var c ColorCategory
	for i := 0; i+1 < len(pairs); i += 2 {
		c.Set(pairs[i], pairs[i+1])
	}
	return c
}

// Set assigns color to label, replacing an earlier color for the same label
func (c *ColorCategory) Set(label, color string) {
	for i := range c.Colors {
		if c.Colors[i].Key == label {
			log.Warn("chart: color-category has duplicate label %q, using %s", label, color)
			c.Colors[i].Value = color
			return
		}
	}
	c.Colors = append(c.Colors, Mapping{Key: label, Value: color})
}

// Color returns the color assigned to label
func (c *ColorCategory) Color(label string) (string, bool) {
	for i := len(c.Colors) - 1; i >= 0; i-- {
		if c.Colors[i].Key == label {
			return c.Colors[i].Value, true
		}
	}
	return "", false
}

func (c *ColorCategory) validate(v *validation, field string, keys colorKeys) {
	for _, m := range c.Colors {
		v.color(field+".map."+m.Key, optional.Some(m.Value))
		if keys != colorKeysFree {
			v.seriesKey(field+".map."+m.Key, m.Key, keys == colorKeysSeriesOrLabels)
		}
	}
}

func mappingObject(field string, list []Mapping) *wire.Object {
	o := wire.NewObject()
	for _, m := range list {
		if _, dup := o.Get(m.Key); dup {
			log.Warn("chart: %s has duplicate key %q, using %s", field, m.Key, m.Value)
		}
		o.Set(m.Key, m.Value)
	}
	return o
}

func (c *ColorCategory) toWire() *wire.Object {
	o := wire.NewObject()
	if c.Colors != nil {
		o.Set("map", mappingObject("color-category", c.Colors))
	}
	wire.SetStrings(o, "excludeFromKey", c.ExcludeFromKey)
	if c.Labels != nil {
		o.Set("categoryLabels", mappingObject("categoryLabels", c.Labels))
	}
	wire.SetStrings(o, "categoryOrder", c.Order)
	c.Extras.Apply(o)
	return o
}

func readMappings(s wire.Section, key string) []Mapping {
	r := s.Peek(key)
	if !r.IsObject() {
		return nil
	}
	out := []Mapping{}
	ok := true
	r.ForEach(func(k, v gjson.Result) bool {
		if v.Type != gjson.String {
			ok = false
			return false
		}
		out = append(out, Mapping{Key: k.String(), Value: v.Str})
		return true
	})
	if !ok {
		return nil
	}
	s.Consume(key)
	return out
}

func (c *ColorCategory) fromWire(d *wire.Doc, _ string) {
	s := d.Root()
	c.Colors = readMappings(s, "map")
	c.Labels = readMappings(s, "categoryLabels")
	s.Strings("categoryOrder", &c.Order)
	s.Strings("excludeFromKey", &c.ExcludeFromKey)
	c.Extras = d.Extras()
}
