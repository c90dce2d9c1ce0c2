// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package chart

import (
	"errors"
	"fmt"

	"github.com/chartkit/dwclient/modules/dataset"
	"github.com/chartkit/dwclient/modules/log"
	"github.com/chartkit/dwclient/modules/optional"
	"github.com/chartkit/dwclient/modules/structs"
	"github.com/chartkit/dwclient/modules/util"

	"golang.org/x/text/language"
)

// validation collects field errors. Column references are checked only when
// a dataset is attached.
type validation struct {
	data *dataset.Dataset
	errs []error
}

func newValidation(data *dataset.Dataset) *validation {
	return &validation{data: data}
}

func (v *validation) fail(field, format string, args ...any) {
	v.errs = append(v.errs, &ValidationError{Field: field, Constraint: fmt.Sprintf(format, args...)})
}

func (v *validation) err() error {
	return errors.Join(v.errs...)
}

func (v *validation) required(field string, set bool) {
	if !set {
		v.fail(field, "is required")
	}
}

func (v *validation) between(field string, o optional.Option[float64], lo, hi float64) {
	if o.Has() && (o.Value() < lo || o.Value() > hi) {
		v.fail(field, "%v is outside [%v, %v]", o.Value(), lo, hi)
	}
}

func (v *validation) atLeast(field string, o optional.Option[float64], lo float64) {
	if o.Has() && o.Value() < lo {
		v.fail(field, "%v is below %v", o.Value(), lo)
	}
}

func (v *validation) atLeastInt(field string, o optional.Option[int], lo int) {
	if o.Has() && o.Value() < lo {
		v.fail(field, "%d is below %d", o.Value(), lo)
	}
}

func (v *validation) color(field string, o optional.Option[string]) {
	if o.Has() && o.Value() != "" && !util.IsValidColor(o.Value()) {
		v.fail(field, "%q is not a color", o.Value())
	}
}

func (v *validation) column(field string, o optional.Option[string]) {
	if o.Has() {
		v.columnName(field, o.Value())
	}
}

func (v *validation) columnName(field, name string) {
	if name == "" || v.data.IsEmpty() {
		return
	}
	if !v.data.HasColumn(name) {
		v.fail(field, "column %q is not in the dataset", name)
	}
}

// seriesKey checks that key names a column. With labels set a value of the
// first column is accepted too.
func (v *validation) seriesKey(field, key string, labels bool) {
	if key == "" || v.data.IsEmpty() || v.data.HasColumn(key) {
		return
	}
	if labels {
		for _, rec := range v.data.Records()[1:] {
			if rec[0] == key {
				return
			}
		}
	}
	v.fail(field, "column %q is not in the dataset", key)
}

func (v *validation) columns(field string, o optional.Option[[]string]) {
	for _, name := range o.Value() {
		v.columnName(field, name)
	}
}

func (v *validation) language(field string, o optional.Option[string]) {
	if !o.Has() {
		return
	}
	if _, err := language.Parse(o.Value()); err != nil {
		v.fail(field, "%q is not a language tag", o.Value())
	}
}

// checkEnum accepts literals outside the vocabulary so that documents written
// by newer clients still load, but reports them.
func checkEnum[E structs.Enum](field string, o optional.Option[E]) {
	if o.Has() && !o.Value().IsKnown() {
		log.Warn("chart: %s has unrecognized value %v, sending it unchanged", field, o.Value().Wire())
	}
}

// onlyEnum rejects anything outside allowed, for fields where the API accepts a subset
func onlyEnum[E comparable](v *validation, field string, o optional.Option[E], allowed ...E) {
	if !o.Has() {
		return
	}
	for _, a := range allowed {
		if o.Value() == a {
			return
		}
	}
	v.fail(field, "%v is not one of %v", o.Value(), allowed)
}
