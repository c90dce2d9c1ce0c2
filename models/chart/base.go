// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package chart

import (
	"time"

	"github.com/chartkit/dwclient/modules/dataset"
	"github.com/chartkit/dwclient/modules/json"
	"github.com/chartkit/dwclient/modules/optional"
	"github.com/chartkit/dwclient/modules/structs"
	"github.com/chartkit/dwclient/modules/wire"

	"github.com/araddon/dateparse"
)

// Transform controls how the uploaded data is read
type Transform struct {
	Transpose         optional.Option[bool]
	VerticalHeader    optional.Option[bool]
	HorizontalHeader  optional.Option[bool]
	ColumnOrder       optional.Option[[]int]
	ColumnFormats     optional.Option[[]ColumnFormat]
	ExternalData      optional.Option[string]
	UseDatawrapperCDN optional.Option[bool]
	UploadMethod      optional.Option[structs.UploadMethod]
}

func (t *Transform) validate(v *validation) {
	validateList(v, "data.column-format", t.ColumnFormats, func(v *validation, field string, f *ColumnFormat) {
		f.validate(v, field)
	})
	for _, i := range t.ColumnOrder.Value() {
		if i < 0 {
			v.fail("data.column-order", "index %d is negative", i)
		}
	}
	checkEnum("data.upload-method", t.UploadMethod)
}

func (t *Transform) toWire() *wire.Object {
	o := wire.NewObject()
	wire.Set(o, "transpose", t.Transpose)
	wire.Set(o, "vertical-header", t.VerticalHeader)
	wire.Set(o, "horizontal-header", t.HorizontalHeader)
	wire.Set(o, "column-order", t.ColumnOrder)
	writeKeyed(o, "column-format", t.ColumnFormats)
	wire.Set(o, "external-data", t.ExternalData)
	wire.Set(o, "use-datawrapper-cdn", t.UseDatawrapperCDN)
	wire.SetEnum(o, "upload-method", t.UploadMethod)
	return o
}

func (t *Transform) fromWire(s wire.Section) {
	s.Bool("transpose", &t.Transpose)
	s.Bool("vertical-header", &t.VerticalHeader)
	s.Bool("horizontal-header", &t.HorizontalHeader)
	wire.Decode(s, "column-order", &t.ColumnOrder)
	readList(s, "column-format", &t.ColumnFormats)
	s.String("external-data", &t.ExternalData)
	s.Bool("use-datawrapper-cdn", &t.UseDatawrapperCDN)
	wire.StringEnum(s, "upload-method", &t.UploadMethod)
}

// Describe holds the text shown around the chart
type Describe struct {
	Intro           optional.Option[string]
	Byline          optional.Option[string]
	SourceName      optional.Option[string]
	SourceURL       optional.Option[string]
	AriaDescription optional.Option[string]
	HideTitle       optional.Option[bool]
	NumberFormat    optional.Option[structs.Format]
	NumberDivisor   optional.Option[structs.NumberDivisor]
	NumberPrepend   optional.Option[string]
	NumberAppend    optional.Option[string]
}

func (d *Describe) toWire() *wire.Object {
	o := wire.NewObject()
	wire.Set(o, "intro", d.Intro)
	wire.Set(o, "byline", d.Byline)
	wire.Set(o, "source-name", d.SourceName)
	wire.Set(o, "source-url", d.SourceURL)
	wire.Set(o, "aria-description", d.AriaDescription)
	wire.Set(o, "hide-title", d.HideTitle)
	wire.SetEnum(o, "number-format", d.NumberFormat)
	wire.SetEnum(o, "number-divisor", d.NumberDivisor)
	wire.Set(o, "number-prepend", d.NumberPrepend)
	wire.Set(o, "number-append", d.NumberAppend)
	return o
}

func (d *Describe) fromWire(s wire.Section) {
	s.String("intro", &d.Intro)
	s.String("byline", &d.Byline)
	s.String("source-name", &d.SourceName)
	s.String("source-url", &d.SourceURL)
	s.String("aria-description", &d.AriaDescription)
	s.Bool("hide-title", &d.HideTitle)
	wire.StringEnum(s, "number-format", &d.NumberFormat)
	wire.StringEnum(s, "number-divisor", &d.NumberDivisor)
	s.String("number-prepend", &d.NumberPrepend)
	s.String("number-append", &d.NumberAppend)
}

// Sharing configures the share buttons of the published chart
type Sharing struct {
	Enabled optional.Option[bool]
	URL     optional.Option[string]
	Auto    optional.Option[bool]
}

func (sh *Sharing) toWire() *wire.Object {
	o := wire.NewObject()
	wire.Set(o, "enabled", sh.Enabled)
	wire.Set(o, "url", sh.URL)
	wire.Set(o, "auto", sh.Auto)
	return o
}

func (sh *Sharing) fromWire(s wire.Section) {
	s.Bool("enabled", &sh.Enabled)
	s.String("url", &sh.URL)
	s.Bool("auto", &sh.Auto)
}

// Blocks toggles the links shown below the published chart
type Blocks struct {
	GetTheData    optional.Option[bool]
	DownloadImage optional.Option[bool]
	DownloadPDF   optional.Option[bool]
	DownloadSVG   optional.Option[bool]
	Embed         optional.Option[bool]
	Logo          optional.Option[bool]
	LogoID        optional.Option[string]
}

func (bl *Blocks) toWire() *wire.Object {
	o := wire.NewObject()
	wire.Set(o, "get-the-data", bl.GetTheData)
	wire.Set(o, "download-image", bl.DownloadImage)
	wire.Set(o, "download-pdf", bl.DownloadPDF)
	wire.Set(o, "download-svg", bl.DownloadSVG)
	wire.Set(o, "embed", bl.Embed)
	logo := wire.NewObject()
	wire.Set(logo, "id", bl.LogoID)
	wire.Set(logo, "enabled", bl.Logo)
	wire.SetObject(o, "logo", logo)
	return o
}

func (bl *Blocks) fromWire(s wire.Section) {
	s.Bool("get-the-data", &bl.GetTheData)
	s.Bool("download-image", &bl.DownloadImage)
	s.Bool("download-pdf", &bl.DownloadPDF)
	s.Bool("download-svg", &bl.DownloadSVG)
	s.Bool("embed", &bl.Embed)
	logo := s.Object("logo")
	logo.String("id", &bl.LogoID)
	logo.Bool("enabled", &bl.Logo)
}

// Base holds the settings every chart type shares
type Base struct {
	// Info is filled from fetched documents and never sent
	Info  Info
	state State

	Title    optional.Option[string]
	Theme    optional.Option[string]
	Language optional.Option[string]

	// Data is uploaded separately from the document
	Data *dataset.Dataset

	Transform        Transform
	Describe         Describe
	Notes            optional.Option[string]
	DarkModeInvert   optional.Option[bool]
	Sharing          Sharing
	AutoDarkMode     optional.Option[bool]
	ForceAttribution optional.Option[bool]
	Blocks           Blocks
	// Custom is a free-form object stored under metadata.custom
	Custom optional.Option[json.RawMessage]

	// Extras holds keys of a fetched document that no field models
	Extras wire.Extras
}

// Common returns the shared settings
func (b *Base) Common() *Base {
	return b
}

func (b *Base) validate(v *validation) {
	v.language("language", b.Language)
	b.Transform.validate(v)
	checkEnum("describe.number-format", b.Describe.NumberFormat)
	checkEnum("describe.number-divisor", b.Describe.NumberDivisor)
	if raw, ok := b.Custom.Get(); ok && !json.Valid(raw) {
		v.fail("custom", "is not valid JSON")
	}
}

// sections are the objects a chart adds its own keys to while writing
type sections struct {
	visualize *wire.Object
	axes      *wire.Object
}

// writeDocument assembles the wire document. fill adds the chart specific
// keys after the shared ones.
func (b *Base) writeDocument(typ string, fill func(s sections)) *wire.Object {
	root := wire.NewObject()
	root.Set("type", typ)
	wire.Set(root, "title", b.Title)
	wire.Set(root, "language", b.Language)
	wire.Set(root, "theme", b.Theme)

	vis := wire.NewObject()
	wire.Set(vis, "dark-mode-invert", b.DarkModeInvert)
	wire.SetObject(vis, "sharing", b.Sharing.toWire())
	axes := wire.NewObject()
	if fill != nil {
		fill(sections{visualize: vis, axes: axes})
	}

	publish := wire.NewObject()
	wire.Set(publish, "autoDarkMode", b.AutoDarkMode)
	wire.Set(publish, "force-attribution", b.ForceAttribution)
	wire.SetObject(publish, "blocks", b.Blocks.toWire())

	annotate := wire.NewObject()
	wire.Set(annotate, "notes", b.Notes)

	meta := wire.NewObject()
	wire.SetObject(meta, "data", b.Transform.toWire())
	wire.SetObject(meta, "describe", b.Describe.toWire())
	wire.SetObject(meta, "visualize", vis)
	wire.SetObject(meta, "publish", publish)
	wire.SetObject(meta, "annotate", annotate)
	wire.SetObject(meta, "axes", axes)
	if raw, ok := b.Custom.Get(); ok {
		meta.Set("custom", raw)
	}
	wire.SetObject(root, "metadata", meta)

	b.Extras.Apply(root)
	return root
}

// reader gives a chart the sections of a fetched document
type reader struct {
	root      wire.Section
	visualize wire.Section
	axes      wire.Section
}

// readDocument parses data into b and hands the chart specific sections to
// fill. Extras are collected after fill has run.
func (b *Base) readDocument(data []byte, typ string, fill func(r reader)) error {
	d, err := wire.Parse(data)
	if err != nil {
		return err
	}
	root := d.Root()
	var docType optional.Option[string]
	root.String("type", &docType)
	if t, ok := docType.Get(); ok && t != typ {
		return ErrTypeMismatch{Expected: typ, Actual: t}
	}

	b.readInfo(root)
	root.String("title", &b.Title)
	root.String("language", &b.Language)
	root.String("theme", &b.Theme)

	meta := root.Object("metadata")
	b.Transform.fromWire(meta.Object("data"))
	b.Describe.fromWire(meta.Object("describe"))
	vis := meta.Object("visualize")
	vis.Bool("dark-mode-invert", &b.DarkModeInvert)
	b.Sharing.fromWire(vis.Object("sharing"))
	publish := meta.Object("publish")
	publish.Bool("autoDarkMode", &b.AutoDarkMode)
	publish.Bool("force-attribution", &b.ForceAttribution)
	b.Blocks.fromWire(publish.Object("blocks"))
	meta.Object("annotate").String("notes", &b.Notes)
	if r, ok := meta.Take("custom"); ok {
		b.Custom = optional.Some(json.RawMessage(r.Raw))
	}

	if fill != nil {
		fill(reader{root: root, visualize: vis, axes: meta.Object("axes")})
	}
	b.Extras = d.Extras()
	return nil
}

func (b *Base) readInfo(root wire.Section) {
	var (
		id, publicID, publicURL, org optional.Option[string]
		version, author, folder      optional.Option[int]
	)
	root.String("id", &id)
	root.String("publicId", &publicID)
	root.String("publicUrl", &publicURL)
	root.String("organizationId", &org)
	root.Int("publicVersion", &version)
	root.Int("authorId", &author)
	root.Int("folderId", &folder)
	b.Info = Info{
		ID:             id.Value(),
		PublicID:       publicID.Value(),
		PublicURL:      publicURL.Value(),
		OrganizationID: org.Value(),
		PublicVersion:  version.Value(),
		AuthorID:       author.Value(),
		FolderID:       folder.Value(),
		CreatedAt:      readTime(root, "createdAt"),
		LastModifiedAt: readTime(root, "lastModifiedAt"),
		PublishedAt:    readTime(root, "publishedAt"),
	}
	switch {
	case b.Info.ID == "":
		b.state = StateUnsaved
	case b.Info.PublicURL != "" || !b.Info.PublishedAt.IsZero():
		b.state = StatePublished
	default:
		b.state = StateSaved
	}
}

func readTime(s wire.Section, key string) time.Time {
	var raw optional.Option[string]
	s.String(key, &raw)
	if !raw.Has() {
		return time.Time{}
	}
	t, err := dateparse.ParseIn(raw.Value(), time.UTC)
	if err != nil {
		return time.Time{}
	}
	return t
}
