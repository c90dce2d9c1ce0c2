// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package datawrapper

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/chartkit/dwclient/modules/json"
)

// Theme is a chart theme
type Theme struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Extend         string          `json:"extend,omitempty"`
	Data           json.RawMessage `json:"data,omitempty"`
	CreatedAt      *time.Time      `json:"createdAt,omitempty"`
	LastModifiedAt *time.Time      `json:"lastModifiedAt,omitempty"`
}

// ListThemesOptions filters ListThemes
type ListThemesOptions struct {
	ListOptions
	Deleted bool
}

// ListThemes lists the themes available to the user
func (c *Client) ListThemes(ctx context.Context, opt ListThemesOptions) (*List[Theme], *Response, error) {
	q := listQuery(opt.ListOptions)
	if opt.Deleted {
		q.Set("deleted", "true")
	}
	list := new(List[Theme])
	resp, err := c.getParsedResponse(ctx, "GET", withQuery("/themes", q), nil, nil, list)
	return list, resp, err
}

// GetTheme returns one theme
func (c *Client) GetTheme(ctx context.Context, id string) (*Theme, *Response, error) {
	if err := escapeValidatePathSegments(&id); err != nil {
		return nil, nil, err
	}
	t := new(Theme)
	resp, err := c.getParsedResponse(ctx, "GET", "/themes/"+id, nil, nil, t)
	return t, resp, err
}

// Basemap is a map outline usable by map charts
type Basemap struct {
	ID    string          `json:"id"`
	Title string          `json:"title"`
	Keys  json.RawMessage `json:"keys,omitempty"`
}

// ListBasemaps lists the basemaps
func (c *Client) ListBasemaps(ctx context.Context) ([]Basemap, *Response, error) {
	maps := make([]Basemap, 0, 32)
	resp, err := c.getParsedResponse(ctx, "GET", "/basemaps", nil, nil, &maps)
	return maps, resp, err
}

// GetBasemap returns the geometry of a basemap, projected or in WGS84
func (c *Client) GetBasemap(ctx context.Context, id string, wgs84 bool) ([]byte, *Response, error) {
	if err := escapeValidatePathSegments(&id); err != nil {
		return nil, nil, err
	}
	q := url.Values{}
	if wgs84 {
		q.Set("wgs84", "true")
	}
	return c.getResponse(ctx, "GET", withQuery("/basemaps/"+id, q), nil, nil)
}

// GetBasemapKey returns the values of one key of a basemap
func (c *Client) GetBasemapKey(ctx context.Context, id, key string) ([]byte, *Response, error) {
	if err := escapeValidatePathSegments(&id, &key); err != nil {
		return nil, nil, err
	}
	return c.getResponse(ctx, "GET", "/basemaps/"+id+"/"+key, nil, nil)
}

// OEmbed is the oEmbed description of a published chart
type OEmbed struct {
	Type         string `json:"type"`
	Version      string `json:"version"`
	ProviderName string `json:"provider_name"`
	ProviderURL  string `json:"provider_url"`
	Title        string `json:"title"`
	HTML         string `json:"html"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
}

// OEmbedOptions selects the chart and size of GetOEmbed
type OEmbedOptions struct {
	URL       string
	MaxWidth  int
	MaxHeight int
	IFrame    bool
}

// GetOEmbed returns the embed description of a chart URL
func (c *Client) GetOEmbed(ctx context.Context, opt OEmbedOptions) (*OEmbed, *Response, error) {
	if opt.URL == "" {
		return nil, nil, &ConfigurationError{Setting: "oembed url", Reason: "is required"}
	}
	q := url.Values{}
	q.Set("url", opt.URL)
	q.Set("format", "json")
	if opt.MaxWidth > 0 {
		q.Set("maxwidth", strconv.Itoa(opt.MaxWidth))
	}
	if opt.MaxHeight > 0 {
		q.Set("maxheight", strconv.Itoa(opt.MaxHeight))
	}
	if opt.IFrame {
		q.Set("iframe", "true")
	}
	o := new(OEmbed)
	resp, err := c.getParsedResponse(ctx, "GET", withQuery("/oembed", q), nil, nil, o)
	return o, resp, err
}

// RiverChart is a chart shared on the Datawrapper River
type RiverChart struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Byline      string   `json:"byline,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Forkable    bool     `json:"forkable"`
	Approved    bool     `json:"approved,omitempty"`
	PublicURL   string   `json:"publicUrl,omitempty"`
}

// ListRiverOptions filters ListRiverCharts
type ListRiverOptions struct {
	ListOptions
	Approved *bool
	Search   string
}

// ListRiverCharts lists the River
func (c *Client) ListRiverCharts(ctx context.Context, opt ListRiverOptions) (*List[RiverChart], *Response, error) {
	q := listQuery(opt.ListOptions)
	if opt.Approved != nil {
		q.Set("approved", strconv.FormatBool(*opt.Approved))
	}
	if opt.Search != "" {
		q.Set("search", opt.Search)
	}
	list := new(List[RiverChart])
	resp, err := c.getParsedResponse(ctx, "GET", withQuery("/river", q), nil, nil, list)
	return list, resp, err
}

// GetRiverChart returns one River entry
func (c *Client) GetRiverChart(ctx context.Context, id string) (*RiverChart, *Response, error) {
	if err := escapeValidatePathSegments(&id); err != nil {
		return nil, nil, err
	}
	r := new(RiverChart)
	resp, err := c.getParsedResponse(ctx, "GET", "/river/"+id, nil, nil, r)
	return r, resp, err
}

// EditRiverChartOption describes a chart on the River
type EditRiverChartOption struct {
	Description string   `json:"description"`
	Byline      string   `json:"byline"`
	Tags        []string `json:"tags"`
	Forkable    bool     `json:"forkable"`
}

// EditRiverChart updates the River entry of a chart
func (c *Client) EditRiverChart(ctx context.Context, id string, opt EditRiverChartOption) (*Response, error) {
	if err := escapeValidatePathSegments(&id); err != nil {
		return nil, err
	}
	body, err := jsonBody(&opt)
	if err != nil {
		return nil, err
	}
	_, resp, err := c.getResponse(ctx, "PUT", "/river/"+id, jsonHeader, body)
	return resp, err
}
