// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package datawrapper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"time"

	"github.com/chartkit/dwclient/modules/json"
	"github.com/chartkit/dwclient/modules/util"

	"github.com/tidwall/gjson"
)

// ChartInfo is a chart as listed or returned by the API
type ChartInfo struct {
	ID             string          `json:"id"`
	Type           string          `json:"type"`
	Title          string          `json:"title"`
	Theme          string          `json:"theme,omitempty"`
	Language       string          `json:"language,omitempty"`
	PublicID       string          `json:"publicId,omitempty"`
	PublicURL      string          `json:"publicUrl,omitempty"`
	PublicVersion  int             `json:"publicVersion,omitempty"`
	AuthorID       int             `json:"authorId,omitempty"`
	OrganizationID string          `json:"organizationId,omitempty"`
	FolderID       *int            `json:"folderId,omitempty"`
	CreatedAt      *time.Time      `json:"createdAt,omitempty"`
	LastModifiedAt *time.Time      `json:"lastModifiedAt,omitempty"`
	PublishedAt    *time.Time      `json:"publishedAt,omitempty"`
	Metadata       json.RawMessage `json:"metadata,omitempty"`
}

// ListChartsOptions filters ListCharts
type ListChartsOptions struct {
	ListOptions
	UserID    string
	Published *bool
	Search    string
	// Order is ASC or DESC
	Order   string
	OrderBy string
	// FolderID 0 lists all folders
	FolderID int
	TeamID   string
}

func (opt ListChartsOptions) query() url.Values {
	q := url.Values{}
	opt.setQuery(q)
	if opt.UserID != "" {
		q.Set("userId", opt.UserID)
	}
	if opt.Published != nil {
		q.Set("published", strconv.FormatBool(*opt.Published))
	}
	if opt.Search != "" {
		q.Set("search", opt.Search)
	}
	if opt.Order != "" {
		q.Set("order", opt.Order)
	}
	if opt.OrderBy != "" {
		q.Set("orderBy", opt.OrderBy)
	}
	if opt.FolderID > 0 {
		q.Set("folderId", strconv.Itoa(opt.FolderID))
	}
	if opt.TeamID != "" {
		q.Set("teamId", opt.TeamID)
	}
	return q
}

// ListCharts lists the charts visible to the token
func (c *Client) ListCharts(ctx context.Context, opt ListChartsOptions) (*List[ChartInfo], *Response, error) {
	list := new(List[ChartInfo])
	resp, err := c.getParsedResponse(ctx, "GET", withQuery("/charts", opt.query()), nil, nil, list)
	return list, resp, err
}

// GetChart returns the chart with its metadata
func (c *Client) GetChart(ctx context.Context, id string) (*ChartInfo, *Response, error) {
	if err := escapeValidatePathSegments(&id); err != nil {
		return nil, nil, err
	}
	chart := new(ChartInfo)
	resp, err := c.getParsedResponse(ctx, "GET", "/charts/"+id, nil, nil, chart)
	return chart, resp, err
}

// GetChartRaw returns the chart document exactly as sent by the API
func (c *Client) GetChartRaw(ctx context.Context, id string) ([]byte, *Response, error) {
	if err := escapeValidatePathSegments(&id); err != nil {
		return nil, nil, err
	}
	return c.getResponse(ctx, "GET", "/charts/"+id, nil, nil)
}

// CreateChartOption options when creating a chart
type CreateChartOption struct {
	Title    string          `json:"title,omitempty"`
	Type     string          `json:"type"`
	Theme    string          `json:"theme,omitempty"`
	Language string          `json:"language,omitempty"`
	FolderID *int            `json:"folderId,omitempty"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

// CreateChart creates a chart
func (c *Client) CreateChart(ctx context.Context, opt CreateChartOption) (*ChartInfo, *Response, error) {
	if opt.Type == "" {
		return nil, nil, &ConfigurationError{Setting: "chart type", Reason: "is required"}
	}
	body, err := jsonBody(&opt)
	if err != nil {
		return nil, nil, err
	}
	chart := new(ChartInfo)
	resp, err := c.getParsedResponse(ctx, "POST", "/charts", jsonHeader, body, chart)
	return chart, resp, err
}

// CreateChartRaw posts a complete chart document and returns the created document
func (c *Client) CreateChartRaw(ctx context.Context, doc []byte) ([]byte, *Response, error) {
	return c.getResponse(ctx, "POST", "/charts", jsonHeader, bytes.NewReader(doc))
}

// EditChartOption options when editing a chart. Unset fields are left unchanged.
type EditChartOption struct {
	Title    *string         `json:"title,omitempty"`
	Type     *string         `json:"type,omitempty"`
	Theme    *string         `json:"theme,omitempty"`
	Language *string         `json:"language,omitempty"`
	FolderID *int            `json:"folderId,omitempty"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

// EditChart updates a chart
func (c *Client) EditChart(ctx context.Context, id string, opt EditChartOption) (*ChartInfo, *Response, error) {
	if err := escapeValidatePathSegments(&id); err != nil {
		return nil, nil, err
	}
	body, err := jsonBody(&opt)
	if err != nil {
		return nil, nil, err
	}
	chart := new(ChartInfo)
	resp, err := c.getParsedResponse(ctx, "PATCH", "/charts/"+id, jsonHeader, body, chart)
	return chart, resp, err
}

// EditChartRaw patches a chart with a raw document and returns the updated document
func (c *Client) EditChartRaw(ctx context.Context, id string, doc []byte) ([]byte, *Response, error) {
	if err := escapeValidatePathSegments(&id); err != nil {
		return nil, nil, err
	}
	return c.getResponse(ctx, "PATCH", "/charts/"+id, jsonHeader, bytes.NewReader(doc))
}

// DeleteChart deletes a chart
func (c *Client) DeleteChart(ctx context.Context, id string) (*Response, error) {
	if err := escapeValidatePathSegments(&id); err != nil {
		return nil, err
	}
	_, resp, err := c.getResponse(ctx, "DELETE", "/charts/"+id, nil, nil)
	return resp, err
}

// CopyChart duplicates a chart owned by the token's user
func (c *Client) CopyChart(ctx context.Context, id string) (*ChartInfo, *Response, error) {
	if err := escapeValidatePathSegments(&id); err != nil {
		return nil, nil, err
	}
	chart := new(ChartInfo)
	resp, err := c.getParsedResponse(ctx, "POST", "/charts/"+id+"/copy", nil, nil, chart)
	return chart, resp, err
}

// ForkChart copies a published chart that allows forking
func (c *Client) ForkChart(ctx context.Context, id string) (*ChartInfo, *Response, error) {
	if err := escapeValidatePathSegments(&id); err != nil {
		return nil, nil, err
	}
	chart := new(ChartInfo)
	resp, err := c.getParsedResponse(ctx, "POST", "/charts/"+id+"/fork", nil, nil, chart)
	return chart, resp, err
}

// MoveChart moves a chart into a folder
func (c *Client) MoveChart(ctx context.Context, id string, folderID int) (*ChartInfo, *Response, error) {
	return c.EditChart(ctx, id, EditChartOption{FolderID: &folderID})
}

// PublishResult is returned by PublishChart
type PublishResult struct {
	Data    ChartInfo `json:"data"`
	Version int       `json:"version"`
	URL     string    `json:"url"`
}

// PublishChart publishes the current state of a chart
func (c *Client) PublishChart(ctx context.Context, id string) (*PublishResult, *Response, error) {
	if err := escapeValidatePathSegments(&id); err != nil {
		return nil, nil, err
	}
	result := new(PublishResult)
	resp, err := c.getParsedResponse(ctx, "POST", "/charts/"+id+"/publish", nil, nil, result)
	if err == nil && result.URL == "" {
		result.URL = result.Data.PublicURL
	}
	return result, resp, err
}

// UnpublishChart takes a published chart offline
func (c *Client) UnpublishChart(ctx context.Context, id string) (*Response, error) {
	if err := escapeValidatePathSegments(&id); err != nil {
		return nil, err
	}
	_, resp, err := c.getResponse(ctx, "POST", "/charts/"+id+"/unpublish", nil, nil)
	return resp, err
}

// ExportChart renders a chart. The options are validated before the request.
func (c *Client) ExportChart(ctx context.Context, id string, opt ExportOptions) ([]byte, *Response, error) {
	if err := escapeValidatePathSegments(&id); err != nil {
		return nil, nil, err
	}
	if err := opt.Validate(); err != nil {
		return nil, nil, err
	}
	ctx, cancel := c.uploadContext(ctx)
	defer cancel()
	format := opt.OutputFormat()
	data, resp, err := c.getResponse(ctx, "GET", withQuery(fmt.Sprintf("/charts/%s/export/%s", id, format), opt.query()), nil, nil)
	if err == nil {
		c.metrics.ObserveExport(string(format), len(data))
	}
	return data, resp, err
}

// GetChartData returns the uploaded data of a chart, usually CSV
func (c *Client) GetChartData(ctx context.Context, id string) ([]byte, *Response, error) {
	if err := escapeValidatePathSegments(&id); err != nil {
		return nil, nil, err
	}
	return c.getResponse(ctx, "GET", "/charts/"+id+"/data", nil, nil)
}

// UploadChartData replaces the data of a chart with CSV
func (c *Client) UploadChartData(ctx context.Context, id string, csv io.Reader) (*Response, error) {
	if err := escapeValidatePathSegments(&id); err != nil {
		return nil, err
	}
	ctx, cancel := c.uploadContext(ctx)
	defer cancel()
	_, resp, err := c.getResponse(ctx, "PUT", "/charts/"+id+"/data", csvHeader, csv)
	return resp, err
}

// RefreshChartData reloads the data of a chart from its external source
func (c *Client) RefreshChartData(ctx context.Context, id string) (*ChartInfo, *Response, error) {
	if err := escapeValidatePathSegments(&id); err != nil {
		return nil, nil, err
	}
	chart := new(ChartInfo)
	resp, err := c.getParsedResponse(ctx, "POST", "/charts/"+id+"/data/refresh", nil, nil, chart)
	return chart, resp, err
}

// DisplayURL is one of the URLs a published chart can be viewed at
type DisplayURL struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	URL     string `json:"url"`
	Preview string `json:"preview,omitempty"`
}

// GetChartDisplayURLs lists the URLs of a published chart
func (c *Client) GetChartDisplayURLs(ctx context.Context, id string) ([]DisplayURL, *Response, error) {
	if err := escapeValidatePathSegments(&id); err != nil {
		return nil, nil, err
	}
	urls := make([]DisplayURL, 0, 4)
	resp, err := c.getParsedResponse(ctx, "GET", "/charts/"+id+"/display-urls", nil, nil, &urls)
	return urls, resp, err
}

// GetChartIframeCode returns the embed code of a published chart
func (c *Client) GetChartIframeCode(ctx context.Context, id string, responsive bool) (string, *Response, error) {
	data, resp, err := c.GetChartRaw(ctx, id)
	if err != nil {
		return "", resp, err
	}
	method := "embed-method-iframe"
	if responsive {
		method = "embed-method-responsive"
	}
	code := gjson.GetBytes(data, "metadata.publish.embed-codes."+method)
	if !code.Exists() {
		return "", resp, util.NewNotExistErrorf("chart %s has no %s embed code", id, method)
	}
	return code.String(), resp, nil
}
