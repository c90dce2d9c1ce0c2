// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package datawrapper

import (
	"context"
	"strconv"
)

// Folder is a folder of charts. Listed folders carry their subfolders and charts.
type Folder struct {
	ID       int         `json:"id"`
	Name     string      `json:"name"`
	Type     string      `json:"type,omitempty"`
	ParentID *int        `json:"parentId,omitempty"`
	TeamID   *string     `json:"teamId,omitempty"`
	UserID   *int        `json:"userId,omitempty"`
	Folders  []Folder    `json:"folders,omitempty"`
	Charts   []ChartInfo `json:"charts,omitempty"`
}

// ListFolders returns the folder trees of the user and their teams
func (c *Client) ListFolders(ctx context.Context) (*List[Folder], *Response, error) {
	list := new(List[Folder])
	resp, err := c.getParsedResponse(ctx, "GET", "/folders", nil, nil, list)
	return list, resp, err
}

// GetFolder returns one folder
func (c *Client) GetFolder(ctx context.Context, id int) (*Folder, *Response, error) {
	folder := new(Folder)
	resp, err := c.getParsedResponse(ctx, "GET", "/folders/"+strconv.Itoa(id), nil, nil, folder)
	return folder, resp, err
}

// CreateFolderOption options when creating a folder
type CreateFolderOption struct {
	Name     string `json:"name"`
	ParentID *int   `json:"parentId,omitempty"`
	TeamID   string `json:"teamId,omitempty"`
}

// CreateFolder creates a folder
func (c *Client) CreateFolder(ctx context.Context, opt CreateFolderOption) (*Folder, *Response, error) {
	if opt.Name == "" {
		return nil, nil, &ConfigurationError{Setting: "folder name", Reason: "is required"}
	}
	body, err := jsonBody(&opt)
	if err != nil {
		return nil, nil, err
	}
	folder := new(Folder)
	resp, err := c.getParsedResponse(ctx, "POST", "/folders", jsonHeader, body, folder)
	return folder, resp, err
}

// EditFolderOption options when editing a folder. Unset fields are left unchanged.
type EditFolderOption struct {
	Name     *string `json:"name,omitempty"`
	ParentID *int    `json:"parentId,omitempty"`
	TeamID   *string `json:"teamId,omitempty"`
	UserID   *int    `json:"userId,omitempty"`
}

// EditFolder renames or moves a folder
func (c *Client) EditFolder(ctx context.Context, id int, opt EditFolderOption) (*Folder, *Response, error) {
	body, err := jsonBody(&opt)
	if err != nil {
		return nil, nil, err
	}
	folder := new(Folder)
	resp, err := c.getParsedResponse(ctx, "PATCH", "/folders/"+strconv.Itoa(id), jsonHeader, body, folder)
	return folder, resp, err
}

// DeleteFolder deletes a folder
func (c *Client) DeleteFolder(ctx context.Context, id int) (*Response, error) {
	_, resp, err := c.getResponse(ctx, "DELETE", "/folders/"+strconv.Itoa(id), nil, nil)
	return resp, err
}
