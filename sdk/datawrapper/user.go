// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package datawrapper

import (
	"context"
	"net/url"
	"strconv"
	"time"
)

// User is a Datawrapper account
type User struct {
	ID         int        `json:"id"`
	Name       string     `json:"name,omitempty"`
	Email      string     `json:"email"`
	Role       string     `json:"role,omitempty"`
	Language   string     `json:"language,omitempty"`
	ActiveTeam string     `json:"activeTeam,omitempty"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
	ChartCount int        `json:"chartCount,omitempty"`
}

// ListUsersOptions filters ListUsers
type ListUsersOptions struct {
	SearchOptions
	TeamID string
}

// EditUserOption options when editing an account. Unset fields are left unchanged.
type EditUserOption struct {
	Name          *string `json:"name,omitempty"`
	Email         *string `json:"email,omitempty"`
	Role          *string `json:"role,omitempty"`
	Language      *string `json:"language,omitempty"`
	ActivateToken *string `json:"activateToken,omitempty"`
	Password      *string `json:"password,omitempty"`
	OldPassword   *string `json:"oldPassword,omitempty"`
}

type userSettings struct {
	ActiveTeam string `json:"activeTeam"`
}

// RecentChartsOptions pages the recently edited and published chart lists
type RecentChartsOptions struct {
	ListOptions
	MinLastEditStep int
}

func (opt RecentChartsOptions) query() url.Values {
	q := url.Values{}
	opt.setQuery(q)
	if opt.MinLastEditStep > 0 {
		q.Set("minLastEditStep", strconv.Itoa(opt.MinLastEditStep))
	}
	return q
}

// GetMyAccount returns the user owning the token
func (c *Client) GetMyAccount(ctx context.Context) (*User, *Response, error) {
	u := new(User)
	resp, err := c.getParsedResponse(ctx, "GET", "/me", nil, nil, u)
	return u, resp, err
}

// EditMyAccount updates the user owning the token
func (c *Client) EditMyAccount(ctx context.Context, opt EditUserOption) (*User, *Response, error) {
	return c.editUser(ctx, "/me", opt)
}

// EditMySettings sets the active team of the user owning the token
func (c *Client) EditMySettings(ctx context.Context, activeTeam string) (*Response, error) {
	return c.editSettings(ctx, "/me/settings", activeTeam)
}

// ListMyRecentlyEditedCharts lists the charts the token's user edited last
func (c *Client) ListMyRecentlyEditedCharts(ctx context.Context, opt RecentChartsOptions) (*List[ChartInfo], *Response, error) {
	return c.recentCharts(ctx, "/me/recently-edited-charts", opt)
}

// ListMyRecentlyPublishedCharts lists the charts the token's user published last
func (c *Client) ListMyRecentlyPublishedCharts(ctx context.Context, opt RecentChartsOptions) (*List[ChartInfo], *Response, error) {
	return c.recentCharts(ctx, "/me/recently-published-charts", opt)
}

// ListUsers lists users, admin tokens only
func (c *Client) ListUsers(ctx context.Context, opt ListUsersOptions) (*List[User], *Response, error) {
	q := opt.query()
	if opt.TeamID != "" {
		q.Set("teamId", opt.TeamID)
	}
	list := new(List[User])
	resp, err := c.getParsedResponse(ctx, "GET", withQuery("/users", q), nil, nil, list)
	return list, resp, err
}

// GetUser returns one user
func (c *Client) GetUser(ctx context.Context, id int) (*User, *Response, error) {
	u := new(User)
	resp, err := c.getParsedResponse(ctx, "GET", "/users/"+strconv.Itoa(id), nil, nil, u)
	return u, resp, err
}

// EditUser updates a user
func (c *Client) EditUser(ctx context.Context, id int, opt EditUserOption) (*User, *Response, error) {
	return c.editUser(ctx, "/users/"+strconv.Itoa(id), opt)
}

// EditUserSettings sets the active team of a user
func (c *Client) EditUserSettings(ctx context.Context, id int, activeTeam string) (*Response, error) {
	return c.editSettings(ctx, "/users/"+strconv.Itoa(id)+"/settings", activeTeam)
}

// ListUserRecentlyEditedCharts lists the charts a user edited last
func (c *Client) ListUserRecentlyEditedCharts(ctx context.Context, id int, opt RecentChartsOptions) (*List[ChartInfo], *Response, error) {
	return c.recentCharts(ctx, "/users/"+strconv.Itoa(id)+"/recently-edited-charts", opt)
}

// ListUserRecentlyPublishedCharts lists the charts a user published last
func (c *Client) ListUserRecentlyPublishedCharts(ctx context.Context, id int, opt RecentChartsOptions) (*List[ChartInfo], *Response, error) {
	return c.recentCharts(ctx, "/users/"+strconv.Itoa(id)+"/recently-published-charts", opt)
}

func (c *Client) editUser(ctx context.Context, path string, opt EditUserOption) (*User, *Response, error) {
	body, err := jsonBody(&opt)
	if err != nil {
		return nil, nil, err
	}
	u := new(User)
	resp, err := c.getParsedResponse(ctx, "PATCH", path, jsonHeader, body, u)
	return u, resp, err
}

func (c *Client) editSettings(ctx context.Context, path, activeTeam string) (*Response, error) {
	body, err := jsonBody(&userSettings{ActiveTeam: activeTeam})
	if err != nil {
		return nil, err
	}
	_, resp, err := c.getResponse(ctx, "PATCH", path, jsonHeader, body)
	return resp, err
}

func (c *Client) recentCharts(ctx context.Context, path string, opt RecentChartsOptions) (*List[ChartInfo], *Response, error) {
	list := new(List[ChartInfo])
	resp, err := c.getParsedResponse(ctx, "GET", withQuery(path, opt.query()), nil, nil, list)
	return list, resp, err
}
