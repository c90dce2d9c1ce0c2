// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package datawrapper

import (
	"context"
	"net/url"
	"strconv"
	"time"
)

// APIToken is a personal access token. Token is only returned on creation.
type APIToken struct {
	ID         int        `json:"id"`
	Comment    string     `json:"comment"`
	Scopes     []string   `json:"scopes"`
	Token      string     `json:"token,omitempty"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`
}

// LoginToken is a one time login link
type LoginToken struct {
	ID        int        `json:"id"`
	Token     string     `json:"token,omitempty"`
	URL       string     `json:"url,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// EditAPITokenOption options when editing a token
type EditAPITokenOption struct {
	Comment string   `json:"comment"`
	Scopes  []string `json:"scopes,omitempty"`
}

type createAPITokenOption struct {
	Comment string   `json:"comment"`
	Scopes  []string `json:"scopes"`
}

func listQuery(opt ListOptions) url.Values {
	q := url.Values{}
	opt.setQuery(q)
	return q
}

// ListAPITokens lists the personal access tokens of the user
func (c *Client) ListAPITokens(ctx context.Context, opt ListOptions) (*List[APIToken], *Response, error) {
	list := new(List[APIToken])
	resp, err := c.getParsedResponse(ctx, "GET", withQuery("/auth/tokens", listQuery(opt)), nil, nil, list)
	return list, resp, err
}

// CreateAPIToken creates a token with the given scopes
func (c *Client) CreateAPIToken(ctx context.Context, comment string, scopes []string) (*APIToken, *Response, error) {
	body, err := jsonBody(&createAPITokenOption{Comment: comment, Scopes: scopes})
	if err != nil {
		return nil, nil, err
	}
	t := new(APIToken)
	resp, err := c.getParsedResponse(ctx, "POST", "/auth/tokens", jsonHeader, body, t)
	return t, resp, err
}

// EditAPIToken changes the comment or scopes of a token
func (c *Client) EditAPIToken(ctx context.Context, id int, opt EditAPITokenOption) (*Response, error) {
	body, err := jsonBody(&opt)
	if err != nil {
		return nil, err
	}
	_, resp, err := c.getResponse(ctx, "PUT", "/auth/tokens/"+strconv.Itoa(id), jsonHeader, body)
	return resp, err
}

// DeleteAPIToken revokes a token
func (c *Client) DeleteAPIToken(ctx context.Context, id int) (*Response, error) {
	_, resp, err := c.getResponse(ctx, "DELETE", "/auth/tokens/"+strconv.Itoa(id), nil, nil)
	return resp, err
}

// GetTokenScopes lists the scopes a token can be granted
func (c *Client) GetTokenScopes(ctx context.Context) ([]string, *Response, error) {
	scopes := make([]string, 0, 16)
	resp, err := c.getParsedResponse(ctx, "GET", "/auth/token-scopes", nil, nil, &scopes)
	return scopes, resp, err
}

// ListLoginTokens lists the open login tokens of the user
func (c *Client) ListLoginTokens(ctx context.Context, opt ListOptions) (*List[LoginToken], *Response, error) {
	list := new(List[LoginToken])
	resp, err := c.getParsedResponse(ctx, "GET", withQuery("/auth/login-tokens", listQuery(opt)), nil, nil, list)
	return list, resp, err
}

// CreateLoginToken creates a login token
func (c *Client) CreateLoginToken(ctx context.Context) (*LoginToken, *Response, error) {
	t := new(LoginToken)
	resp, err := c.getParsedResponse(ctx, "POST", "/auth/login-tokens", nil, nil, t)
	return t, resp, err
}

// DeleteLoginToken revokes a login token
func (c *Client) DeleteLoginToken(ctx context.Context, id int) (*Response, error) {
	_, resp, err := c.getResponse(ctx, "DELETE", "/auth/login-tokens/"+strconv.Itoa(id), nil, nil)
	return resp, err
}
