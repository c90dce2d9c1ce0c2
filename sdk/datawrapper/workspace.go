// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package datawrapper

import (
	"context"
	"net/url"

	"github.com/chartkit/dwclient/modules/json"
)

// Workspace groups teams, members and charts
type Workspace struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Slug     string          `json:"slug"`
	Color    string          `json:"color,omitempty"`
	Settings json.RawMessage `json:"settings,omitempty"`
}

// Team is a team inside a workspace
type Team struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Icon      string          `json:"icon,omitempty"`
	IsPrivate bool            `json:"isPrivate,omitempty"`
	Settings  json.RawMessage `json:"settings,omitempty"`
}

// Member is a user's membership in a workspace or team
type Member struct {
	ID       int    `json:"id"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
	IsInvite bool   `json:"isInvite,omitempty"`
}

// SearchOptions are the filters shared by workspace, team and user lists
type SearchOptions struct {
	ListOptions
	Search  string
	Order   string
	OrderBy string
}

func (opt SearchOptions) query() url.Values {
	q := url.Values{}
	opt.setQuery(q)
	if opt.Search != "" {
		q.Set("search", opt.Search)
	}
	if opt.Order != "" {
		q.Set("order", opt.Order)
	}
	if opt.OrderBy != "" {
		q.Set("orderBy", opt.OrderBy)
	}
	return q
}

// ListMembersOptions filters member lists
type ListMembersOptions struct {
	SearchOptions
	Role           string
	IncludeInvites bool
}

func (opt ListMembersOptions) query() url.Values {
	q := opt.SearchOptions.query()
	if opt.Role != "" {
		q.Set("role", opt.Role)
	}
	if opt.IncludeInvites {
		q.Set("includeInvites", "true")
	}
	return q
}

// EditMembersOption sets the role of members
type EditMembersOption struct {
	MemberIDs []int  `json:"memberIds"`
	Role      string `json:"role"`
}

type memberIDs struct {
	MemberIDs []int `json:"memberIds"`
}

// ListWorkspaces lists the workspaces of the user
func (c *Client) ListWorkspaces(ctx context.Context, opt SearchOptions) (*List[Workspace], *Response, error) {
	list := new(List[Workspace])
	resp, err := c.getParsedResponse(ctx, "GET", withQuery("/workspaces", opt.query()), nil, nil, list)
	return list, resp, err
}

// GetWorkspace returns the workspace with the given slug
func (c *Client) GetWorkspace(ctx context.Context, slug string) (*Workspace, *Response, error) {
	if err := escapeValidatePathSegments(&slug); err != nil {
		return nil, nil, err
	}
	w := new(Workspace)
	resp, err := c.getParsedResponse(ctx, "GET", "/workspaces/"+slug, nil, nil, w)
	return w, resp, err
}

// CreateWorkspaceOption options when creating a workspace
type CreateWorkspaceOption struct {
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// CreateWorkspace creates a workspace
func (c *Client) CreateWorkspace(ctx context.Context, opt CreateWorkspaceOption) (*Workspace, *Response, error) {
	if opt.Name == "" {
		return nil, nil, &ConfigurationError{Setting: "workspace name", Reason: "is required"}
	}
	body, err := jsonBody(&opt)
	if err != nil {
		return nil, nil, err
	}
	w := new(Workspace)
	resp, err := c.getParsedResponse(ctx, "POST", "/workspaces", jsonHeader, body, w)
	return w, resp, err
}

// EditWorkspaceOption options when editing a workspace. Unset fields are left unchanged.
type EditWorkspaceOption struct {
	Name     *string         `json:"name,omitempty"`
	Slug     *string         `json:"slug,omitempty"`
	Color    *string         `json:"color,omitempty"`
	Settings json.RawMessage `json:"settings,omitempty"`
	Secrets  json.RawMessage `json:"secrets,omitempty"`
}

// EditWorkspace updates a workspace
func (c *Client) EditWorkspace(ctx context.Context, slug string, opt EditWorkspaceOption) (*Workspace, *Response, error) {
	if err := escapeValidatePathSegments(&slug); err != nil {
		return nil, nil, err
	}
	body, err := jsonBody(&opt)
	if err != nil {
		return nil, nil, err
	}
	w := new(Workspace)
	resp, err := c.getParsedResponse(ctx, "PATCH", "/workspaces/"+slug, jsonHeader, body, w)
	return w, resp, err
}

// DeleteWorkspace deletes a workspace
func (c *Client) DeleteWorkspace(ctx context.Context, slug string) (*Response, error) {
	if err := escapeValidatePathSegments(&slug); err != nil {
		return nil, err
	}
	_, resp, err := c.getResponse(ctx, "DELETE", "/workspaces/"+slug, nil, nil)
	return resp, err
}

// ListWorkspaceMembers lists the members of a workspace
func (c *Client) ListWorkspaceMembers(ctx context.Context, slug string, opt ListMembersOptions) (*List[Member], *Response, error) {
	if err := escapeValidatePathSegments(&slug); err != nil {
		return nil, nil, err
	}
	list := new(List[Member])
	resp, err := c.getParsedResponse(ctx, "GET", withQuery("/workspaces/"+slug+"/members", opt.query()), nil, nil, list)
	return list, resp, err
}

// EditWorkspaceMembers changes the role of workspace members
func (c *Client) EditWorkspaceMembers(ctx context.Context, slug string, opt EditMembersOption) (*Response, error) {
	if err := escapeValidatePathSegments(&slug); err != nil {
		return nil, err
	}
	body, err := jsonBody(&opt)
	if err != nil {
		return nil, err
	}
	_, resp, err := c.getResponse(ctx, "PATCH", "/workspaces/"+slug+"/members", jsonHeader, body)
	return resp, err
}

// RemoveWorkspaceMembers removes users from a workspace
func (c *Client) RemoveWorkspaceMembers(ctx context.Context, slug string, ids []int) (*Response, error) {
	if err := escapeValidatePathSegments(&slug); err != nil {
		return nil, err
	}
	body, err := jsonBody(&memberIDs{MemberIDs: ids})
	if err != nil {
		return nil, err
	}
	_, resp, err := c.getResponse(ctx, "DELETE", "/workspaces/"+slug+"/members", jsonHeader, body)
	return resp, err
}

// ListWorkspaceTeams lists the teams of a workspace
func (c *Client) ListWorkspaceTeams(ctx context.Context, slug string, opt SearchOptions) (*List[Team], *Response, error) {
	if err := escapeValidatePathSegments(&slug); err != nil {
		return nil, nil, err
	}
	list := new(List[Team])
	resp, err := c.getParsedResponse(ctx, "GET", withQuery("/workspaces/"+slug+"/teams", opt.query()), nil, nil, list)
	return list, resp, err
}

// GetWorkspaceTeam returns one team of a workspace
func (c *Client) GetWorkspaceTeam(ctx context.Context, slug, teamID string) (*Team, *Response, error) {
	if err := escapeValidatePathSegments(&slug, &teamID); err != nil {
		return nil, nil, err
	}
	t := new(Team)
	resp, err := c.getParsedResponse(ctx, "GET", "/workspaces/"+slug+"/teams/"+teamID, nil, nil, t)
	return t, resp, err
}

// CreateTeamOption options when creating a team
type CreateTeamOption struct {
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// CreateWorkspaceTeam creates a team in a workspace
func (c *Client) CreateWorkspaceTeam(ctx context.Context, slug string, opt CreateTeamOption) (*Team, *Response, error) {
	if err := escapeValidatePathSegments(&slug); err != nil {
		return nil, nil, err
	}
	if opt.Name == "" {
		return nil, nil, &ConfigurationError{Setting: "team name", Reason: "is required"}
	}
	body, err := jsonBody(&opt)
	if err != nil {
		return nil, nil, err
	}
	t := new(Team)
	resp, err := c.getParsedResponse(ctx, "POST", "/workspaces/"+slug+"/teams", jsonHeader, body, t)
	return t, resp, err
}

// EditTeamOption options when editing a team. Unset fields are left unchanged.
type EditTeamOption struct {
	Name      *string         `json:"name,omitempty"`
	IsPrivate *bool           `json:"isPrivate,omitempty"`
	Settings  json.RawMessage `json:"settings,omitempty"`
	Secrets   json.RawMessage `json:"secrets,omitempty"`
	Icon      *string         `json:"icon,omitempty"`
}

// EditWorkspaceTeam updates a team
func (c *Client) EditWorkspaceTeam(ctx context.Context, slug, teamID string, opt EditTeamOption) (*Team, *Response, error) {
	if err := escapeValidatePathSegments(&slug, &teamID); err != nil {
		return nil, nil, err
	}
	body, err := jsonBody(&opt)
	if err != nil {
		return nil, nil, err
	}
	t := new(Team)
	resp, err := c.getParsedResponse(ctx, "PATCH", "/workspaces/"+slug+"/teams/"+teamID, jsonHeader, body, t)
	return t, resp, err
}

// DeleteWorkspaceTeam deletes a team. Its charts move to migrateTo, or to
// the user's archive when migrateTo is empty.
func (c *Client) DeleteWorkspaceTeam(ctx context.Context, slug, teamID, migrateTo string) (*Response, error) {
	if err := escapeValidatePathSegments(&slug, &teamID); err != nil {
		return nil, err
	}
	path := "/workspaces/" + slug + "/teams/" + teamID
	if migrateTo == "" {
		_, resp, err := c.getResponse(ctx, "DELETE", path, nil, nil)
		return resp, err
	}
	body, err := jsonBody(map[string]string{"migrationTeamId": migrateTo})
	if err != nil {
		return nil, err
	}
	_, resp, err := c.getResponse(ctx, "DELETE", path, jsonHeader, body)
	return resp, err
}

// ListWorkspaceTeamMembers lists the members of a team
func (c *Client) ListWorkspaceTeamMembers(ctx context.Context, slug, teamID string, opt ListMembersOptions) (*List[Member], *Response, error) {
	if err := escapeValidatePathSegments(&slug, &teamID); err != nil {
		return nil, nil, err
	}
	list := new(List[Member])
	path := withQuery("/workspaces/"+slug+"/teams/"+teamID+"/members", opt.query())
	resp, err := c.getParsedResponse(ctx, "GET", path, nil, nil, list)
	return list, resp, err
}

// AddTeamMembersOption adds users to a team with one role
type AddTeamMembersOption struct {
	UserIDs []int  `json:"userIds"`
	Role    string `json:"role"`
}

// AddWorkspaceTeamMembers adds workspace members to a team
func (c *Client) AddWorkspaceTeamMembers(ctx context.Context, slug, teamID string, opt AddTeamMembersOption) (*Response, error) {
	if err := escapeValidatePathSegments(&slug, &teamID); err != nil {
		return nil, err
	}
	body, err := jsonBody(&opt)
	if err != nil {
		return nil, err
	}
	_, resp, err := c.getResponse(ctx, "POST", "/workspaces/"+slug+"/teams/"+teamID+"/members", jsonHeader, body)
	return resp, err
}

// EditWorkspaceTeamMembers changes the role of team members
func (c *Client) EditWorkspaceTeamMembers(ctx context.Context, slug, teamID string, opt EditMembersOption) (*Response, error) {
	if err := escapeValidatePathSegments(&slug, &teamID); err != nil {
		return nil, err
	}
	body, err := jsonBody(&opt)
	if err != nil {
		return nil, err
	}
	_, resp, err := c.getResponse(ctx, "PATCH", "/workspaces/"+slug+"/teams/"+teamID+"/members", jsonHeader, body)
	return resp, err
}

// RemoveWorkspaceTeamMembers removes members from a team
func (c *Client) RemoveWorkspaceTeamMembers(ctx context.Context, slug, teamID string, ids []int) (*Response, error) {
	if err := escapeValidatePathSegments(&slug, &teamID); err != nil {
		return nil, err
	}
	body, err := jsonBody(&memberIDs{MemberIDs: ids})
	if err != nil {
		return nil, err
	}
	_, resp, err := c.getResponse(ctx, "DELETE", "/workspaces/"+slug+"/teams/"+teamID+"/members", jsonHeader, body)
	return resp, err
}
