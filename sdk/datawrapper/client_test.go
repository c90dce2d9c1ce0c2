// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package datawrapper_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/chartkit/dwclient/modules/metrics"
	"github.com/chartkit/dwclient/modules/util"
	"github.com/chartkit/dwclient/sdk/datawrapper"
	"github.com/chartkit/dwclient/sdk/datawrapper/datawrappertest"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientRequiresToken(t *testing.T) {
	t.Setenv(datawrapper.TokenEnv, "")
	_, err := datawrapper.NewClient("")
	var cerr *datawrapper.ConfigurationError
	require.True(t, errors.As(err, &cerr))
	assert.True(t, errors.Is(err, util.ErrInvalidArgument))

	t.Setenv(datawrapper.TokenEnv, "from-env")
	c, err := datawrapper.NewClient("")
	require.NoError(t, err)
	assert.Equal(t, datawrapper.DefaultURL, c.URL())
}

func TestRequestHeaders(t *testing.T) {
	srv := datawrappertest.NewServer(t)
	srv.RespondJSON("GET", "/me", http.StatusOK, `{"id": 7, "email": "ana@example.com"}`)
	c := srv.NewClient(t, datawrapper.SetUserAgent("dwctl/test"))

	me, resp, err := c.GetMyAccount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, me.ID)
	assert.Equal(t, "ana@example.com", me.Email)

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "Bearer "+datawrappertest.Token, reqs[0].Header.Get("Authorization"))
	assert.Equal(t, "dwctl/test", reqs[0].Header.Get("User-Agent"))
	assert.Len(t, reqs[0].Header.Get(datawrapper.RequestIDHeader), 36)
	assert.Equal(t, reqs[0].Header.Get(datawrapper.RequestIDHeader), resp.RequestID)
}

func TestStatusMapping(t *testing.T) {
	srv := datawrappertest.NewServer(t)
	srv.HandleFunc("GET", "/charts/limited", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Retry-After", "12")
		datawrappertest.Error(w, http.StatusTooManyRequests, "slow down")
	})
	srv.RespondJSON("GET", "/charts/bad", http.StatusBadRequest, `{"message": "metadata.visualize is invalid"}`)
	srv.Respond("GET", "/charts/broken", http.StatusBadGateway, "text/html", "<h1>bad gateway</h1>")
	c := srv.NewClient(t)
	ctx := context.Background()

	_, _, err := c.GetChart(ctx, "limited")
	var rl *datawrapper.RateLimitError
	require.True(t, errors.As(err, &rl))
	assert.Equal(t, 12*time.Second, rl.RetryAfter)
	assert.Contains(t, string(rl.Response.Body), "slow down")

	_, _, err = c.GetChart(ctx, "bad")
	var inv *datawrapper.InvalidRequestError
	require.True(t, errors.As(err, &inv))
	assert.Equal(t, "metadata.visualize is invalid", inv.Message)
	assert.Contains(t, err.Error(), "metadata.visualize is invalid")
	assert.True(t, errors.Is(err, util.ErrInvalidArgument))

	_, _, err = c.GetChart(ctx, "missing")
	assert.True(t, datawrapper.IsInvalidRequestError(err))
	assert.True(t, errors.Is(err, util.ErrNotExist))
	assert.Equal(t, http.StatusNotFound, datawrapper.StatusCode(err))

	_, _, err = c.GetChart(ctx, "broken")
	assert.True(t, datawrapper.IsFailedRequestError(err))
	assert.Equal(t, http.StatusBadGateway, datawrapper.StatusCode(err))

	// one request per call, nothing is retried
	assert.Len(t, srv.Requests(), 4)
}

func TestNetworkError(t *testing.T) {
	srv := datawrappertest.NewServer(t)
	c := srv.NewClient(t)
	srv.Close()

	_, err := c.DeleteChart(context.Background(), "abc12")
	assert.True(t, datawrapper.IsFailedRequestError(err))
	assert.Equal(t, 0, datawrapper.StatusCode(err))
}

func TestMetrics(t *testing.T) {
	srv := datawrappertest.NewServer(t)
	srv.RespondJSON("GET", "/charts/abc12", http.StatusOK, `{"id":"abc12","type":"d3-bars"}`)
	m := metrics.NewCollector()
	c := srv.NewClient(t, datawrapper.SetMetrics(m))

	_, _, err := c.GetChart(context.Background(), "abc12")
	require.NoError(t, err)
	_, _, _ = c.GetChart(context.Background(), "zzz99")

	assert.InDelta(t, 1, testutil.ToFloat64(m.Requests().WithLabelValues("GET", "/charts/:id", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Requests().WithLabelValues("GET", "/charts/:id", "404")), 0)
}

func TestChartEndpoints(t *testing.T) {
	srv := datawrappertest.NewServer(t)
	srv.RespondJSON("POST", "/charts", http.StatusCreated, `{"id":"abc12","type":"column-chart","title":"Sales"}`)
	srv.Respond("PUT", "/charts/abc12/data", http.StatusNoContent, "", "")
	srv.RespondJSON("POST", "/charts/abc12/publish", http.StatusOK,
		`{"data":{"id":"abc12","publicUrl":"https://datawrapper.dwcdn.net/abc12/1/"},"version":1}`)
	srv.Respond("GET", "/charts/abc12/export/pdf", http.StatusOK, "application/pdf", "%PDF-1.4")
	srv.RespondJSON("GET", "/charts/abc12", http.StatusOK, `{"id":"abc12","metadata":{"publish":{"embed-codes":{
		"embed-method-iframe":"<iframe src=x></iframe>"}}}}`)
	c := srv.NewClient(t)
	ctx := context.Background()

	chart, _, err := c.CreateChart(ctx, datawrapper.CreateChartOption{Type: "column-chart", Title: "Sales"})
	require.NoError(t, err)
	assert.Equal(t, "abc12", chart.ID)

	_, err = c.UploadChartData(ctx, chart.ID, strings.NewReader("a,b\n1,2\n"))
	require.NoError(t, err)
	upload := srv.RequestsTo("PUT", "/charts/abc12/data")
	require.Len(t, upload, 1)
	assert.Equal(t, "text/csv", upload[0].Header.Get("Content-Type"))
	assert.Equal(t, "a,b\n1,2\n", string(upload[0].Body))

	pub, _, err := c.PublishChart(ctx, chart.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://datawrapper.dwcdn.net/abc12/1/", pub.URL)
	assert.Equal(t, 1, pub.Version)

	opt := datawrapper.DefaultExportOptions()
	opt.Format = datawrapper.ExportPDF
	opt.Plain = true
	pdf, _, err := c.ExportChart(ctx, chart.ID, opt)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(pdf))
	export := srv.RequestsTo("GET", "/charts/abc12/export/pdf")
	require.Len(t, export, 1)
	assert.Equal(t, "true", export[0].Query.Get("plain"))
	assert.Equal(t, "400", export[0].Query.Get("width"))
	assert.Equal(t, "20", export[0].Query.Get("borderWidth"))

	code, _, err := c.GetChartIframeCode(ctx, chart.ID, false)
	require.NoError(t, err)
	assert.Equal(t, "<iframe src=x></iframe>", code)
	_, _, err = c.GetChartIframeCode(ctx, chart.ID, true)
	assert.True(t, errors.Is(err, util.ErrNotExist))
}

func TestExportOptionsValidation(t *testing.T) {
	srv := datawrappertest.NewServer(t)
	c := srv.NewClient(t)

	opt := datawrapper.DefaultExportOptions()
	opt.Format = "gif"
	_, _, err := c.ExportChart(context.Background(), "abc12", opt)
	var cerr *datawrapper.ConfigurationError
	require.True(t, errors.As(err, &cerr))
	assert.Contains(t, err.Error(), "Format")
	assert.Empty(t, srv.Requests())
}

func TestEmptyPathSegment(t *testing.T) {
	srv := datawrappertest.NewServer(t)
	c := srv.NewClient(t)

	_, _, err := c.GetChart(context.Background(), "")
	assert.Error(t, err)
	_, err = c.DeleteWorkspaceTeam(context.Background(), "newsroom", "", "")
	assert.Error(t, err)
	assert.Empty(t, srv.Requests())
}

func TestListQueries(t *testing.T) {
	srv := datawrappertest.NewServer(t)
	srv.RespondJSON("GET", "/charts", http.StatusOK, `{"list":[{"id":"a1"},{"id":"b2"}],"total":2}`)
	srv.RespondJSON("GET", "/workspaces/newsroom/teams/t1/members", http.StatusOK, `{"list":[{"id":3,"role":"member"}],"total":1}`)
	c := srv.NewClient(t)
	ctx := context.Background()

	published := true
	list, _, err := c.ListCharts(ctx, datawrapper.ListChartsOptions{
		ListOptions: datawrapper.ListOptions{Limit: 10},
		Published:   &published,
		Search:      "budget",
		FolderID:    42,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "b2", list.Items[1].ID)

	q := srv.RequestsTo("GET", "/charts")[0].Query
	assert.Equal(t, "10", q.Get("limit"))
	assert.Equal(t, "true", q.Get("published"))
	assert.Equal(t, "budget", q.Get("search"))
	assert.Equal(t, "42", q.Get("folderId"))
	assert.False(t, q.Has("offset"))

	members, _, err := c.ListWorkspaceTeamMembers(ctx, "newsroom", "t1", datawrapper.ListMembersOptions{Role: "member"})
	require.NoError(t, err)
	assert.Equal(t, "member", members.Items[0].Role)
}

func TestRemoveMembersSendsBody(t *testing.T) {
	srv := datawrappertest.NewServer(t)
	srv.Respond("DELETE", "/workspaces/newsroom/members", http.StatusNoContent, "", "")
	c := srv.NewClient(t)

	_, err := c.RemoveWorkspaceMembers(context.Background(), "newsroom", []int{4, 5})
	require.NoError(t, err)

	var body struct {
		MemberIDs []int `json:"memberIds"`
	}
	require.NoError(t, srv.Requests()[0].JSON(&body))
	assert.Equal(t, []int{4, 5}, body.MemberIDs)
}

func TestRateLimiterHonoursContext(t *testing.T) {
	srv := datawrappertest.NewServer(t)
	srv.RespondJSON("GET", "/me", http.StatusOK, `{"id":1}`)
	c := srv.NewClient(t, datawrapper.SetRateLimit(0.001, 1))

	_, _, err := c.GetMyAccount(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, _, err = c.GetMyAccount(ctx)
	assert.True(t, datawrapper.IsFailedRequestError(err))
	assert.Len(t, srv.Requests(), 1)
}
