// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package chart

import (
	"context"
	"errors"
	"net/http"
	"testing"

	chart_model "github.com/chartkit/dwclient/models/chart"
	"github.com/chartkit/dwclient/modules/dataset"
	"github.com/chartkit/dwclient/modules/log"
	"github.com/chartkit/dwclient/modules/optional"
	"github.com/chartkit/dwclient/modules/structs"
	"github.com/chartkit/dwclient/modules/testlogger"
	"github.com/chartkit/dwclient/modules/util"
	"github.com/chartkit/dwclient/modules/wire"
	"github.com/chartkit/dwclient/sdk/datawrapper"
	"github.com/chartkit/dwclient/sdk/datawrapper/datawrappertest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func newTestService(t *testing.T) (*Service, *datawrappertest.Server) {
	srv := datawrappertest.NewServer(t)
	return NewService(srv.NewClient(t)), srv
}

func salesChart() *chart_model.ColumnChart {
	c := &chart_model.ColumnChart{}
	c.Title = optional.Some("Quarterly sales")
	c.GridFormat.Y = optional.Some(structs.Format("0.0"))
	c.Data = dataset.MustNew(
		dataset.Strings("quarter", "Q1", "Q2", "Q3"),
		dataset.Numbers("sales", 10, 12.5, 9),
	)
	return c
}

func TestCreateColumnChart(t *testing.T) {
	s, srv := newTestService(t)
	srv.RespondJSON("POST", "/charts", http.StatusCreated, `{"id":"abc12","type":"column-chart","authorId":3}`)
	srv.Respond("PUT", "/charts/abc12/data", http.StatusNoContent, "", "")

	c := salesChart()
	require.NoError(t, s.Create(context.Background(), c))
	assert.Equal(t, "abc12", c.ID())
	assert.Equal(t, chart_model.StateSaved, c.State())

	created := srv.RequestsTo("POST", "/charts")
	require.Len(t, created, 1)
	body := created[0].Body
	assert.Equal(t, "column-chart", gjson.GetBytes(body, "type").String())
	assert.Equal(t, "Quarterly sales", gjson.GetBytes(body, "title").String())
	assert.Equal(t, "0.0", gjson.GetBytes(body, "metadata.visualize.y-grid-format").String())

	upload := srv.RequestsTo("PUT", "/charts/abc12/data")
	require.Len(t, upload, 1)
	assert.Equal(t, "quarter,sales\nQ1,10\nQ2,12.5\nQ3,9\n", string(upload[0].Body))
}

func TestCreateWithoutDataSkipsUpload(t *testing.T) {
	s, srv := newTestService(t)
	srv.RespondJSON("POST", "/charts", http.StatusCreated, `{"id":"abc12"}`)

	c := &chart_model.BarChart{}
	require.NoError(t, s.Create(context.Background(), c))
	assert.Len(t, srv.Requests(), 1)
}

func TestRefusedOperationsSendNothing(t *testing.T) {
	s, srv := newTestService(t)
	ctx := context.Background()

	unsaved := salesChart()
	_, err := s.Publish(ctx, unsaved)
	assert.True(t, chart_model.IsStateError(err))
	assert.ErrorIs(t, err, util.ErrInvalidState)
	assert.True(t, chart_model.IsStateError(s.Update(ctx, unsaved)))
	assert.True(t, chart_model.IsStateError(s.Delete(ctx, unsaved)))
	assert.True(t, chart_model.IsStateError(s.Unpublish(ctx, unsaved)))
	assert.True(t, chart_model.IsStateError(s.Move(ctx, unsaved, 3)))
	assert.True(t, chart_model.IsStateError(s.RefreshData(ctx, unsaved)))
	_, err = s.Duplicate(ctx, unsaved)
	assert.True(t, chart_model.IsStateError(err))
	_, err = s.Export(ctx, unsaved, datawrapper.DefaultExportOptions(), nil, "")
	assert.True(t, chart_model.IsStateError(err))

	deleted := salesChart()
	deleted.MarkSaved("abc12")
	deleted.MarkDeleted()
	err = s.Create(ctx, deleted)
	assert.True(t, chart_model.IsStateError(err))
	assert.Contains(t, err.Error(), "Reset")

	invalid := salesChart()
	invalid.BarPadding = optional.Some(250.0)
	err = s.Create(ctx, invalid)
	assert.True(t, chart_model.IsValidationError(err))

	assert.Empty(t, srv.Requests())
}

func TestCreateUploadFailureKeepsID(t *testing.T) {
	logs := testlogger.Install(t, log.WARN)
	s, srv := newTestService(t)
	srv.RespondJSON("POST", "/charts", http.StatusCreated, `{"id":"abc12"}`)
	srv.HandleFunc("PUT", "/charts/abc12/data", func(w http.ResponseWriter, _ *http.Request) {
		datawrappertest.Error(w, http.StatusInternalServerError, "storage unavailable")
	})

	c := salesChart()
	err := s.Create(context.Background(), c)
	require.Error(t, err)
	assert.Equal(t, "upload-data", FailedStep(err))
	assert.True(t, logs.Contains("Chart abc12 was saved but uploading its data failed"))
	assert.True(t, datawrapper.IsFailedRequestError(err))
	assert.Equal(t, "abc12", c.ID())
	assert.Equal(t, chart_model.StateSaved, c.State())
}

func TestCreateFailure(t *testing.T) {
	s, srv := newTestService(t)
	srv.RespondJSON("POST", "/charts", http.StatusBadRequest, `{"message":"invalid type"}`)

	c := salesChart()
	err := s.Create(context.Background(), c)
	assert.Equal(t, "create-chart", FailedStep(err))
	assert.True(t, datawrapper.IsInvalidRequestError(err))
	assert.Empty(t, c.ID())
	assert.Equal(t, chart_model.StateUnsaved, c.State())
}

func TestUpdate(t *testing.T) {
	s, srv := newTestService(t)
	srv.RespondJSON("PATCH", "/charts/abc12", http.StatusOK, `{"id":"abc12"}`)
	srv.Respond("PUT", "/charts/abc12/data", http.StatusNoContent, "", "")

	c := salesChart()
	c.MarkSaved("abc12")
	c.Title = optional.Some("Renamed")
	require.NoError(t, s.Update(context.Background(), c))

	patch := srv.RequestsTo("PATCH", "/charts/abc12")
	require.Len(t, patch, 1)
	assert.Equal(t, "Renamed", gjson.GetBytes(patch[0].Body, "title").String())
	assert.Len(t, srv.RequestsTo("PUT", "/charts/abc12/data"), 1)
}

const fetchedColumnChart = `{
	"id": "abc12",
	"type": "column-chart",
	"title": "Quarterly sales",
	"publicUrl": "https://datawrapper.dwcdn.net/abc12/2/",
	"publicVersion": 2,
	"authorId": 3,
	"metadata": {"visualize": {"y-grid-format": "0.0", "bar-padding": 30}}
}`

func TestGet(t *testing.T) {
	s, srv := newTestService(t)
	srv.RespondJSON("GET", "/charts/abc12", http.StatusOK, fetchedColumnChart)
	srv.Respond("GET", "/charts/abc12/data", http.StatusOK, "text/csv", "quarter,sales\nQ1,10\nQ2,12.5\n")

	c, err := s.Get(context.Background(), "abc12")
	require.NoError(t, err)
	col, ok := c.(*chart_model.ColumnChart)
	require.True(t, ok)
	assert.Equal(t, "abc12", col.ID())
	assert.Equal(t, chart_model.StatePublished, col.State())
	assert.Equal(t, structs.Format("0.0"), col.GridFormat.Y.Value())
	assert.InDelta(t, 30, col.BarPadding.Value(), 0)
	require.NotNil(t, col.Data)
	assert.Equal(t, 2, col.Data.Rows())
}

func TestGetWithoutData(t *testing.T) {
	s, srv := newTestService(t)
	srv.RespondJSON("GET", "/charts/abc12", http.StatusOK, `{"id":"abc12","type":"d3-bars"}`)
	srv.Respond("GET", "/charts/abc12/data", http.StatusOK, "text/csv", "")

	c, err := s.Get(context.Background(), "abc12")
	require.NoError(t, err)
	assert.Nil(t, c.Common().Data)
	assert.Equal(t, chart_model.StateSaved, c.State())
}

func TestGetUnknownType(t *testing.T) {
	s, srv := newTestService(t)
	srv.RespondJSON("GET", "/charts/abc12", http.StatusOK, `{"id":"abc12","type":"locator-map"}`)

	_, err := s.Get(context.Background(), "abc12")
	assert.Equal(t, "decode-chart", FailedStep(err))
	assert.True(t, chart_model.IsErrUnknownType(err))
}

func TestLoad(t *testing.T) {
	s, srv := newTestService(t)
	srv.RespondJSON("GET", "/charts/abc12", http.StatusOK, fetchedColumnChart)
	srv.Respond("GET", "/charts/abc12/data", http.StatusOK, "text/csv", "quarter,sales\nQ1,10\n")
	ctx := context.Background()

	col := &chart_model.ColumnChart{}
	require.NoError(t, s.Load(ctx, "abc12", col))
	assert.Equal(t, "Quarterly sales", col.Title.Value())
	assert.Equal(t, 1, col.Data.Rows())

	err := s.Load(ctx, "abc12", &chart_model.BarChart{})
	var mismatch chart_model.ErrTypeMismatch
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, chart_model.TypeColumn, mismatch.Actual)
	assert.ErrorIs(t, err, util.ErrInvalidArgument)
}

func TestUpdateKeepsUnknownKeys(t *testing.T) {
	s, srv := newTestService(t)
	srv.RespondJSON("GET", "/charts/abc12", http.StatusOK, `{
		"id": "abc12",
		"type": "column-chart",
		"title": "Quarterly sales",
		"metadata": {
			"visualize": {
				"x-grid": false,
				"y-grid": "on",
				"grid-lines": true,
				"custom-range": [0, 50],
				"yAxisLabels": {"enabled": true, "alignment": "left", "rotate": 45},
				"future-option": {"mode": "auto"}
			},
			"describe": {"intro": "Sales", "source-name-extra": "x"}
		},
		"externalData": "https://example.com/sales.csv"
	}`)
	srv.Respond("GET", "/charts/abc12/data", http.StatusOK, "text/csv", "quarter,sales\nQ1,10\nQ2,12.5\n")
	srv.RespondJSON("PATCH", "/charts/abc12", http.StatusOK, `{"id":"abc12"}`)
	srv.Respond("PUT", "/charts/abc12/data", http.StatusNoContent, "", "")
	ctx := context.Background()

	c, err := s.Get(ctx, "abc12")
	require.NoError(t, err)
	c.Common().Title = optional.Some("Renamed")
	require.NoError(t, s.Update(ctx, c))

	patch := srv.RequestsTo("PATCH", "/charts/abc12")
	require.Len(t, patch, 1)
	body := patch[0].Body
	assert.Equal(t, "Renamed", gjson.GetBytes(body, "title").String())
	assert.Equal(t, "https://example.com/sales.csv", gjson.GetBytes(body, "externalData").String())
	assert.Equal(t, "auto", gjson.GetBytes(body, "metadata.visualize.future-option.mode").String())
	assert.EqualValues(t, 45, gjson.GetBytes(body, "metadata.visualize.yAxisLabels.rotate").Int())
	assert.Equal(t, "left", gjson.GetBytes(body, "metadata.visualize.yAxisLabels.alignment").String())
	assert.True(t, gjson.GetBytes(body, "metadata.visualize.yAxisLabels.enabled").Bool())
	assert.Equal(t, "x", gjson.GetBytes(body, "metadata.describe.source-name-extra").String())
	assert.Equal(t, gjson.False, gjson.GetBytes(body, "metadata.visualize.x-grid").Type)
	assert.Equal(t, gjson.True, gjson.GetBytes(body, "metadata.visualize.grid-lines").Type)
	assert.JSONEq(t, `[0, 50]`, gjson.GetBytes(body, "metadata.visualize.custom-range").Raw)
	assert.False(t, gjson.GetBytes(body, "id").Exists())
}

func TestLifecycle(t *testing.T) {
	s, srv := newTestService(t)
	srv.RespondJSON("POST", "/charts/abc12/publish", http.StatusOK,
		`{"data":{"id":"abc12","publicUrl":"https://datawrapper.dwcdn.net/abc12/1/"},"version":1}`)
	srv.Respond("POST", "/charts/abc12/unpublish", http.StatusNoContent, "", "")
	srv.RespondJSON("PATCH", "/charts/abc12", http.StatusOK, `{"id":"abc12","folderId":7}`)
	srv.Respond("DELETE", "/charts/abc12", http.StatusNoContent, "", "")
	ctx := context.Background()

	c := salesChart()
	c.MarkSaved("abc12")

	result, err := s.Publish(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Version)
	assert.Equal(t, chart_model.StatePublished, c.State())
	assert.Equal(t, "https://datawrapper.dwcdn.net/abc12/1/", c.Info.PublicURL)

	require.NoError(t, s.Unpublish(ctx, c))
	assert.Equal(t, chart_model.StateSaved, c.State())

	require.NoError(t, s.Move(ctx, c, 7))
	assert.Equal(t, 7, c.Info.FolderID)
	assert.EqualValues(t, 7, gjson.GetBytes(srv.RequestsTo("PATCH", "/charts/abc12")[0].Body, "folderId").Int())

	require.NoError(t, s.Delete(ctx, c))
	assert.Equal(t, chart_model.StateDeleted, c.State())
	assert.Empty(t, c.ID())

	c.Reset()
	assert.NoError(t, c.CanCreate())
}

func TestDuplicateAndFork(t *testing.T) {
	s, srv := newTestService(t)
	srv.RespondJSON("POST", "/charts/abc12/copy", http.StatusCreated, `{"id":"cpy01"}`)
	srv.RespondJSON("POST", "/charts/abc12/fork", http.StatusCreated, `{"id":"frk01"}`)
	for _, id := range []string{"cpy01", "frk01"} {
		srv.RespondJSON("GET", "/charts/"+id, http.StatusOK, `{"id":"`+id+`","type":"d3-lines","title":"Copy"}`)
		srv.Respond("GET", "/charts/"+id+"/data", http.StatusOK, "text/csv", "x,y\n1,2\n")
	}
	ctx := context.Background()

	orig := &chart_model.LineChart{}
	orig.MarkSaved("abc12")

	dup, err := s.Duplicate(ctx, orig)
	require.NoError(t, err)
	assert.Equal(t, "cpy01", dup.ID())
	assert.Equal(t, chart_model.TypeLine, dup.Type())

	fork, err := s.Fork(ctx, orig)
	require.NoError(t, err)
	assert.Equal(t, "frk01", fork.ID())
	assert.Equal(t, 1, fork.Common().Data.Rows())
}

func TestRefreshData(t *testing.T) {
	s, srv := newTestService(t)
	srv.RespondJSON("POST", "/charts/abc12/data/refresh", http.StatusOK, `{"id":"abc12"}`)
	srv.Respond("GET", "/charts/abc12/data", http.StatusOK, "text/csv", "a,b\n1,2\n3,4\n")

	c := &chart_model.AreaChart{}
	c.MarkSaved("abc12")
	require.NoError(t, s.RefreshData(context.Background(), c))
	assert.Equal(t, 2, c.Data.Rows())
}

func TestPatch(t *testing.T) {
	s, srv := newTestService(t)
	srv.RespondJSON("GET", "/charts/abc12", http.StatusOK, `{
		"id": "abc12", "type": "d3-bars", "title": "Old", "authorId": 3,
		"publicUrl": "https://datawrapper.dwcdn.net/abc12/1/",
		"metadata": {"visualize": {"thick": false}}
	}`)
	srv.RespondJSON("PATCH", "/charts/abc12", http.StatusOK, `{"id":"abc12","title":"New"}`)

	edits := make([]wire.Edit, 0, 2)
	for _, arg := range []string{"title=New", "metadata.visualize.base-color=#ff0000"} {
		e, err := wire.ParseEdit(arg)
		require.NoError(t, err)
		edits = append(edits, e)
	}
	edits = append(edits, wire.Edit{Path: "metadata.visualize.thick", Delete: true})

	updated, err := s.Patch(context.Background(), "abc12", edits...)
	require.NoError(t, err)
	assert.Equal(t, "New", gjson.GetBytes(updated, "title").String())

	sent := srv.RequestsTo("PATCH", "/charts/abc12")
	require.Len(t, sent, 1)
	assert.JSONEq(t, `{
		"title": "New",
		"type": "d3-bars",
		"metadata": {"visualize": {"base-color": "#ff0000"}}
	}`, string(sent[0].Body))

	_, err = s.Patch(context.Background(), "abc12")
	assert.ErrorIs(t, err, util.ErrInvalidArgument)
}
