// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	chart_model "github.com/chartkit/dwclient/models/chart"
	"github.com/chartkit/dwclient/modules/json"
	"github.com/chartkit/dwclient/modules/util"
	"github.com/chartkit/dwclient/modules/wire"
	"github.com/chartkit/dwclient/sdk/datawrapper"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
)

var (
	// CmdChart represents the available chart sub-commands
	CmdChart = &cli.Command{
		Name:  "chart",
		Usage: "Manage charts",
		Subcommands: []*cli.Command{
			subcmdChartList,
			subcmdChartCreate,
			subcmdChartUpdate,
			subcmdChartGet,
			subcmdChartPublish,
			subcmdChartUnpublish,
			subcmdChartDelete,
			subcmdChartDuplicate,
			subcmdChartFork,
			subcmdChartMove,
			subcmdChartRefresh,
			subcmdChartPatch,
			subcmdChartExport,
		},
	}

	definitionFlag = &cli.StringFlag{
		Name:     "file",
		Aliases:  []string{"f"},
		Usage:    "Chart definition file (YAML)",
		Required: true,
	}

	subcmdChartList = &cli.Command{
		Name:   "list",
		Usage:  "List charts",
		Action: withEnvironment(runChartList),
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "search", Usage: "Search term"},
			&cli.IntFlag{Name: "folder", Usage: "Only charts of this folder"},
			&cli.BoolFlag{Name: "published", Usage: "Only published charts"},
			&cli.IntFlag{Name: "limit", Value: 50, Usage: "Maximum number of charts"},
		},
	}

	subcmdChartCreate = &cli.Command{
		Name:   "create",
		Usage:  "Create a chart from a definition file",
		Action: withEnvironment(runChartCreate),
		Flags: []cli.Flag{
			definitionFlag,
			&cli.BoolFlag{Name: "publish", Usage: "Publish the chart after creating it"},
		},
	}

	subcmdChartUpdate = &cli.Command{
		Name:      "update",
		Usage:     "Replace the configuration and data of a chart",
		ArgsUsage: "<id>",
		Action:    withEnvironment(runChartUpdate),
		Flags:     []cli.Flag{definitionFlag},
	}

	subcmdChartGet = &cli.Command{
		Name:      "get",
		Usage:     "Show a chart",
		ArgsUsage: "<id>",
		Action:    withEnvironment(runChartGet),
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "Print the chart document"},
		},
	}

	subcmdChartPublish = &cli.Command{
		Name:      "publish",
		Usage:     "Publish a chart",
		ArgsUsage: "<id>",
		Action:    withEnvironment(runChartPublish),
	}

	subcmdChartUnpublish = &cli.Command{
		Name:      "unpublish",
		Usage:     "Take a published chart offline",
		ArgsUsage: "<id>",
		Action:    withEnvironment(runChartUnpublish),
	}

	subcmdChartDelete = &cli.Command{
		Name:      "delete",
		Usage:     "Delete a chart",
		ArgsUsage: "<id>",
		Action:    withEnvironment(runChartDelete),
	}

	subcmdChartDuplicate = &cli.Command{
		Name:      "duplicate",
		Usage:     "Copy a chart",
		ArgsUsage: "<id>",
		Action:    withEnvironment(runChartDuplicate),
	}

	subcmdChartFork = &cli.Command{
		Name:      "fork",
		Usage:     "Fork a chart shared on the River",
		ArgsUsage: "<id>",
		Action:    withEnvironment(runChartFork),
	}

	subcmdChartMove = &cli.Command{
		Name:      "move",
		Usage:     "Move a chart into a folder",
		ArgsUsage: "<id>",
		Action:    withEnvironment(runChartMove),
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "folder", Usage: "Target folder id", Required: true},
		},
	}

	subcmdChartRefresh = &cli.Command{
		Name:      "refresh",
		Usage:     "Reload the external data of a chart",
		ArgsUsage: "<id>",
		Action:    withEnvironment(runChartRefresh),
	}

	subcmdChartPatch = &cli.Command{
		Name:      "patch",
		Usage:     "Change raw settings of a chart without validation",
		ArgsUsage: "<id>",
		Action:    withEnvironment(runChartPatch),
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "set", Usage: "path=value, e.g. metadata.visualize.base-color=#c71e1d"},
			&cli.StringSliceFlag{Name: "unset", Usage: "path to remove"},
		},
	}

	subcmdChartExport = &cli.Command{
		Name:      "export",
		Usage:     "Export charts as png, pdf or svg",
		ArgsUsage: "<id>...",
		Action:    withEnvironment(runChartExport),
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Value: string(datawrapper.ExportPNG), Usage: "png, pdf or svg"},
			&cli.StringFlag{Name: "out", Usage: "Local directory, overrides the storage settings"},
			&cli.StringFlag{Name: "prefix", Usage: "Path prefix inside the storage"},
			&cli.IntFlag{Name: "concurrency", Value: 4, Usage: "Parallel exports"},
			&cli.IntFlag{Name: "width", Usage: "Width in the export unit"},
			&cli.IntFlag{Name: "zoom", Value: 2, Usage: "Zoom factor of png exports"},
			&cli.BoolFlag{Name: "plain", Usage: "Export the chart without header and footer"},
			&cli.BoolFlag{Name: "transparent", Usage: "Transparent background"},
			&cli.BoolFlag{Name: "dark", Usage: "Dark mode"},
		},
	}
)

func chartID(c *cli.Context) (string, error) {
	if c.NArg() != 1 {
		return "", fmt.Errorf("expected one chart id, got %d arguments", c.NArg())
	}
	return c.Args().First(), nil
}

// remoteChart fetches the chart named by the only argument
func remoteChart(c *cli.Context, env *environment) (chart_model.Chart, error) {
	id, err := chartID(c)
	if err != nil {
		return nil, err
	}
	return env.charts.Get(c.Context, id)
}

func runChartList(c *cli.Context, env *environment) error {
	opt := datawrapper.ListChartsOptions{
		ListOptions: datawrapper.ListOptions{Limit: c.Int("limit")},
		Search:      c.String("search"),
		FolderID:    c.Int("folder"),
	}
	if c.Bool("published") {
		published := true
		opt.Published = &published
	}
	list, _, err := env.client.ListCharts(c.Context, opt)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(c.App.Writer, 0, 8, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tTYPE\tTITLE\tMODIFIED")
	for _, info := range list.Items {
		modified := ""
		if info.LastModifiedAt != nil {
			modified = humanize.Time(*info.LastModifiedAt)
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", info.ID, info.Type, util.EllipsisString(info.Title, 48), modified)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(c.App.Writer, "%d of %d charts\n", len(list.Items), list.Total)
	return nil
}

func runChartCreate(c *cli.Context, env *environment) error {
	def, err := ReadDefinition(c.String("file"))
	if err != nil {
		return err
	}
	chart, err := def.Chart()
	if err != nil {
		return err
	}
	if err := env.charts.Create(c.Context, chart); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(c.App.Writer, "Created %s chart %s\n", chart.Type(), chart.ID())

	if def.FolderID > 0 {
		if err := env.charts.Move(c.Context, chart, def.FolderID); err != nil {
			return err
		}
	}
	if c.Bool("publish") {
		result, err := env.charts.Publish(c.Context, chart)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(c.App.Writer, "Published at %s\n", result.URL)
	}
	return nil
}

func runChartUpdate(c *cli.Context, env *environment) error {
	id, err := chartID(c)
	if err != nil {
		return err
	}
	def, err := ReadDefinition(c.String("file"))
	if err != nil {
		return err
	}
	chart, err := def.Chart()
	if err != nil {
		return err
	}
	chart.Common().MarkSaved(id)
	if err := env.charts.Update(c.Context, chart); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(c.App.Writer, "Updated chart %s\n", id)
	return nil
}

func runChartGet(c *cli.Context, env *environment) error {
	if c.Bool("json") {
		id, err := chartID(c)
		if err != nil {
			return err
		}
		raw, _, err := env.client.GetChartRaw(c.Context, id)
		if err != nil {
			return err
		}
		var out bytes.Buffer
		if err := json.Indent(&out, raw, "", "  "); err != nil {
			return err
		}
		out.WriteByte('\n')
		_, err = out.WriteTo(c.App.Writer)
		return err
	}

	chart, err := remoteChart(c, env)
	if err != nil {
		return err
	}
	b := chart.Common()
	w := tabwriter.NewWriter(c.App.Writer, 0, 8, 1, ' ', 0)
	_, _ = fmt.Fprintf(w, "ID:\t%s\n", b.ID())
	_, _ = fmt.Fprintf(w, "Type:\t%s\n", chart.Type())
	_, _ = fmt.Fprintf(w, "Title:\t%s\n", b.Title.Value())
	_, _ = fmt.Fprintf(w, "State:\t%s\n", chart.State())
	if b.Info.PublicURL != "" {
		_, _ = fmt.Fprintf(w, "Public URL:\t%s\n", b.Info.PublicURL)
	}
	if b.Data != nil {
		_, _ = fmt.Fprintf(w, "Data:\t%s rows, columns %s\n", humanize.Comma(int64(b.Data.Rows())), strings.Join(b.Data.Names(), ", "))
	}
	if !b.Info.LastModifiedAt.IsZero() {
		_, _ = fmt.Fprintf(w, "Modified:\t%s\n", humanize.Time(b.Info.LastModifiedAt))
	}
	if !b.Info.PublishedAt.IsZero() {
		_, _ = fmt.Fprintf(w, "Published:\t%s\n", humanize.Time(b.Info.PublishedAt))
	}
	return w.Flush()
}

func runChartPublish(c *cli.Context, env *environment) error {
	chart, err := remoteChart(c, env)
	if err != nil {
		return err
	}
	result, err := env.charts.Publish(c.Context, chart)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(c.App.Writer, "Published chart %s version %d at %s\n", chart.ID(), result.Version, result.URL)
	return nil
}

func runChartUnpublish(c *cli.Context, env *environment) error {
	chart, err := remoteChart(c, env)
	if err != nil {
		return err
	}
	if err := env.charts.Unpublish(c.Context, chart); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(c.App.Writer, "Unpublished chart %s\n", chart.ID())
	return nil
}

func runChartDelete(c *cli.Context, env *environment) error {
	chart, err := remoteChart(c, env)
	if err != nil {
		return err
	}
	id := chart.ID()
	if err := env.charts.Delete(c.Context, chart); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(c.App.Writer, "Deleted chart %s\n", id)
	return nil
}

func runChartDuplicate(c *cli.Context, env *environment) error {
	chart, err := remoteChart(c, env)
	if err != nil {
		return err
	}
	dup, err := env.charts.Duplicate(c.Context, chart)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(c.App.Writer, "Copied chart %s to %s\n", chart.ID(), dup.ID())
	return nil
}

func runChartFork(c *cli.Context, env *environment) error {
	chart, err := remoteChart(c, env)
	if err != nil {
		return err
	}
	fork, err := env.charts.Fork(c.Context, chart)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(c.App.Writer, "Forked chart %s to %s\n", chart.ID(), fork.ID())
	return nil
}

func runChartMove(c *cli.Context, env *environment) error {
	chart, err := remoteChart(c, env)
	if err != nil {
		return err
	}
	if err := env.charts.Move(c.Context, chart, c.Int("folder")); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(c.App.Writer, "Moved chart %s to folder %d\n", chart.ID(), c.Int("folder"))
	return nil
}

func runChartRefresh(c *cli.Context, env *environment) error {
	chart, err := remoteChart(c, env)
	if err != nil {
		return err
	}
	if err := env.charts.RefreshData(c.Context, chart); err != nil {
		return err
	}
	rows := 0
	if data := chart.Common().Data; data != nil {
		rows = data.Rows()
	}
	_, _ = fmt.Fprintf(c.App.Writer, "Refreshed chart %s, %s rows\n", chart.ID(), humanize.Comma(int64(rows)))
	return nil
}

func runChartPatch(c *cli.Context, env *environment) error {
	id, err := chartID(c)
	if err != nil {
		return err
	}
	var edits []wire.Edit
	for _, s := range c.StringSlice("set") {
		e, err := wire.ParseEdit(s)
		if err != nil {
			return err
		}
		edits = append(edits, e)
	}
	for _, p := range c.StringSlice("unset") {
		edits = append(edits, wire.Edit{Path: p, Delete: true})
	}
	if _, err := env.charts.Patch(c.Context, id, edits...); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(c.App.Writer, "Patched chart %s (%d edits)\n", id, len(edits))
	return nil
}

func runChartExport(c *cli.Context, env *environment) error {
	ids := c.Args().Slice()
	if len(ids) == 0 {
		return fmt.Errorf("expected at least one chart id")
	}
	opt := datawrapper.DefaultExportOptions()
	opt.Format = datawrapper.ExportFormat(strings.ToLower(c.String("format")))
	if c.IsSet("width") {
		opt.Width = c.Int("width")
	}
	opt.Zoom = c.Int("zoom")
	opt.Plain = c.Bool("plain")
	opt.Transparent = c.Bool("transparent")
	opt.Dark = c.Bool("dark")

	sink, err := env.exportSink(c.Context, c.String("out"))
	if err != nil {
		return err
	}
	results, err := env.charts.ExportAll(c.Context, ids, opt, sink, c.String("prefix"), c.Int("concurrency"))
	for _, r := range results {
		if r == nil {
			continue
		}
		_, _ = fmt.Fprintf(c.App.Writer, "%s -> %s (%s, %s)\n", r.ChartID, r.Path, r.ContentType, humanize.IBytes(uint64(r.Size)))
	}
	return err
}
