// Copyright 2026 The dwclient Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/chartkit/dwclient/sdk/datawrapper"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/urfave/cli/v2"
)

var (
	// CmdFolder represents the folder sub-commands
	CmdFolder = &cli.Command{
		Name:  "folder",
		Usage: "Manage folders",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List folders as a tree",
				Action: withEnvironment(runFolderList),
			},
			{
				Name:      "create",
				Usage:     "Create a folder",
				ArgsUsage: "<name>",
				Action:    withEnvironment(runFolderCreate),
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "parent", Usage: "Parent folder id"},
				},
			},
		},
	}

	// CmdTheme represents the theme sub-commands
	CmdTheme = &cli.Command{
		Name:  "theme",
		Usage: "Inspect themes",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List the available themes",
				Action: withEnvironment(runThemeList),
			},
		},
	}

	// CmdMe shows the account of the token
	CmdMe = &cli.Command{
		Name:   "me",
		Usage:  "Show the account the token belongs to",
		Action: withEnvironment(runMe),
	}
)

func runFolderList(c *cli.Context, env *environment) error {
	list, _, err := env.client.ListFolders(c.Context)
	if err != nil {
		return err
	}
	for _, f := range list.Items {
		printFolder(c.App.Writer, f, 0)
	}
	return nil
}

func printFolder(w io.Writer, f datawrapper.Folder, depth int) {
	name := f.Name
	if name == "" {
		name = f.Type
	}
	_, _ = fmt.Fprintf(w, "%s%s", strings.Repeat("  ", depth), name)
	if f.ID > 0 {
		_, _ = fmt.Fprintf(w, " [%d]", f.ID)
	}
	_, _ = fmt.Fprintf(w, " %s\n", english.Plural(len(f.Charts), "chart", "charts"))
	for _, sub := range f.Folders {
		printFolder(w, sub, depth+1)
	}
}

func runFolderCreate(c *cli.Context, env *environment) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected a folder name")
	}
	opt := datawrapper.CreateFolderOption{Name: c.Args().First()}
	if c.IsSet("parent") {
		parent := c.Int("parent")
		opt.ParentID = &parent
	}
	f, _, err := env.client.CreateFolder(c.Context, opt)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(c.App.Writer, "Created folder %s [%d]\n", f.Name, f.ID)
	return nil
}

func runThemeList(c *cli.Context, env *environment) error {
	list, _, err := env.client.ListThemes(c.Context, datawrapper.ListThemesOptions{})
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(c.App.Writer, 0, 8, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tTITLE\tEXTENDS")
	for _, t := range list.Items {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", t.ID, t.Title, t.Extend)
	}
	return w.Flush()
}

func runMe(c *cli.Context, env *environment) error {
	me, _, err := env.client.GetMyAccount(c.Context)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(c.App.Writer, 0, 8, 1, ' ', 0)
	_, _ = fmt.Fprintf(w, "ID:\t%d\n", me.ID)
	_, _ = fmt.Fprintf(w, "Name:\t%s\n", me.Name)
	_, _ = fmt.Fprintf(w, "Email:\t%s\n", me.Email)
	_, _ = fmt.Fprintf(w, "Role:\t%s\n", me.Role)
	_, _ = fmt.Fprintf(w, "Charts:\t%s\n", humanize.Comma(int64(me.ChartCount)))
	if me.CreatedAt != nil {
		_, _ = fmt.Fprintf(w, "Member since:\t%s\n", humanize.Time(*me.CreatedAt))
	}
	return w.Flush()
}
