package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/nbiotcloud/icdutil-go/addrrange"
	"github.com/nbiotcloud/icdutil-go/address"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var rangeFlags = []cli.Flag{
	cli.StringFlag{Name: "base", Value: "0"},
	cli.StringFlag{Name: "size"},
	cli.UintFlag{Name: "width"},
}

var otherRangeFlags = []cli.Flag{
	cli.StringFlag{Name: "other-base", Value: "0"},
	cli.StringFlag{Name: "other-size"},
	cli.UintFlag{Name: "other-width"},
}

func withRangeFlags(extra ...cli.Flag) []cli.Flag {
	flags := make([]cli.Flag, 0, len(extra)+len(rangeFlags))
	flags = append(flags, rangeFlags...)
	return append(flags, extra...)
}

func parseRange(c *cli.Context, baseFlag, sizeFlag, widthFlag string) (addrrange.AddrRange, error) {
	base, err := address.Parse(c.String(baseFlag))
	if err != nil {
		return addrrange.AddrRange{}, err
	}
	r, err := addrrange.Parse(base.AsU64(), c.String(sizeFlag), c.Uint(widthFlag))
	if err != nil {
		return addrrange.AddrRange{}, err
	}
	logrus.WithFields(logrus.Fields{
		"base":  r.Base().Hex(r.AddrWidth()),
		"size":  r.Size(),
		"width": r.AddrWidth(),
	}).Debug("parsed range")
	return r, nil
}

func parseRanges(c *cli.Context) (r, other addrrange.AddrRange, err error) {
	if r, err = parseRange(c, "base", "size", "width"); err != nil {
		return
	}
	other, err = parseRange(c, "other-base", "other-size", "other-width")
	return
}

func infoRange(c *cli.Context) error {
	r, err := parseRange(c, "base", "size", "width")
	if err != nil {
		return err
	}
	w := c.App.Writer
	fmt.Fprintf(w, "range  %s\n", r)
	fmt.Fprintf(w, "repr   %#v\n", r)
	fmt.Fprintf(w, "end    %s\n", r.EndAddr().Hex(r.AddrWidth()))
	if next, ok := r.CheckedNextAddr(); ok {
		fmt.Fprintf(w, "next   %s\n", next.Hex(r.AddrWidth()))
	} else {
		fmt.Fprintln(w, "next   none, range ends at the top of the address space")
	}
	fmt.Fprintf(w, "size   %d, for short %s\n", r.Size(), humanize.IBytes(r.Size()))
	return nil
}

func containsRange(c *cli.Context) error {
	r, err := parseRange(c, "base", "size", "width")
	if err != nil {
		return err
	}
	addr, err := address.Parse(c.String("addr"))
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, r.Contains(addr))
	return nil
}

func overlapRange(c *cli.Context) error {
	r, other, err := parseRanges(c)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, r.IsOverlapping(other))
	return nil
}

func intersectRange(c *cli.Context) error {
	r, other, err := parseRanges(c)
	if err != nil {
		return err
	}
	i, ok := r.Intersect(other)
	if !ok {
		fmt.Fprintln(c.App.Writer, "none")
		return nil
	}
	fmt.Fprintf(c.App.Writer, "%#v\n", i)
	return nil
}

func iterRange(c *cli.Context) error {
	r, err := parseRange(c, "base", "size", "width")
	if err != nil {
		return err
	}
	limit := c.Uint64("limit")
	var n uint64
	for a := range r.Addresses() {
		if limit != 0 && n == limit {
			logrus.WithField("limit", limit).Debug("stopped iteration")
			break
		}
		fmt.Fprintf(c.App.Writer, "%d %s\n", a.AsU64(), a.Hex(r.AddrWidth()))
		n++
	}
	return nil
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "addrrange"
	app.Usage = "inspect and compare address ranges"
	app.Flags = []cli.Flag{
		cli.BoolFlag{Name: "verbose"},
	}
	app.Before = func(c *cli.Context) error {
		if c.Bool("verbose") {
			logrus.SetLevel(logrus.DebugLevel)
		}
		return nil
	}
	app.Commands = []cli.Command{
		{
			Name:   "Info",
			Usage:  "Info --base <addr> --size <size> [--width <bits>]",
			Flags:  rangeFlags,
			Action: infoRange,
		},
		{
			Name:   "Contains",
			Usage:  "Contains --base <addr> --size <size> --addr <addr>",
			Flags:  withRangeFlags(cli.StringFlag{Name: "addr"}),
			Action: containsRange,
		},
		{
			Name:   "Overlap",
			Usage:  "Overlap --base <addr> --size <size> --other-base <addr> --other-size <size>",
			Flags:  withRangeFlags(otherRangeFlags...),
			Action: overlapRange,
		},
		{
			Name:   "Intersect",
			Usage:  "Intersect --base <addr> --size <size> --other-base <addr> --other-size <size> [--width <bits>] [--other-width <bits>]",
			Flags:  withRangeFlags(otherRangeFlags...),
			Action: intersectRange,
		},
		{
			Name:   "Iter",
			Usage:  "Iter --base <addr> --size <size> [--limit <n>]",
			Flags:  withRangeFlags(cli.Uint64Flag{Name: "limit"}),
			Action: iterRange,
		},
	}
	return app
}

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		logrus.Errorf("%+v", err)
		os.Exit(1)
	}
}
