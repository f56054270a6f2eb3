// Command gridorbit counts the placements of n marked cells on an L×L grid
// up to rotation, reflection and translation, for every n from 0 to L².
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/katalvlaran/gridorbit/bitgrid"
	"github.com/katalvlaran/gridorbit/canon"
	"github.com/katalvlaran/gridorbit/combo"
	"github.com/katalvlaran/gridorbit/enumerate"
	"github.com/katalvlaran/gridorbit/gridgraph"
	"github.com/katalvlaran/gridorbit/report"
	"github.com/katalvlaran/gridorbit/store"
)

func main() {
	size := flag.Int("L", 4, "grid edge length (1..8)")
	tieBreak := flag.String("tiebreak", "min", "canonical rule: min or maxrev")
	binner := flag.String("binner", "mask", "store bins: mask or tz")
	generator := flag.String("generator", "lex", "subset walk: lex or indexed")
	lo := flag.Int("from", 0, "smallest cell count")
	hi := flag.Int("to", -1, "largest cell count (-1: L²)")
	conn := flag.String("conn", "", "also count connected classes: 4 or 8")
	draw := flag.Int("draw", -1, "draw every class with this many cells")
	placements := flag.Bool("placements", false, "show raw subsets covered per n")
	orbits := flag.Bool("orbits", false, "show classes by orbit size")
	verify := flag.Bool("verify", true, "check that classes cover every subset")
	timeout := flag.Duration("timeout", 0, "abort after this long (0: no limit)")
	verbose := flag.Bool("v", false, "log each finished pass")
	flag.Parse()

	g, err := bitgrid.NewGeometry(*size)
	if err != nil {
		log.Fatal(err)
	}
	tb, err := canon.ParseTieBreak(*tieBreak)
	if err != nil {
		log.Fatal(err)
	}
	b, err := store.NewBinner(*binner, g)
	if err != nil {
		log.Fatal(err)
	}
	gen, err := combo.ParseGenerator(*generator)
	if err != nil {
		log.Fatal(err)
	}
	if *hi < 0 {
		*hi = g.Cells()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	opts := []enumerate.Option{
		enumerate.WithContext(ctx),
		enumerate.WithTieBreak(tb),
		enumerate.WithBinner(b),
		enumerate.WithGenerator(gen),
		enumerate.WithRange(*lo, *hi),
	}
	if *conn != "" {
		c, err := gridgraph.ParseConnectivity(*conn)
		if err != nil {
			log.Fatal(err)
		}
		opts = append(opts, enumerate.WithConnectivity(c))
	}
	if *draw >= 0 {
		opts = append(opts, enumerate.WithKeepPatterns())
	}
	if *verbose {
		opts = append(opts, enumerate.WithOnPass(func(ps enumerate.PassStats) error {
			log.Printf("n=%d: %d classes from %d subsets in %v (bins used %d/%d, longest %d)",
				ps.N, ps.Classes, ps.Subsets, ps.Elapsed.Round(time.Millisecond),
				ps.Bins.Used, ps.Bins.Bins, ps.Bins.Longest)
			return nil
		}))
	}

	res, err := enumerate.Enumerate(*size, opts...)
	if err != nil {
		log.Fatal(err)
	}
	if *verbose {
		log.Printf("L=%d: %d classes in %v", *size, res.Total(), res.Elapsed.Round(time.Millisecond))
	}

	var ropts []report.Option
	if *placements {
		ropts = append(ropts, report.WithPlacements())
	}
	if *orbits {
		ropts = append(ropts, report.WithOrbitSizes())
	}
	if *draw >= 0 {
		ropts = append(ropts, report.WithDrawings(*draw))
	}
	if err := report.Write(os.Stdout, res, ropts...); err != nil {
		log.Fatal(err)
	}
	if *verify {
		if err := res.Verify(); err != nil {
			log.Fatal(err)
		}
	}
}
