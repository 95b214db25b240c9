// Command ductroute routes air-conditioning ducts through a building
// layout file and prints the blueprint, legend and per-duct reports.
//
// Usage:
//
//	ductroute [-no-color] <layout-file>
//
// The layout syntax is documented in the layout package. Energy cost
// constants may be overridden through DUCTROUTE_COST_* environment
// variables, optionally via a .env file in the working directory.
// Diagnostics go to stderr; the rendered blueprint goes to stdout.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/katalvlaran/ductroute/blueprint"
	"github.com/katalvlaran/ductroute/building"
	"github.com/katalvlaran/ductroute/layout"
	"github.com/katalvlaran/ductroute/route"
	"github.com/katalvlaran/ductroute/simplify"
)

func main() {
	noColor := flag.Bool("no-color", false, "disable ANSI colors in status output")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-no-color] <layout-file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	log := &statusLogger{w: os.Stderr, color: !*noColor}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), log); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
}

func run(path string, log *statusLogger) error {
	model, err := loadModel()
	if err != nil {
		return err
	}

	log.Info("loading layout from %s", path)
	grid, err := layout.Load(path)
	if err != nil {
		return err
	}
	log.Info("building: %d floors, %d×%d plan", grid.Floors(), grid.Rows(), grid.Cols())

	log.Info("routing ducts...")
	start := time.Now()
	res, err := route.Route(grid,
		route.WithModel(model),
		route.WithOnUnreachable(func(target building.Position) {
			log.Warn("no duct path to room at %s", target)
		}),
	)
	if err != nil {
		return err
	}
	log.Info("routing finished in %s: %d routed, %d unreachable",
		time.Since(start).Round(time.Microsecond), len(res.Paths), len(res.Unreached))

	if len(res.Paths) == 0 {
		log.Warn("no duct paths found; nothing to render")
		return nil
	}

	log.Info("optimizing energy usage...")
	start = time.Now()
	optimized := simplify.Optimize(grid, model, res.Paths)
	log.Info("optimization finished in %s", time.Since(start).Round(time.Microsecond))

	for _, pr := range optimized {
		fmt.Println(blueprint.DescribePath(grid, pr))
	}
	fmt.Print(blueprint.Render(grid, optimized))
	fmt.Print(blueprint.Legend(grid, model, optimized))
	return nil
}
