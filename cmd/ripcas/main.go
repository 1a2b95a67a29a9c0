// Command ripcas runs one CASiMiR vegetation-succession step from
// D-FLOW shear output.
//
// It interpolates the final time step of the shear-stress mesh onto the
// vegetation raster's grid, applies the succession rule against the
// landscape workbook, and writes the updated vegetation raster. The
// vegetation and zone rasters and the workbook come from the run
// configuration (built-in defaults, overridable with -config).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/virtualwatershed/ripcas/internal/config"
	"github.com/virtualwatershed/ripcas/internal/landtable"
	"github.com/virtualwatershed/ripcas/internal/pipeline"
	"github.com/virtualwatershed/ripcas/internal/raster"
	"github.com/virtualwatershed/ripcas/internal/version"
)

var (
	configPath   = flag.String("config", "", "optional JSON run configuration")
	roughnessOut = flag.String("roughness-out", "", "also write the Manning n map to this path")
	showVersion  = flag.Bool("version", false, "print version and exit")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] <shear-nc> <output-asc>\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if *showVersion {
		fmt.Printf("ripcas %s (%s, built %s)\n", version.Version, version.GitSHA, version.BuildTime)
		return
	}
	if flag.NArg() != 2 {
		usage()
		os.Exit(2)
	}
	shearPath, outPath := flag.Arg(0), flag.Arg(1)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("loading config: %v", err)
		}
	}

	res, err := pipeline.Run(pipeline.Params{
		Vegetation: pipeline.GridFile(cfg.GetVegetationPath()),
		Zone:       pipeline.GridFile(cfg.GetZonePath()),
		Shear:      pipeline.MeshFile(shearPath),
		Table:      pipeline.TableFile(cfg.GetWorkbookPath()),
		ShearVar:   cfg.GetShearVariable(),
		Columns: landtable.Columns{
			Code:       cfg.GetCodeColumn(),
			Resistance: cfg.GetResistanceColumn(),
			Roughness:  cfg.GetRoughnessColumn(),
		},
	})
	if err != nil {
		log.Fatalf("succession step: %v", err)
	}

	if err := raster.EncodeFile(outPath, res.Vegetation); err != nil {
		log.Fatalf("writing %s: %v", outPath, err)
	}
	log.Printf("wrote vegetation map %s", outPath)

	if *roughnessOut != "" {
		if err := raster.EncodeFile(*roughnessOut, res.Roughness); err != nil {
			log.Fatalf("writing %s: %v", *roughnessOut, err)
		}
		log.Printf("wrote roughness map %s", *roughnessOut)
	}
}
