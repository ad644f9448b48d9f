package main

import (
	"os"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/voidshard/rasterflow/internal/utils"
	"github.com/voidshard/rasterflow/pkg/api"
	"github.com/voidshard/rasterflow/pkg/api/http/server"
	"github.com/voidshard/rasterflow/pkg/processor"
	"github.com/voidshard/rasterflow/pkg/structs"
)

var CLI struct {
	Addr string `long:"addr" env:"ADDR" description:"Address to bind to" default:"localhost:8100"`

	DataDir string `long:"data-dir" env:"DATA_DIR" description:"Root directory for raw uploads & processed outputs" default:"data"`

	TargetCRS string `long:"target-crs" env:"TARGET_CRS" description:"Coordinate reference system rasters are warped to" default:"EPSG:4326"`

	PipelineRoutines int64 `long:"pipeline-routines" env:"PIPELINE_ROUTINES" description:"Max pipelines running at once" default:"4"`

	TileProcesses int `long:"tile-processes" env:"TILE_PROCESSES" description:"Tiling tool parallelism per job" default:"4"`

	ZoomMin int `long:"zoom-min" env:"ZOOM_MIN" description:"Lowest tile zoom level generated" default:"8"`

	ZoomMax int `long:"zoom-max" env:"ZOOM_MAX" description:"Highest tile zoom level generated" default:"16"`

	TileTimeout time.Duration `long:"tile-timeout" env:"TILE_TIMEOUT" description:"Cap on the tiling stage, 0 disables"`

	TLSCert string `long:"cert" env:"CERT" description:"Path to TLS certificate"`

	TLSKey string `long:"key" env:"KEY" description:"Path to TLS key"`

	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

func main() {
	// This main runs a RasterFlow server: it serves the upload / polling API over HTTP
	// and runs the background pipeline routines that warp, translate & tile whatever
	// gets uploaded. Processing state is in-memory; restarting drops all jobs.

	var parser = flags.NewParser(&CLI, flags.Default)
	if _, err := parser.Parse(); err != nil {
		switch flagsErr := err.(type) {
		case flags.ErrorType:
			if flagsErr == flags.ErrHelp {
				os.Exit(0)
			}
			os.Exit(1)
		default:
			os.Exit(1)
		}
	}

	tlsCfg, err := utils.TLSConfig(CLI.TLSCert, CLI.TLSKey)
	if err != nil {
		panic(err)
	}

	svc, err := api.New(processor.NewGDAL(), &structs.Options{
		DataDir:          CLI.DataDir,
		TargetCRS:        CLI.TargetCRS,
		PipelineRoutines: CLI.PipelineRoutines,
		TileProcesses:    CLI.TileProcesses,
		ZoomMin:          CLI.ZoomMin,
		ZoomMax:          CLI.ZoomMax,
		TileTimeout:      CLI.TileTimeout,
	})
	if err != nil {
		panic(err)
	}

	defer svc.Close()

	s := server.NewServer(CLI.Addr, tlsCfg, CLI.Debug)
	if err := s.ServeForever(svc); err != nil {
		panic(err)
	}
}
