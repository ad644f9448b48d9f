package core

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/voidshard/rasterflow/pkg/processor"
	"github.com/voidshard/rasterflow/pkg/structs"
)

// runPipeline drives one job from PROCESSING to a terminal state. It is
// invoked exactly once per job id, runs its stages strictly in order, and
// never surfaces a failure to any caller - results land in the registry
// and are discovered by polling.
func (s *Service) runPipeline(id, rawPath string) {
	up, err := s.process(context.Background(), id, rawPath)
	if err != nil {
		log.Println("[Pipeline]", id, "failed:", err)
		// no partial artifacts: a failed job exposes neither metadata nor
		// files, whatever intermediates remain on disk
		up = &structs.Update{Status: structs.FAILED, Message: err.Error()}
	}
	if err := s.reg.Update(id, up); err != nil {
		log.Println("[Pipeline]", id, "could not record result:", err)
	}
}

// process runs the ordered stages & builds the COMPLETE update.
func (s *Service) process(ctx context.Context, id, rawPath string) (*structs.Update, error) {
	if err := os.MkdirAll(s.disk.ProcessedDir(id), 0750); err != nil {
		return nil, fmt.Errorf("create processed dir: %v", err)
	}
	log.Println("[Pipeline]", id, "starting")

	// 1. warp into the target CRS
	reprojected := s.disk.ReprojectedPath(id)
	if err := s.tools.Reproject(ctx, rawPath, reprojected, s.opts.TargetCRS); err != nil {
		return nil, fmt.Errorf("reproject to %s: %v", s.opts.TargetCRS, err)
	}
	log.Println("[Pipeline]", id, "reprojection complete")

	// 2. normalize pixel format for the tiler
	tileSource := s.disk.TileSourcePath(id)
	if err := s.tools.Translate(ctx, reprojected, tileSource); err != nil {
		return nil, fmt.Errorf("translate to tiling format: %v", err)
	}
	log.Println("[Pipeline]", id, "translation to byte format complete")

	// 3. read metadata back from the warped output
	md, err := s.tools.Inspect(ctx, reprojected)
	if err != nil {
		return nil, fmt.Errorf("extract metadata: %v", err)
	}
	log.Println("[Pipeline]", id, "metadata extraction complete")

	// 4. render the pyramid (slowest stage, most common failure)
	tileDir := s.disk.TileDir(id)
	if err := s.generateTiles(ctx, tileSource, tileDir); err != nil {
		var terr *processor.ToolError
		if errors.As(err, &terr) {
			// keep the tool's own diagnostic verbatim so operators can
			// tell a tool blowup from bad pipeline arguments
			return nil, terr
		}
		return nil, fmt.Errorf("generate tiles: %v", err)
	}
	log.Println("[Pipeline]", id, "tiling complete")

	return &structs.Update{
		Status:   structs.COMPLETE,
		Message:  msgComplete,
		Metadata: md,
		Artifacts: &structs.Artifacts{
			Reprojected: reprojected,
			TileDir:     tileDir,
		},
	}, nil
}

func (s *Service) generateTiles(ctx context.Context, src, outDir string) error {
	if s.opts.TileTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.TileTimeout)
		defer cancel()
	}
	zoom := processor.ZoomRange{Min: s.opts.ZoomMin, Max: s.opts.ZoomMax}
	return s.tools.Generate(ctx, src, outDir, zoom, s.opts.TileProcesses)
}
