package processor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/voidshard/rasterflow/pkg/structs"
)

const (
	binWarp      = "gdalwarp"
	binTranslate = "gdal_translate"
	binInfo      = "gdalinfo"
	binTiles     = "gdal2tiles.py"
)

// wkt2 closes with the authority id of the CRS, eg. ID["EPSG",4326]
var wktAuthority = regexp.MustCompile(`ID\["EPSG",(\d+)\]`)

// GDAL implements Toolkit by running the standard GDAL command line tools
// as subprocesses.
type GDAL struct{}

func NewGDAL() *GDAL {
	return &GDAL{}
}

func (g *GDAL) Probe(ctx context.Context, path string) error {
	_, err := run(ctx, binInfo, path)
	if err != nil {
		return fmt.Errorf("could not open the file, it may be corrupted or not a valid raster format: %w", err)
	}
	return nil
}

func (g *GDAL) Reproject(ctx context.Context, src, dst, targetCRS string) error {
	_, err := run(ctx, binWarp, "-t_srs", targetCRS, src, dst)
	return err
}

func (g *GDAL) Translate(ctx context.Context, src, dst string) error {
	// -ot Byte -scale squashes any pixel format down to scaled 8 bit,
	// the only thing the tiling tool handles uniformly
	_, err := run(ctx, binTranslate, "-ot", "Byte", "-scale", src, dst)
	return err
}

func (g *GDAL) Inspect(ctx context.Context, path string) (*structs.Metadata, error) {
	out, err := run(ctx, binInfo, "-json", path)
	if err != nil {
		return nil, err
	}
	return parseInfo(out)
}

func (g *GDAL) Generate(ctx context.Context, src, outDir string, zoom ZoomRange, processes int) error {
	_, err := run(ctx, binTiles,
		"-z", fmt.Sprintf("%d-%d", zoom.Min, zoom.Max),
		fmt.Sprintf("--processes=%d", processes),
		src, outDir,
	)
	return err
}

// run executes a tool, capturing stderr into a ToolError on non-zero exit.
func run(ctx context.Context, tool string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, tool, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return stdout.Bytes(), nil
	}

	var exit *exec.ExitError
	if errors.As(err, &exit) {
		return nil, &ToolError{
			Tool:     tool,
			ExitCode: exit.ExitCode(),
			Stderr:   strings.TrimSpace(stderr.String()),
		}
	}
	// tool missing, context cancelled, etc
	return nil, fmt.Errorf("%s: %w", tool, err)
}

// gdalInfo is the subset of `gdalinfo -json` output we care about.
type gdalInfo struct {
	Size  []int `json:"size"`
	Bands []struct {
		Band int `json:"band"`
	} `json:"bands"`
	GeoTransform      []float64 `json:"geoTransform"`
	CornerCoordinates struct {
		UpperLeft  []float64 `json:"upperLeft"`
		LowerRight []float64 `json:"lowerRight"`
	} `json:"cornerCoordinates"`
	CoordinateSystem struct {
		WKT string `json:"wkt"`
	} `json:"coordinateSystem"`
}

func parseInfo(data []byte) (*structs.Metadata, error) {
	info := &gdalInfo{}
	if err := json.Unmarshal(data, info); err != nil {
		return nil, fmt.Errorf("unparsable %s output: %w", binInfo, err)
	}
	if len(info.Size) < 2 {
		return nil, fmt.Errorf("%s output missing raster size", binInfo)
	}
	if len(info.GeoTransform) < 6 {
		return nil, fmt.Errorf("%s output missing geotransform", binInfo)
	}
	ul := info.CornerCoordinates.UpperLeft
	lr := info.CornerCoordinates.LowerRight
	if len(ul) < 2 || len(lr) < 2 {
		return nil, fmt.Errorf("%s output missing corner coordinates", binInfo)
	}

	md := &structs.Metadata{
		CRS:        crsIdentifier(info.CoordinateSystem.WKT),
		Bounds:     [4]float64{ul[0], lr[1], lr[0], ul[1]},
		Resolution: [2]float64{abs(info.GeoTransform[1]), abs(info.GeoTransform[5])},
		BandCount:  len(info.Bands),
		Width:      info.Size[0],
		Height:     info.Size[1],
	}
	return md, nil
}

// crsIdentifier pulls the EPSG code out of a WKT definition. The last ID
// entry is the CRS itself (earlier ones belong to datums etc). Falls back
// to the raw WKT if no authority is declared.
func crsIdentifier(wkt string) string {
	matches := wktAuthority.FindAllStringSubmatch(wkt, -1)
	if len(matches) == 0 {
		return wkt
	}
	return "EPSG:" + matches[len(matches)-1][1]
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
