package processor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// trimmed `gdalinfo -json` output for a single band warped DEM
var exampleInfo = []byte(`{
  "description": "reprojected.tif",
  "driverShortName": "GTiff",
  "size": [512, 256],
  "coordinateSystem": {
    "wkt": "GEOGCRS[\"WGS 84\",DATUM[\"World Geodetic System 1984\",ELLIPSOID[\"WGS 84\",6378137,298.257223563,LENGTHUNIT[\"metre\",1],ID[\"EPSG\",7030]]],CS[ellipsoidal,2],ID[\"EPSG\",4326]]"
  },
  "geoTransform": [10.0, 0.25, 0.0, 48.0, 0.0, -0.125],
  "cornerCoordinates": {
    "upperLeft": [10.0, 48.0],
    "lowerLeft": [10.0, 16.0],
    "lowerRight": [138.0, 16.0],
    "upperRight": [138.0, 48.0],
    "center": [74.0, 32.0]
  },
  "bands": [{"band": 1, "block": [512, 16], "type": "Float32"}]
}`)

func TestParseInfo(t *testing.T) {
	md, err := parseInfo(exampleInfo)

	assert.Nil(t, err)
	assert.Equal(t, "EPSG:4326", md.CRS)
	assert.Equal(t, [4]float64{10.0, 16.0, 138.0, 48.0}, md.Bounds)
	assert.Equal(t, [2]float64{0.25, 0.125}, md.Resolution)
	assert.Equal(t, 1, md.BandCount)
	assert.Equal(t, 512, md.Width)
	assert.Equal(t, 256, md.Height)
}

func TestParseInfoInvalid(t *testing.T) {
	cases := []struct {
		Name  string
		Given []byte
	}{
		{"NotJson", []byte("GTiff")},
		{"MissingSize", []byte(`{"bands": []}`)},
		{"MissingGeoTransform", []byte(`{"size": [1, 1]}`)},
		{"MissingCorners", []byte(`{"size": [1, 1], "geoTransform": [0,1,0,0,0,-1]}`)},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			_, err := parseInfo(c.Given)
			assert.NotNil(t, err)
		})
	}
}

func TestCRSIdentifier(t *testing.T) {
	cases := []struct {
		Name   string
		Given  string
		Expect string
	}{
		// the CRS id closes the definition; datum / ellipsoid ids come earlier
		{"LastIDWins", `ELLIPSOID["WGS 84",ID["EPSG",7030]],ID["EPSG",4326]`, "EPSG:4326"},
		{"NoAuthority", `LOCAL_CS["arbitrary"]`, `LOCAL_CS["arbitrary"]`},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			assert.Equal(t, c.Expect, crsIdentifier(c.Given))
		})
	}
}

func TestToolError(t *testing.T) {
	err := &ToolError{Tool: "gdal2tiles.py", ExitCode: 2, Stderr: "ERROR 1: out of memory"}

	assert.Equal(t, "gdal2tiles.py failed with exit code 2. Stderr: ERROR 1: out of memory", err.Error())
}
