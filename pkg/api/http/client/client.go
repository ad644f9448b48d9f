package client

import (
	"fmt"
	"io"
	"net/url"

	"github.com/voidshard/rasterflow/pkg/api/http/common"
	"github.com/voidshard/rasterflow/pkg/structs"
)

type Client struct {
	url *url.URL
}

func New(address string) (*Client, error) {
	u, err := url.Parse(address)
	return &Client{url: u}, err
}

// Upload submits a single raster & returns the acknowledgement. The job
// processes in the background; poll Status with the returned raster id.
func (c *Client) Upload(filename string, data io.Reader) (*structs.JobStatus, error) {
	addr := c.addr(common.API_RASTERS)
	var out structs.JobStatus
	files := []*structs.UploadFile{{Filename: filename, Data: data}}
	return &out, postMultipart(addr, common.FieldFile, files, &out)
}

// UploadBatch submits several rasters at once; the response partitions
// them into admitted jobs & rejected files.
func (c *Client) UploadBatch(files []*structs.UploadFile) (*structs.BatchResponse, error) {
	addr := c.addr(common.API_RASTERS_BATCH)
	var out structs.BatchResponse
	return &out, postMultipart(addr, common.FieldFiles, files, &out)
}

func (c *Client) Status(id string) (*structs.JobStatus, error) {
	addr := c.addr(fmt.Sprintf("/v1/rasters/%s/status", id))
	var out structs.JobStatus
	return &out, genericGet(addr, &out)
}

func (c *Client) Metadata(id string) (*structs.RasterMetadata, error) {
	addr := c.addr(fmt.Sprintf("/v1/rasters/%s/metadata", id))
	var out structs.RasterMetadata
	return &out, genericGet(addr, &out)
}

// Download streams the reprojected output file. The caller must close the
// returned reader.
func (c *Client) Download(id string) (io.ReadCloser, error) {
	addr := c.addr(fmt.Sprintf("/v1/rasters/%s/download", id))
	return genericGetStream(addr)
}

// Tile fetches one tile image of a completed job's pyramid.
func (c *Client) Tile(id string, z, x, y int) ([]byte, error) {
	addr := c.addr(fmt.Sprintf("/v1/rasters/%s/tiles/%d/%d/%d.png", id, z, x, y))
	body, err := genericGetStream(addr)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return io.ReadAll(body)
}

func (c *Client) addr(path string) *url.URL {
	return &url.URL{Scheme: c.url.Scheme, Host: c.url.Host, Path: path}
}
