package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/voidshard/rasterflow/pkg/structs"
)

// postMultipart POSTs the given files as a multipart form under the given
// field name and unmarshals the response.
func postMultipart(addr *url.URL, field string, files []*structs.UploadFile, out interface{}) error {
	buf := &bytes.Buffer{}
	form := multipart.NewWriter(buf)

	for _, f := range files {
		part, err := form.CreateFormFile(field, f.Filename)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, f.Data); err != nil {
			return err
		}
	}
	if err := form.Close(); err != nil {
		return err
	}

	resp, err := http.Post(addr.String(), form.FormDataContentType(), buf)
	if err != nil {
		return err
	} else if resp.Body == nil {
		return fmt.Errorf("no response body with status code %d", resp.StatusCode)
	}

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 { // some error code, assume message is error message
		return fmt.Errorf("bad status code %d, returned %s", resp.StatusCode, string(body))
	}

	return json.Unmarshal(body, out)
}

// genericGet is a helper to GET a given URL and unmarshal the response
func genericGet(addr *url.URL, out interface{}) error {
	body, err := genericGetStream(addr)
	if err != nil {
		return err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// genericGetStream is a helper to GET a given URL, returning the raw body
func genericGetStream(addr *url.URL) (io.ReadCloser, error) {
	resp, err := http.Get(addr.String())
	if err != nil {
		return nil, err
	} else if resp.Body == nil {
		return nil, fmt.Errorf("no response body with status code %d", resp.StatusCode)
	}

	if resp.StatusCode >= 400 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("bad status code %d, returned %s", resp.StatusCode, string(body))
	}

	return resp.Body, nil
}
