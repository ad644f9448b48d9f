package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voidshard/rasterflow/pkg/errors"
	"github.com/voidshard/rasterflow/pkg/structs"
)

func init() {
	timeNow = func() int64 { return 1000000 }
}

func TestCreateGet(t *testing.T) {
	reg := NewMemory()

	err := reg.Create(&structs.Job{ID: "a", Status: structs.PROCESSING, Filename: "dem.tif"})
	assert.Nil(t, err)

	job, err := reg.Get("a")
	assert.Nil(t, err)
	assert.Equal(t, "a", job.ID)
	assert.Equal(t, structs.PROCESSING, job.Status)
	assert.Equal(t, "dem.tif", job.Filename)
	assert.Equal(t, int64(1000000), job.CreatedAt)
	assert.Nil(t, job.Metadata)
	assert.Nil(t, job.Artifacts)
}

func TestCreateDuplicate(t *testing.T) {
	reg := NewMemory()

	err := reg.Create(&structs.Job{ID: "a", Status: structs.PROCESSING})
	assert.Nil(t, err)

	err = reg.Create(&structs.Job{ID: "a", Status: structs.PROCESSING})
	assert.ErrorIs(t, err, errors.ErrAlreadyExists)
}

func TestGetUnknown(t *testing.T) {
	reg := NewMemory()

	_, err := reg.Get("nope")
	assert.ErrorIs(t, err, errors.ErrNotFound)
}

func TestUpdateUnknown(t *testing.T) {
	reg := NewMemory()

	err := reg.Update("nope", &structs.Update{Status: structs.FAILED})
	assert.ErrorIs(t, err, errors.ErrNotFound)
}

func TestUpdateMergesFields(t *testing.T) {
	reg := NewMemory()
	assert.Nil(t, reg.Create(&structs.Job{ID: "a", Status: structs.PROCESSING, Filename: "dem.tif"}))

	md := &structs.Metadata{CRS: "EPSG:4326", BandCount: 1, Width: 10, Height: 20}
	af := &structs.Artifacts{Reprojected: "/x/reprojected.tif", TileDir: "/x/tiles"}
	err := reg.Update("a", &structs.Update{
		Status:    structs.COMPLETE,
		Message:   "done",
		Metadata:  md,
		Artifacts: af,
	})
	assert.Nil(t, err)

	job, err := reg.Get("a")
	assert.Nil(t, err)
	assert.Equal(t, structs.COMPLETE, job.Status)
	assert.Equal(t, "done", job.Message)
	assert.Equal(t, "dem.tif", job.Filename) // untouched
	assert.Equal(t, *md, *job.Metadata)
	assert.Equal(t, *af, *job.Artifacts)
}

func TestUpdateTerminalRejected(t *testing.T) {
	cases := []struct {
		Name  string
		Given structs.Status
	}{
		{"Complete", structs.COMPLETE},
		{"Failed", structs.FAILED},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			reg := NewMemory()
			assert.Nil(t, reg.Create(&structs.Job{ID: "a", Status: structs.PROCESSING}))
			assert.Nil(t, reg.Update("a", &structs.Update{Status: c.Given}))

			err := reg.Update("a", &structs.Update{Status: structs.PROCESSING})
			assert.ErrorIs(t, err, errors.ErrInvalidState)

			job, err := reg.Get("a")
			assert.Nil(t, err)
			assert.Equal(t, c.Given, job.Status)
		})
	}
}

func TestReadersHoldCopies(t *testing.T) {
	reg := NewMemory()
	given := &structs.Job{ID: "a", Status: structs.PROCESSING, Filename: "dem.tif"}
	assert.Nil(t, reg.Create(given))

	// mutating what we passed in or got back must not touch registry state
	given.Filename = "hacked"
	job, _ := reg.Get("a")
	job.Status = structs.FAILED
	job.Filename = "hacked"

	again, err := reg.Get("a")
	assert.Nil(t, err)
	assert.Equal(t, structs.PROCESSING, again.Status)
	assert.Equal(t, "dem.tif", again.Filename)
}

func TestConcurrentAccess(t *testing.T) {
	reg := NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("job-%d", n)

			assert.Nil(t, reg.Create(&structs.Job{ID: id, Status: structs.PROCESSING}))
			_, err := reg.Get(id)
			assert.Nil(t, err)
			assert.Nil(t, reg.Update(id, &structs.Update{
				Status:    structs.COMPLETE,
				Metadata:  &structs.Metadata{BandCount: n},
				Artifacts: &structs.Artifacts{TileDir: id},
			}))
		}(i)
	}
	wg.Wait()

	// no cross contamination between jobs
	for i := 0; i < 50; i++ {
		id := fmt.Sprintf("job-%d", i)
		job, err := reg.Get(id)
		assert.Nil(t, err)
		assert.Equal(t, structs.COMPLETE, job.Status)
		assert.Equal(t, i, job.Metadata.BandCount)
		assert.Equal(t, id, job.Artifacts.TileDir)
	}
}
