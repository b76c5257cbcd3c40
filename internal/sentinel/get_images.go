package sentinel

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/airbusgeo/godal"
	"github.com/canopy-height-model/rasterdiv-research-poc/internal/cache"
	"github.com/canopy-height-model/rasterdiv-research-poc/internal/properties"
	"github.com/canopy-height-model/rasterdiv-research-poc/internal/utils"
	"golang.org/x/sync/errgroup"
)

// The Process API tolerates a handful of parallel requests per client.
const maxConcurrentFetches = 4

func openImage(path string) (*godal.Dataset, error) {
	var ds *godal.Dataset
	var err error
	utils.ExecuteWithMutex(func() {
		ds, err = godal.Open(path, godal.ErrLogger(func(ec godal.ErrorCategory, code int, msg string) error {
			if ec == godal.CE_Warning {
				return nil
			}
			return fmt.Errorf("gdal: %s", msg)
		}))
	})
	return ds, err
}

// hasUsablePixels reports whether any pixel of the scene carries data.
// mostRecent mosaicking returns an all-nodata image when no acquisition
// exists in the requested range.
func hasUsablePixels(ds *godal.Dataset) (bool, error) {
	scl, err := SceneClassificationFromDataset(ds)
	if err != nil {
		return false, err
	}
	for _, row := range scl {
		for _, v := range row {
			if v != 0 {
				return true, nil
			}
		}
	}
	return false, nil
}

// GetImages acquires one Sentinel-2 L2A scene per interval step over the
// geometry, cached on disk at data/images/<aoi>/<aoi>_<date>.tif. Dates
// known to have no usable scene are remembered in the invalid-date cache
// and skipped on later runs. Fetches run concurrently, bounded to
// maxConcurrentFetches in flight.
func GetImages(geometry *godal.Geometry, aoi string, startDate, endDate time.Time, intervalDays int) (map[time.Time]*godal.Dataset, error) {
	imageDir := filepath.Join(properties.RootPath(), "data", "images", aoi)
	if err := os.MkdirAll(imageDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create images directory: %w", err)
	}

	invalidDates := cache.NewFileCache[[]string]("invalid_dates")
	cacheKey := invalidDates.GenerateKey(aoi)
	knownInvalid, _ := invalidDates.Get(cacheKey)

	var (
		mu         sync.Mutex
		images     = make(map[time.Time]*godal.Dataset)
		newInvalid []string
	)

	g := new(errgroup.Group)
	g.SetLimit(maxConcurrentFetches)

	for date := startDate; !date.After(endDate); date = date.AddDate(0, 0, intervalDays) {
		date := date
		imageName := fmt.Sprintf("%s_%s.tif", aoi, date.Format("2006-01-02"))
		fileName := filepath.Join(imageDir, imageName)

		// Skip dates already known to have no usable scene.
		if contains(knownInvalid, imageName) {
			continue
		}

		g.Go(func() error {
			// Reopen instead of refetching if the file already exists.
			if _, err := os.Stat(fileName); err == nil {
				ds, err := openImage(fileName)
				if err != nil {
					return fmt.Errorf("failed to open cached image %s: %w", fileName, err)
				}
				mu.Lock()
				images[date] = ds
				mu.Unlock()
				return nil
			}

			dayEnd := date.Add(time.Hour*23 + time.Minute*59 + time.Second*59)
			imageBytes, err := requestImage(date, dayEnd, geometry)
			if err != nil {
				return fmt.Errorf("error requesting image for %s: %w", date.Format("2006-01-02"), err)
			}

			if err := os.WriteFile(fileName, imageBytes, 0644); err != nil {
				return fmt.Errorf("failed to write image file: %w", err)
			}

			ds, err := openImage(fileName)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", fileName, err)
			}

			usable, err := hasUsablePixels(ds)
			if err != nil {
				ds.Close()
				return err
			}
			if !usable {
				ds.Close()
				if err := os.Remove(fileName); err != nil {
					fmt.Printf("failed to delete empty image file %s: %v\n", fileName, err)
				}
				mu.Lock()
				newInvalid = append(newInvalid, imageName)
				mu.Unlock()
				return nil
			}

			mu.Lock()
			images[date] = ds
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for _, ds := range images {
			ds.Close()
		}
		return nil, err
	}

	if len(newInvalid) > 0 {
		if err := invalidDates.Set(cacheKey, append(knownInvalid, newInvalid...)); err != nil {
			fmt.Printf("failed to update invalid date cache: %v\n", err)
		}
	}

	return images, nil
}

func contains(slice []string, item string) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}
