// Package screenshots discovers timestamped RuneLite screenshots beneath a
// root directory and orders them chronologically for encoding.
package screenshots

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/OliverBailey/runelite-timelapse/internal/services"
)

// Screenshot pairs an on-disk image with the capture time parsed from its filename.
type Screenshot struct {
	Path      string
	Timestamp time.Time
}

// ScanReport summarizes a collection pass for logging and error messages.
type ScanReport struct {
	PNGFiles int
	Parsed   int
	Skipped  []string
}

// Collect walks root recursively, filters regular .png files with parseable
// timestamps, and returns them sorted by capture time. Identical timestamps
// are ordered by path so repeat runs over an unchanged tree yield identical
// sequences. Files without a parseable timestamp are skipped and reported,
// never fatal on their own.
func Collect(root string) ([]Screenshot, ScanReport, error) {
	report := ScanReport{}

	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, report, services.Wrap(services.ErrDirectoryNotFound, "collect", "stat", root, nil)
		}
		return nil, report, services.Wrap(services.ErrTransient, "collect", "stat", root, err)
	}
	if !info.IsDir() {
		return nil, report, services.Wrap(services.ErrDirectoryNotFound, "collect", "stat", fmt.Sprintf("%s is not a directory", root), nil)
	}

	var shots []Screenshot
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if strings.ToLower(filepath.Ext(path)) != ".png" {
			return nil
		}
		report.PNGFiles++
		ts, ok := ParseTimestamp(d.Name())
		if !ok {
			report.Skipped = append(report.Skipped, path)
			return nil
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		shots = append(shots, Screenshot{Path: abs, Timestamp: ts})
		return nil
	})
	if walkErr != nil {
		return nil, report, services.Wrap(services.ErrTransient, "collect", "walk", root, walkErr)
	}

	report.Parsed = len(shots)
	if len(shots) == 0 {
		if report.PNGFiles == 0 {
			return nil, report, services.Wrap(services.ErrNoScreenshots, "collect", "scan",
				fmt.Sprintf("no .png files under %s", root), nil)
		}
		return nil, report, services.Wrap(services.ErrNoScreenshots, "collect", "scan",
			fmt.Sprintf("%d .png files under %s but none carry a parseable timestamp", report.PNGFiles, root), nil)
	}

	sort.Slice(shots, func(i, j int) bool {
		if shots[i].Timestamp.Equal(shots[j].Timestamp) {
			return shots[i].Path < shots[j].Path
		}
		return shots[i].Timestamp.Before(shots[j].Timestamp)
	})

	return shots, report, nil
}
