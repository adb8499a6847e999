package report

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOutputPath(t *testing.T) {
	layout := DefaultLayout()
	layout.OutputDir = "/tmp/precosteos"
	now := time.Date(2025, time.November, 26, 15, 4, 5, 0, time.UTC)

	got := OutputPath(layout, "PRECOSTEO-AMC-001", now)
	assert.Equal(t, filepath.Join("/tmp/precosteos", "PRECOSTEO_PRECOSTEO-AMC-001_2025-11-26.pdf"), got)
}

func TestOutputPath_SpacesBecomeUnderscores(t *testing.T) {
	layout := DefaultLayout()
	layout.OutputDir = "out"
	now := time.Date(2025, time.November, 26, 0, 0, 0, 0, time.UTC)

	got := OutputPath(layout, "AMC TEST 01", now)
	assert.Equal(t, filepath.Join("out", "PRECOSTEO_AMC_TEST_01_2025-11-26.pdf"), got)
}

func TestOutputPath_EmptyCodeFallsBackToPrefix(t *testing.T) {
	layout := DefaultLayout()
	layout.OutputDir = "out"
	now := time.Date(2025, time.November, 26, 0, 0, 0, 0, time.UTC)

	got := OutputPath(layout, "  ", now)
	assert.Equal(t, filepath.Join("out", "PRECOSTEO_PRECOSTEO_2025-11-26.pdf"), got)
}
