package handlers_test

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abagency/backend/internal/gallery"
)

func seedAssets(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
}

func TestListAssetsServesScannedGallery(t *testing.T) {
	r, _, cfg := setupTest(t)
	seedAssets(t, cfg.AssetDir, "finale.mp4", "backstage-photo.jpg")

	req, _ := http.NewRequest(http.MethodGet, "/assets", nil)
	w := doRequest(r, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Assets []gallery.Asset `json:"assets"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Assets, 2)
	assert.Equal(t, "backstage-photo.jpg", resp.Assets[0].Filename)
	assert.Equal(t, "image", resp.Assets[0].AssetType)
	assert.Equal(t, "video", resp.Assets[1].AssetType)
}

func TestListAssetsEmptyDirectory(t *testing.T) {
	r, _, _ := setupTest(t)

	req, _ := http.NewRequest(http.MethodGet, "/assets", nil)
	w := doRequest(r, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"assets":[]}`, w.Body.String())
}

func TestAssetFileServedAndTraversalBlocked(t *testing.T) {
	r, _, cfg := setupTest(t)
	seedAssets(t, cfg.AssetDir, "poster.jpg")

	req, _ := http.NewRequest(http.MethodGet, "/assets/poster.jpg", nil)
	w := doRequest(r, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req, _ = http.NewRequest(http.MethodGet, "/assets/..%2F..%2Fetc%2Fpasswd", nil)
	w = doRequest(r, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMilestonesEndpoint(t *testing.T) {
	r, _, cfg := setupTest(t)
	seedAssets(t, cfg.AssetDir, "a.jpg", "b.jpg", "c.mp4")

	req, _ := http.NewRequest(http.MethodGet, "/milestones", nil)
	w := doRequest(r, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Milestones []gallery.Milestone `json:"milestones"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Milestones, 5)
	assert.Equal(t, 2008, resp.Milestones[0].Year)
	assert.Len(t, resp.Milestones[0].MediaAssets, 2)
}

func TestBookingAvailabilityEndpoint(t *testing.T) {
	r, _, _ := setupTest(t)

	req, _ := http.NewRequest(http.MethodGet, "/booking/availability", nil)
	w := doRequest(r, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Availability []struct {
			Date   string `json:"date"`
			Status string `json:"status"`
		} `json:"availability"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Availability, 44)
	for _, slot := range resp.Availability {
		assert.Contains(t, []string{"available", "limited"}, slot.Status)
	}
}
