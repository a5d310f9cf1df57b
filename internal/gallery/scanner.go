package gallery

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
)

// categories is the fixed rotation media is bucketed into. Assignment is
// purely positional: asset N lands in categories[N mod 4].
var categories = []string{"events", "backstage", "classes", "artists"}

var videoExtensions = map[string]bool{
	".mp4":  true,
	".webm": true,
	".mov":  true,
}

type Metadata struct {
	SizeBytes int64  `json:"size_bytes"`
	Extension string `json:"extension"`
}

// Asset describes one file in the public gallery directory. Ids are assigned
// by scan order and are only stable within a single scan.
type Asset struct {
	ID        int      `json:"id"`
	Filename  string   `json:"filename"`
	Filepath  string   `json:"filepath"`
	AssetType string   `json:"asset_type"`
	Category  string   `json:"category"`
	Title     string   `json:"title"`
	Metadata  Metadata `json:"metadata"`
}

// Scan lists the regular files in dir sorted by filename and derives a media
// descriptor for each. A missing directory is not an error; it just means an
// empty gallery.
func Scan(dir string) []Asset {
	assets := []Asset{}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return assets
	}

	var names []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	for i, name := range names {
		id := i + 1
		ext := strings.ToLower(filepath.Ext(name))
		assetType := "image"
		if videoExtensions[ext] {
			assetType = "video"
		}

		var size int64
		if info, err := os.Stat(filepath.Join(dir, name)); err == nil {
			size = info.Size()
		}

		assets = append(assets, Asset{
			ID:        id,
			Filename:  name,
			Filepath:  "/assets/" + name,
			AssetType: assetType,
			Category:  categories[id%len(categories)],
			Title:     titleFromFilename(strings.TrimSuffix(name, filepath.Ext(name))),
			Metadata: Metadata{
				SizeBytes: size,
				Extension: strings.TrimPrefix(ext, "."),
			},
		})
	}
	return assets
}

// titleFromFilename turns "gala-printemps_2024" into "Gala Printemps 2024".
func titleFromFilename(name string) string {
	cleaned := strings.NewReplacer("-", " ", "_", " ").Replace(name)
	for _, ext := range []string{".mp4", ".jpg", ".jpeg"} {
		cleaned = strings.ReplaceAll(cleaned, ext, "")
	}

	var words []string
	for _, part := range strings.Fields(cleaned) {
		words = append(words, capitalize(part))
	}
	return strings.Join(words, " ")
}

func capitalize(word string) string {
	runes := []rune(strings.ToLower(word))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
