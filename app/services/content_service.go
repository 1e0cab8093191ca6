package services

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"github.com/Alok-CS-2022/import-export-site/app/models"
	"github.com/Alok-CS-2022/import-export-site/app/repositories"
	"github.com/spf13/cast"
)

const contentCacheFile = "site_content.json"

// ContentResolver loads the singleton site content document and merges
// it over the built-in defaults. Load order: database, then the local
// cache file written on the last good load, then nothing. A region the
// document does not mention keeps its default; no region is ever blank.
type ContentResolver struct {
	contentRepo repositories.SiteContentRepository
	cachePath   string
}

func NewContentResolver(contentRepo repositories.SiteContentRepository, cacheDir string) *ContentResolver {
	if cacheDir == "" {
		cacheDir = os.TempDir()
	}
	return &ContentResolver{
		contentRepo: contentRepo,
		cachePath:   filepath.Join(cacheDir, contentCacheFile),
	}
}

// Resolve returns the full content document with every region present.
func (r *ContentResolver) Resolve(ctx context.Context) models.JSONMap {
	return MergeContent(DefaultContent(), r.load(ctx))
}

func (r *ContentResolver) load(ctx context.Context) models.JSONMap {
	row, err := r.contentRepo.Get(ctx)
	if err == nil && row != nil {
		r.writeCache(row.Content)
		return row.Content
	}

	if err != nil {
		log.Printf("ContentResolver.load: store unavailable, trying cache: %v", err)
	} else {
		log.Println("ContentResolver.load: no published content, trying cache")
	}

	if cached := r.readCache(); cached != nil {
		return cached
	}
	return nil
}

func (r *ContentResolver) writeCache(doc models.JSONMap) {
	raw, err := json.Marshal(doc)
	if err != nil {
		log.Printf("ContentResolver.writeCache: marshal failed: %v", err)
		return
	}
	if err := os.WriteFile(r.cachePath, raw, 0644); err != nil {
		log.Printf("ContentResolver.writeCache: write failed: %v", err)
	}
}

func (r *ContentResolver) readCache() models.JSONMap {
	raw, err := os.ReadFile(r.cachePath)
	if err != nil {
		return nil
	}
	doc := models.JSONMap{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Printf("ContentResolver.readCache: corrupt cache file: %v", err)
		return nil
	}
	return doc
}

// MergeContent patches each top-level region of doc over defaults.
// Regions doc does not carry stay at their default value; a nil region
// counts as absent, so nothing is ever cleared.
func MergeContent(defaults, doc models.JSONMap) models.JSONMap {
	merged := make(models.JSONMap, len(defaults))
	for key, value := range defaults {
		merged[key] = value
	}

	for key, value := range doc {
		if value == nil {
			continue
		}
		if region, err := cast.ToStringMapE(value); err == nil {
			merged[key] = region
			continue
		}
		merged[key] = value
	}

	return merged
}
