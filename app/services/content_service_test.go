package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alok-CS-2022/import-export-site/app/models"
)

type stubContentRepo struct {
	row *models.SiteContent
	err error
}

func (s *stubContentRepo) Get(ctx context.Context) (*models.SiteContent, error) {
	return s.row, s.err
}

func (s *stubContentRepo) Upsert(ctx context.Context, content models.JSONMap, updatedBy string) (*models.SiteContent, error) {
	s.row = &models.SiteContent{ID: models.SiteContentID, Content: content, UpdatedBy: updatedBy}
	return s.row, nil
}

func TestMergeContentPatchesOnlyNamedRegions(t *testing.T) {
	defaults := DefaultContent()
	doc := models.JSONMap{
		"hero": map[string]interface{}{"title": "Custom Title"},
	}

	merged := MergeContent(defaults, doc)

	hero, ok := merged["hero"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Custom Title", hero["title"])

	// Regions the document does not mention keep their defaults.
	assert.Equal(t, defaults["footer"], merged["footer"])
	assert.Equal(t, defaults["seo"], merged["seo"])
}

func TestMergeContentNilRegionKeepsDefault(t *testing.T) {
	defaults := DefaultContent()
	doc := models.JSONMap{"footer": nil}

	merged := MergeContent(defaults, doc)
	assert.Equal(t, defaults["footer"], merged["footer"])
}

func TestMergeContentEmptyDocIsDefaults(t *testing.T) {
	defaults := DefaultContent()
	merged := MergeContent(defaults, nil)
	assert.Equal(t, defaults, merged)
}

func TestResolvePrefersStoredDocument(t *testing.T) {
	repo := &stubContentRepo{row: &models.SiteContent{
		ID:      models.SiteContentID,
		Content: models.JSONMap{"hero": map[string]interface{}{"title": "From Store"}},
	}}
	resolver := NewContentResolver(repo, t.TempDir())

	merged := resolver.Resolve(context.Background())
	hero := merged["hero"].(map[string]interface{})
	assert.Equal(t, "From Store", hero["title"])
}

func TestResolveFallsBackToCacheThenDefaults(t *testing.T) {
	dir := t.TempDir()
	repo := &stubContentRepo{row: &models.SiteContent{
		ID:      models.SiteContentID,
		Content: models.JSONMap{"hero": map[string]interface{}{"title": "Cached Title"}},
	}}
	resolver := NewContentResolver(repo, dir)

	// A successful load writes the cache file.
	resolver.Resolve(context.Background())

	// The store goes away; the cached document still wins.
	repo.row = nil
	repo.err = errors.New("connection refused")
	merged := resolver.Resolve(context.Background())
	hero := merged["hero"].(map[string]interface{})
	assert.Equal(t, "Cached Title", hero["title"])

	// No store and no cache: every region falls back to defaults.
	bare := NewContentResolver(repo, t.TempDir())
	merged = bare.Resolve(context.Background())
	assert.Equal(t, DefaultContent()["hero"], merged["hero"])
}
