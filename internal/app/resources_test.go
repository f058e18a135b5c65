package app

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResources(t *testing.T) {
	t.Parallel()

	root := filepath.Join("mock", "default")
	res := Resources(root)
	require.Len(t, res, 3)

	cfg := res[0]
	assert.Equal(t, SuiteConfig, cfg.SuiteID)
	assert.Equal(t, "api/config", cfg.Path)
	assert.False(t, cfg.Paginated)
	assert.Equal(t, filepath.Join(root, SuiteConfig), cfg.OutputDirectory)
	assert.True(t, strings.HasPrefix(cfg.QueryParams, "populate[branding][fields][0]=name&"))
	assert.Contains(t, cfg.QueryParams, "populate[branding][populate][logo][fields][0]=url")
	assert.Contains(t, cfg.QueryParams, "populate[navigation][fields][2]=order")

	guides := res[1]
	assert.Equal(t, SuitePOIGuides, guides.SuiteID)
	assert.True(t, guides.Paginated)
	assert.True(t, strings.HasPrefix(guides.QueryParams, "fields[0]=legacyTourCode&populate[poi][fields][0]=documentId"))
	assert.Contains(t, guides.QueryParams, "populate[poi][populate][thumbnail][fields][0]=url")

	pois := res[2]
	assert.Equal(t, SuitePOIs, pois.SuiteID)
	assert.Contains(t, pois.QueryParams, "fields[5]=type")
}

func TestResources_Deterministic(t *testing.T) {
	t.Parallel()

	a := Resources("out")
	b := Resources("out")
	for i := range a {
		assert.Equal(t, a[i].QueryParams, b[i].QueryParams)
	}
}
