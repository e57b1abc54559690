package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	c, err := Load("testdata")
	require.NoError(t, err)

	// broken.urdf (unparsable) and ghost.urdf (no cost metadata) are
	// skipped, not fatal.
	require.Len(t, c.Robots(), 2)

	atlas, ok := c.Lookup("atlas")
	require.True(t, ok)
	assert.Equal(t, "atlas.urdf", atlas.URDFFilename)
	assert.Equal(t, 4, atlas.Capabilities.Links)
	assert.Equal(t, 3, atlas.Capabilities.Joints)
	assert.InDelta(t, 2.0, atlas.Capabilities.EstimatedReachM, 1e-9)
	assert.InDelta(t, 8.0, atlas.Capabilities.EstimatedPayloadKg, 1e-9)
	assert.InDelta(t, 250000, atlas.PurchasePrice, 1e-9)
	assert.InDelta(t, 0.5, atlas.OpexPerMin, 1e-9)
	assert.InDelta(t, 0.25, atlas.EndEffectorPct, 1e-9)

	_, ok = c.Lookup("ghost")
	assert.False(t, ok)
}

func TestLoad_SortedByName(t *testing.T) {
	c, err := Load("testdata")
	require.NoError(t, err)

	robots := c.Robots()
	require.Len(t, robots, 2)
	assert.Equal(t, "atlas", robots[0].Name)
	assert.Equal(t, "digit", robots[1].Name)
}

func TestLoad_MissingMetadataFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "does-not-exist"))
	assert.Error(t, err)
}

func TestCostTable(t *testing.T) {
	c, err := Load("testdata")
	require.NoError(t, err)

	table := c.CostTable()
	require.Len(t, table, 2)
	digit := table["digit"]
	assert.Equal(t, "digit", digit.Name)
	assert.InDelta(t, 200000, digit.PurchasePrice, 1e-9)
	assert.InDelta(t, 0.1, digit.EndEffectorPct, 1e-9)
	assert.InDelta(t, 0.35, digit.OpexPerMin, 1e-9)
}

func TestParseURDF(t *testing.T) {
	name, capabilities, err := parseURDF(filepath.Join("testdata", "urdfs", "digit.urdf"))
	require.NoError(t, err)
	assert.Equal(t, "digit", name)
	assert.Equal(t, 6, capabilities.Links)
	assert.Equal(t, 5, capabilities.Joints)
}

func TestParseURDF_Malformed(t *testing.T) {
	_, _, err := parseURDF(filepath.Join("testdata", "urdfs", "broken.urdf"))
	assert.Error(t, err)
}
