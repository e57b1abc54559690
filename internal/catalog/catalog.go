// Package catalog loads the robot reference data: URDF kinematic descriptions
// merged with the purchase and operating cost metadata. The catalog is loaded
// once at process start and passed around as an explicit read-only table.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/robotics-advisor/planner/internal/costing"
)

const (
	urdfDirName      = "urdfs"
	metadataFileName = "robot_metadata.json"
)

// Robot is one catalog entry: URDF-derived capabilities plus cost metadata.
type Robot struct {
	Name         string
	URDFFilename string
	Capabilities Capabilities

	PurchasePrice  float64
	EndEffectorPct float64
	OpexPerMin     float64
}

// metadataEntry mirrors one record of robot_metadata.json, keyed by URDF filename.
type metadataEntry struct {
	PurchasePrice  float64 `json:"purchase_price"`
	OpexPerMin     float64 `json:"op_cost_per_min"`
	EndEffectorPct float64 `json:"end_effector_cost_percent"`
}

// Catalog is the read-only robot reference table.
type Catalog struct {
	robots []Robot
	byName map[string]Robot
}

// Load scans assetsDir/urdfs/*.urdf, parses each file and merges the cost
// metadata from assetsDir/robot_metadata.json. URDF files that fail to parse
// are skipped with a warning; a missing metadata file is an error since the
// cost engine cannot run without purchase figures.
func Load(assetsDir string) (*Catalog, error) {
	logger := zap.S().Named("catalog")

	metadata, err := loadMetadata(filepath.Join(assetsDir, metadataFileName))
	if err != nil {
		return nil, err
	}

	urdfDir := filepath.Join(assetsDir, urdfDirName)
	entries, err := os.ReadDir(urdfDir)
	if err != nil {
		return nil, fmt.Errorf("reading urdf directory %s: %w", urdfDir, err)
	}

	robots := make([]Robot, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".urdf") {
			continue
		}

		name, capabilities, err := parseURDF(filepath.Join(urdfDir, entry.Name()))
		if err != nil {
			logger.Warnw("skipping unparsable urdf", "file", entry.Name(), "error", err)
			continue
		}

		// A robot without cost figures cannot be priced; leave it out so the
		// engine surfaces a missing-robot error instead of a free robot.
		meta, ok := metadata[entry.Name()]
		if !ok {
			logger.Warnw("skipping robot without cost metadata", "file", entry.Name(), "robot", name)
			continue
		}

		robots = append(robots, Robot{
			Name:           name,
			URDFFilename:   entry.Name(),
			Capabilities:   capabilities,
			PurchasePrice:  meta.PurchasePrice,
			OpexPerMin:     meta.OpexPerMin,
			EndEffectorPct: meta.EndEffectorPct,
		})
	}

	sort.Slice(robots, func(i, j int) bool { return robots[i].Name < robots[j].Name })

	byName := make(map[string]Robot, len(robots))
	for _, r := range robots {
		byName[r.Name] = r
	}

	logger.Infow("robot catalog loaded", "robots", len(robots))
	return &Catalog{robots: robots, byName: byName}, nil
}

func loadMetadata(path string) (map[string]metadataEntry, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading robot metadata %s: %w", path, err)
	}
	metadata := make(map[string]metadataEntry)
	if err := json.Unmarshal(contents, &metadata); err != nil {
		return nil, fmt.Errorf("parsing robot metadata %s: %w", path, err)
	}
	return metadata, nil
}

// Robots returns all entries sorted by name.
func (c *Catalog) Robots() []Robot {
	return c.robots
}

// Lookup finds a robot by its unique name.
func (c *Catalog) Lookup(name string) (Robot, bool) {
	r, ok := c.byName[name]
	return r, ok
}

// CostTable projects the catalog into the lookup table the cost engine consumes.
func (c *Catalog) CostTable() map[string]costing.Robot {
	table := make(map[string]costing.Robot, len(c.robots))
	for _, r := range c.robots {
		table[r.Name] = costing.Robot{
			Name:           r.Name,
			PurchasePrice:  r.PurchasePrice,
			EndEffectorPct: r.EndEffectorPct,
			OpexPerMin:     r.OpexPerMin,
		}
	}
	return table
}
