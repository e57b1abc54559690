package catalog

import (
	"encoding/xml"
	"fmt"
	"os"
)

// urdfModel is the subset of the URDF schema the catalog cares about.
type urdfModel struct {
	XMLName xml.Name `xml:"robot"`
	Name    string   `xml:"name,attr"`
	Links   []struct {
		Name string `xml:"name,attr"`
	} `xml:"link"`
	Joints []struct {
		Name string `xml:"name,attr"`
		Type string `xml:"type,attr"`
	} `xml:"joint"`
}

// Capabilities summarizes what a robot can plausibly do, derived from its
// URDF kinematic structure. Reach and payload are rough estimates used as
// planning hints, not engineering figures.
type Capabilities struct {
	Links              int
	Joints             int
	EstimatedReachM    float64
	EstimatedPayloadKg float64
}

// parseURDF reads one URDF file and derives a capability summary.
func parseURDF(path string) (string, Capabilities, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return "", Capabilities{}, fmt.Errorf("reading urdf %s: %w", path, err)
	}

	var model urdfModel
	if err := xml.Unmarshal(contents, &model); err != nil {
		return "", Capabilities{}, fmt.Errorf("parsing urdf %s: %w", path, err)
	}

	links := len(model.Links)
	return model.Name, Capabilities{
		Links:              links,
		Joints:             len(model.Joints),
		EstimatedReachM:    float64(links) * 0.5,
		EstimatedPayloadKg: float64(links) * 2,
	}, nil
}
