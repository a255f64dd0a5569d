package warp

import (
	"encoding/xml"
	"fmt"
	"os"

	"github.com/younwookim/apputils/internal/domain/geom"
)

type xmlCorner struct {
	X *float64 `xml:"x"`
	Y *float64 `xml:"y"`
}

type xmlQuad struct {
	XMLName    xml.Name   `xml:"quad"`
	UpperLeft  *xmlCorner `xml:"upperLeft"`
	UpperRight *xmlCorner `xml:"upperRight"`
	LowerRight *xmlCorner `xml:"lowerRight"`
	LowerLeft  *xmlCorner `xml:"lowerLeft"`
}

func (q *xmlQuad) corners() [NumPoints]*xmlCorner {
	return [NumPoints]*xmlCorner{q.UpperLeft, q.UpperRight, q.LowerRight, q.LowerLeft}
}

func cornerPoint(c *xmlCorner, def geom.Point) geom.Point {
	p := def
	if c == nil {
		return p
	}
	if c.X != nil {
		p.X = *c.X
	}
	if c.Y != nil {
		p.Y = *c.Y
	}
	return p
}

func newCorner(p geom.Point) *xmlCorner {
	x, y := p.X, p.Y
	return &xmlCorner{X: &x, Y: &y}
}

// LoadSettings reads the control points from an XML settings file.
// Missing fields fall back to the identity points. On error the current
// points are left untouched.
func (w *Warper) LoadSettings(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read warp settings %s: %w", path, err)
	}

	var q xmlQuad
	if err := xml.Unmarshal(data, &q); err != nil {
		return fmt.Errorf("failed to parse warp settings %s: %w", path, err)
	}

	for i, c := range q.corners() {
		w.points[i] = cornerPoint(c, DefaultPoints[i])
	}
	w.rebuild()

	w.logger.Debug("loaded warp settings", "path", path)
	return nil
}

// SaveSettings writes the control points to an XML settings file,
// overwriting any existing file.
func (w *Warper) SaveSettings(path string) error {
	q := xmlQuad{
		UpperLeft:  newCorner(w.points[UpperLeft]),
		UpperRight: newCorner(w.points[UpperRight]),
		LowerRight: newCorner(w.points[LowerRight]),
		LowerLeft:  newCorner(w.points[LowerLeft]),
	}

	data, err := xml.MarshalIndent(q, "", "\t")
	if err != nil {
		return fmt.Errorf("failed to encode warp settings: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write warp settings %s: %w", path, err)
	}

	w.logger.Debug("saved warp settings", "path", path)
	return nil
}
