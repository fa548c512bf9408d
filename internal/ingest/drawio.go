package ingest

import (
	"encoding/xml"
	"errors"
	"strconv"
	"strings"

	"github.com/MalithGihan/dqa-service/pkg/types"
)

type mxfile struct {
	Diagram []diagram `xml:"diagram"`
}
type diagram struct {
	MxGraphModel *mxGraphModel `xml:"mxGraphModel"`
	Compressed   string        `xml:",chardata"`
}
type mxGraphModel struct {
	Root root `xml:"root"`
}
type root struct {
	Cells []mxCell `xml:"mxCell"`
}

type mxCell struct {
	ID       string      `xml:"id,attr"`
	Value    string      `xml:"value,attr"`
	Style    string      `xml:"style,attr"`
	Vertex   string      `xml:"vertex,attr"` // "1" if node
	Edge     string      `xml:"edge,attr"`   // "1" if edge
	Source   string      `xml:"source,attr"`
	Target   string      `xml:"target,attr"`
	Parent   string      `xml:"parent,attr"`
	Geometry *mxGeometry `xml:"mxGeometry"`
}

type mxGeometry struct {
	X      float64 `xml:"x,attr"`
	Y      float64 `xml:"y,attr"`
	Width  float64 `xml:"width,attr"`
	Height float64 `xml:"height,attr"`
}

var errCompressed = errors.New("drawio: compressed diagrams are not supported, save uncompressed")

// ParseDrawIO maps an uncompressed draw.io file to scene elements. Child
// cells are positioned relative to their parent vertex, so offsets are
// accumulated up the parent chain. Edges become arrows bound to their
// source and target cells.
func ParseDrawIO(b []byte) (types.Scene, error) {
	var models []mxGraphModel
	var doc mxfile
	if err := xml.Unmarshal(b, &doc); err == nil && len(doc.Diagram) > 0 {
		for _, d := range doc.Diagram {
			if d.MxGraphModel == nil {
				if strings.TrimSpace(d.Compressed) != "" {
					return types.Scene{}, errCompressed
				}
				continue
			}
			models = append(models, *d.MxGraphModel)
		}
	} else {
		// bare <mxGraphModel> export
		var m mxGraphModel
		if err := xml.Unmarshal(b, &m); err != nil {
			return types.Scene{}, err
		}
		models = append(models, m)
	}

	elems := []types.Element{}
	for _, m := range models {
		elems = append(elems, cellsToElements(m.Root.Cells)...)
	}
	return types.Scene{Elements: elems}, nil
}

func cellsToElements(cells []mxCell) []types.Element {
	byID := make(map[string]mxCell, len(cells))
	for _, c := range cells {
		byID[c.ID] = c
	}

	var out []types.Element
	for _, c := range cells {
		switch {
		case c.Vertex == "1":
			style := parseStyle(c.Style)
			e := types.Element{ID: c.ID, Type: guessTypeFromStyle(style)}
			if c.Geometry != nil {
				ox, oy := parentOffset(c, byID)
				e.X, e.Y = c.Geometry.X+ox, c.Geometry.Y+oy
				e.Width, e.Height = c.Geometry.Width, c.Geometry.Height
			}
			if e.Type == types.TypeText {
				if fs, err := strconv.ParseFloat(style["fontSize"], 64); err == nil {
					e.FontSize = &fs
				}
			}
			out = append(out, e)
		case c.Edge == "1":
			e := types.Element{ID: c.ID, Type: types.TypeArrow}
			if c.Source != "" {
				e.StartBinding = &types.Binding{ElementID: c.Source}
			}
			if c.Target != "" {
				e.EndBinding = &types.Binding{ElementID: c.Target}
			}
			out = append(out, e)
		}
	}
	return out
}

func parentOffset(c mxCell, byID map[string]mxCell) (x, y float64) {
	seen := map[string]bool{c.ID: true}
	for p, ok := byID[c.Parent]; ok && p.Vertex == "1" && !seen[p.ID]; p, ok = byID[p.Parent] {
		seen[p.ID] = true
		if p.Geometry != nil {
			x += p.Geometry.X
			y += p.Geometry.Y
		}
	}
	return x, y
}

// parseStyle splits "ellipse;whiteSpace=wrap;fontSize=14;" into a map.
// Bare tokens such as "ellipse" map to "".
func parseStyle(s string) map[string]string {
	m := map[string]string{}
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k, v, _ := strings.Cut(part, "=")
		m[k] = v
	}
	return m
}

func guessTypeFromStyle(style map[string]string) string {
	has := func(k string) bool { _, ok := style[k]; return ok }
	switch {
	case has("text"):
		return types.TypeText
	case has("ellipse"), style["shape"] == "ellipse":
		return types.TypeEllipse
	case has("rhombus"), style["shape"] == "rhombus":
		return types.TypeDiamond
	case has("swimlane"), has("group"), style["container"] == "1":
		return types.TypeFrame
	default:
		return types.TypeRectangle
	}
}
