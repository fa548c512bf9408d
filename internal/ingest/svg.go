package ingest

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MalithGihan/dqa-service/pkg/types"
)

// ParseSVG extracts rect, circle, ellipse and text nodes at any depth.
// Transforms are ignored and connectors are skipped since SVG carries no
// binding information.
func ParseSVG(b []byte) (types.Scene, error) {
	dec := xml.NewDecoder(bytes.NewReader(b))
	elems := []types.Element{}
	sawSVG := false
	tags := 0
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return types.Scene{}, err
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		attrs := attrMap(se.Attr)
		id := attrs["id"]
		if id == "" {
			id = fmt.Sprintf("svg_%s_%d", se.Name.Local, tags)
		}
		tags++
		switch se.Name.Local {
		case "svg":
			sawSVG = true
		case "rect":
			elems = append(elems, types.Element{
				ID: id, Type: types.TypeRectangle,
				X: num(attrs["x"]), Y: num(attrs["y"]),
				Width: num(attrs["width"]), Height: num(attrs["height"]),
			})
		case "circle":
			cx, cy, r := num(attrs["cx"]), num(attrs["cy"]), num(attrs["r"])
			elems = append(elems, types.Element{
				ID: id, Type: types.TypeEllipse,
				X: cx - r, Y: cy - r, Width: 2 * r, Height: 2 * r,
			})
		case "ellipse":
			cx, cy := num(attrs["cx"]), num(attrs["cy"])
			rx, ry := num(attrs["rx"]), num(attrs["ry"])
			elems = append(elems, types.Element{
				ID: id, Type: types.TypeEllipse,
				X: cx - rx, Y: cy - ry, Width: 2 * rx, Height: 2 * ry,
			})
		case "text":
			e := types.Element{ID: id, Type: types.TypeText, X: num(attrs["x"]), Y: num(attrs["y"])}
			size := attrs["font-size"]
			if size == "" {
				size = styleProp(attrs["style"], "font-size")
			}
			if fs, ok := fontSize(size); ok {
				e.FontSize = &fs
			}
			elems = append(elems, e)
		}
	}
	if !sawSVG {
		return types.Scene{}, errors.New("svg: no <svg> root element")
	}
	return types.Scene{Elements: elems}, nil
}

func attrMap(attrs []xml.Attr) map[string]string {
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		m[a.Name.Local] = strings.TrimSpace(a.Value)
	}
	return m
}

// styleProp pulls one property out of an inline CSS style attribute.
func styleProp(style, prop string) string {
	for _, decl := range strings.Split(style, ";") {
		k, v, ok := strings.Cut(decl, ":")
		if ok && strings.TrimSpace(k) == prop {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// num parses SVG lengths such as "12", "12.5px" or "3pt"; units are dropped
// and anything unparsable is 0.
func num(s string) float64 {
	s = strings.TrimSpace(s)
	end := len(s)
	for end > 0 && (s[end-1] < '0' || s[end-1] > '9') && s[end-1] != '.' {
		end--
	}
	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return f
}

// fontSize accepts absolute sizes ("14", "14px", "10.5pt"). Keywords such as
// "medium" or "inherit" and relative units report false so the element keeps
// the default size.
func fontSize(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	for _, unit := range []string{"px", "pt"} {
		if v, ok := strings.CutSuffix(s, unit); ok {
			s = strings.TrimSpace(v)
			break
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0, false
	}
	return f, true
}
