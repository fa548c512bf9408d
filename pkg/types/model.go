package types

// Element types the analyzer knows about. Anything else still counts
// toward the element total but is skipped by shape/arrow checks.
const (
	TypeRectangle = "rectangle"
	TypeEllipse   = "ellipse"
	TypeDiamond   = "diamond"
	TypeText      = "text"
	TypeArrow     = "arrow"
	TypeFrame     = "frame"
)

type Binding struct {
	ElementID string `json:"elementId,omitempty"`
}

// Element is one visual primitive of a diagram snapshot.
type Element struct {
	ID           string   `json:"id,omitempty"`
	Type         string   `json:"type"`
	X            float64  `json:"x"`
	Y            float64  `json:"y"`
	Width        float64  `json:"width"`
	Height       float64  `json:"height"`
	FontSize     *float64 `json:"fontSize,omitempty"` // text only; nil means 20
	StartBinding *Binding `json:"startBinding,omitempty"`
	EndBinding   *Binding `json:"endBinding,omitempty"`
	IsDeleted    bool     `json:"isDeleted,omitempty"`
}

// IsShape reports whether e is a rectangle, ellipse or diamond.
func (e Element) IsShape() bool {
	switch e.Type {
	case TypeRectangle, TypeEllipse, TypeDiamond:
		return true
	}
	return false
}

// Scene is the snapshot handed to the analyzer. Order is irrelevant.
type Scene struct {
	Elements []Element `json:"elements"`
}

// Live returns the scene without elements marked deleted. Only saved editor
// files are filtered this way; element_count otherwise covers every element.
func (s Scene) Live() Scene {
	out := Scene{Elements: make([]Element, 0, len(s.Elements))}
	for _, e := range s.Elements {
		if !e.IsDeleted {
			out.Elements = append(out.Elements, e)
		}
	}
	return out
}

type Report struct {
	Score        int      `json:"score"`
	Grade        string   `json:"grade"`
	QualityLevel string   `json:"quality_level"`
	Issues       []string `json:"issues"`
	Warnings     []string `json:"warnings"`
	Suggestions  []string `json:"suggestions"`
	ElementCount int      `json:"element_count"`
}
