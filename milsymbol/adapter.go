package milsymbol

import "github.com/teranos/milassist/sidc"

// Renderer adapts New to sidc.Renderer.
type Renderer struct{}

var _ sidc.Renderer = Renderer{}

// Render builds the symbol for code.
func (Renderer) Render(code string) (sidc.RenderedSymbol, error) {
	s, err := New(code)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Info reports the metadata in the shape sidc expects.
func (s *Symbol) Info() sidc.RenderInfo {
	m := s.Metadata()
	return sidc.RenderInfo{
		Affiliation:  m.Affiliation,
		Context:      m.Context,
		Dimension:    m.Dimension,
		Echelon:      m.Echelon,
		Headquarters: m.Headquarters,
		TaskForce:    m.TaskForce,
		Activity:     m.Activity,
		Civilian:     m.Civilian,
		Condition:    m.Condition,
	}
}
