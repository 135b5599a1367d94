package transition

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
)

func TestCatalog_MarkupIsWellFormed(t *testing.T) {
	for _, d := range Default().All() {
		t.Run(string(d.ID), func(t *testing.T) {
			doc := etree.NewDocument()
			// slide root always binds "p"
			src := `<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">` + d.Markup + `</p:sld>`
			if err := doc.ReadFromString(src); err != nil {
				t.Fatalf("markup does not parse: %v", err)
			}
			if doc.FindElement("//p:transition") == nil {
				t.Error("markup has no p:transition element")
			}
			if !strings.Contains(d.Markup, Marker) {
				t.Error("markup does not contain transition marker")
			}
			if len(d.Description) == 0 {
				t.Error("missing description")
			}
		})
	}
}

func TestCatalog_RichHasFallback(t *testing.T) {
	var rich, plain int
	for _, d := range Default().All() {
		if !d.Rich {
			plain++
			if strings.Contains(d.Markup, "mc:AlternateContent") {
				t.Errorf("%s: plain transition must not use alternate content", d.ID)
			}
			continue
		}
		rich++

		doc := etree.NewDocument()
		if err := doc.ReadFromString(`<p:sld xmlns:p="urn:p">` + d.Markup + `</p:sld>`); err != nil {
			t.Fatalf("%s: markup does not parse: %v", d.ID, err)
		}
		choice := doc.FindElement("//mc:Choice")
		if choice == nil || choice.SelectAttrValue("Requires", "") != d.Requires {
			t.Errorf("%s: choice does not require %q", d.ID, d.Requires)
		}
		fallback := doc.FindElement("//mc:Fallback/p:transition")
		if fallback == nil {
			t.Fatalf("%s: no fallback transition", d.ID)
		}
		fb, ok := Default().Lookup(d.Fallback)
		if !ok {
			t.Fatalf("%s: fallback %q is not in catalog", d.ID, d.Fallback)
		}
		if !strings.Contains(d.Markup, "<mc:Fallback>"+fb.Markup+"</mc:Fallback>") {
			t.Errorf("%s: fallback markup differs from %s", d.ID, fb.ID)
		}
	}
	if rich == 0 || plain == 0 {
		t.Errorf("catalog must have rich and plain transitions, got %d and %d", rich, plain)
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		defs []Definition
	}{
		{"duplicate", []Definition{{ID: Fade}, {ID: Fade}}},
		{"missing fallback", []Definition{{ID: Morph, Rich: true, Requires: "p159", Fallback: Fade}}},
		{"rich fallback", []Definition{
			{ID: Morph, Rich: true, Requires: "p159", Fallback: Zoom},
			{ID: Zoom, Rich: true, Requires: "p14", Fallback: Morph},
		}},
		{"unknown feature", []Definition{{ID: Morph, Rich: true, Requires: "p2077", Fallback: Fade}, {ID: Fade}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := build(tt.defs); err == nil {
				t.Error("build() expected error")
			}
		})
	}
}

func TestParseID(t *testing.T) {
	for _, name := range IDNames() {
		id, err := ParseID(name)
		if err != nil {
			t.Errorf("ParseID(%q) error = %v", name, err)
		}
		if string(id) != name {
			t.Errorf("ParseID(%q) = %q", name, id)
		}
	}
	if id, err := ParseID(" Morph "); err != nil || id != Morph {
		t.Errorf("ParseID(\" Morph \") = %q, %v", id, err)
	}
	if _, err := ParseID("spin"); err == nil {
		t.Error("ParseID(\"spin\") expected error")
	}
}
