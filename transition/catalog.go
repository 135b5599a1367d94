// Package transition holds fixed catalog of slide transition effects and
// sequences used to assign them to slides.
package transition

import (
	"fmt"
	"strings"
)

// Marker is present in slide markup when slide already has transition, either
// plain or wrapped in mc:AlternateContent.
const Marker = "<p:transition"

// ID identifies catalog entry.
type ID string

const (
	Morph    ID = "morph"
	Fade     ID = "fade"
	Push     ID = "push"
	Wipe     ID = "wipe"
	Split    ID = "split"
	Cover    ID = "cover"
	Cut      ID = "cut"
	Dissolve ID = "dissolve"
	Zoom     ID = "zoom"
)

const (
	nsMC   = "http://schemas.openxmlformats.org/markup-compatibility/2006"
	nsP14  = "http://schemas.microsoft.com/office/powerpoint/2010/main"
	nsP159 = "http://schemas.microsoft.com/office/powerpoint/2015/09/main"
)

// player features rich transitions could require, prefix to namespace
var features = map[string]string{
	"p14":  nsP14,
	"p159": nsP159,
}

// Definition is immutable catalog entry.
type Definition struct {
	ID          ID
	Description string
	// Rich effects need player feature (Requires) and carry Fallback for
	// players without it.
	Rich     bool
	Requires string
	Fallback ID
	// Markup is a complete fragment ready to be put into slide root.
	Markup string

	element string
}

// Catalog is read-only set of definitions. It is built once and is safe for
// concurrent use.
type Catalog struct {
	defs  map[ID]Definition
	order []ID
}

var defaultCatalog = mustBuild([]Definition{
	{
		ID:          Morph,
		Description: "morph objects between slides (PowerPoint 2019+)",
		Rich:        true,
		Requires:    "p159",
		Fallback:    Fade,
		element: `<p:transition xmlns:p14="` + nsP14 + `" spd="slow" p14:dur="2000">` +
			`<p159:morph option="byObject"/></p:transition>`,
	},
	{ID: Fade, Description: "smooth fade", element: `<p:transition spd="med"><p:fade/></p:transition>`},
	{ID: Push, Description: "next slide pushes previous one up", element: `<p:transition spd="med"><p:push dir="u"/></p:transition>`},
	{ID: Wipe, Description: "wipe from the right", element: `<p:transition spd="med"><p:wipe dir="r"/></p:transition>`},
	{ID: Split, Description: "vertical split out", element: `<p:transition spd="med"><p:split orient="vert" dir="out"/></p:transition>`},
	{ID: Cover, Description: "next slide covers previous one from the right", element: `<p:transition spd="med"><p:cover dir="l"/></p:transition>`},
	{ID: Cut, Description: "instant cut", element: `<p:transition><p:cut/></p:transition>`},
	{ID: Dissolve, Description: "dissolve", element: `<p:transition spd="med"><p:dissolve/></p:transition>`},
	{ID: Zoom, Description: "zoom in", element: `<p:transition spd="med"><p:zoom dir="in"/></p:transition>`},
})

func mustBuild(defs []Definition) *Catalog {
	c, err := build(defs)
	if err != nil {
		panic(err)
	}
	return c
}

func build(defs []Definition) (*Catalog, error) {
	c := &Catalog{defs: make(map[ID]Definition, len(defs))}
	for _, d := range defs {
		if _, exists := c.defs[d.ID]; exists {
			return nil, fmt.Errorf("duplicate transition %q", d.ID)
		}
		c.defs[d.ID] = d
		c.order = append(c.order, d.ID)
	}
	// fallbacks may be defined later in the list
	for _, id := range c.order {
		d := c.defs[id]
		if !d.Rich {
			d.Markup = d.element
			c.defs[id] = d
			continue
		}
		ns, ok := features[d.Requires]
		if !ok {
			return nil, fmt.Errorf("transition %q: unknown feature %q", id, d.Requires)
		}
		fb, ok := c.defs[d.Fallback]
		if !ok || fb.Rich {
			return nil, fmt.Errorf("transition %q: fallback %q must be a plain transition from the catalog", id, d.Fallback)
		}
		d.Markup = alternateContent(d.Requires, ns, d.element, fb.element)
		c.defs[id] = d
	}
	return c, nil
}

func alternateContent(requires, ns, choice, fallback string) string {
	var b strings.Builder
	b.WriteString(`<mc:AlternateContent xmlns:mc="` + nsMC + `">`)
	b.WriteString(`<mc:Choice xmlns:` + requires + `="` + ns + `" Requires="` + requires + `">`)
	b.WriteString(choice)
	b.WriteString(`</mc:Choice><mc:Fallback>`)
	b.WriteString(fallback)
	b.WriteString(`</mc:Fallback></mc:AlternateContent>`)
	return b.String()
}

// Default returns built-in catalog.
func Default() *Catalog {
	return defaultCatalog
}

// Lookup returns definition by ID.
func (c *Catalog) Lookup(id ID) (Definition, bool) {
	d, ok := c.defs[id]
	return d, ok
}

// All returns definitions in catalog order.
func (c *Catalog) All() []Definition {
	out := make([]Definition, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.defs[id])
	}
	return out
}

// IDNames returns names of all known transitions in catalog order.
func IDNames() []string {
	out := make([]string, 0, len(defaultCatalog.order))
	for _, id := range defaultCatalog.order {
		out = append(out, string(id))
	}
	return out
}

// ParseID converts name into known transition ID.
func ParseID(name string) (ID, error) {
	id := ID(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := defaultCatalog.defs[id]; !ok {
		return "", fmt.Errorf("%q is not a valid transition, try [%s]", name, strings.Join(IDNames(), ", "))
	}
	return id, nil
}

func (id ID) String() string {
	return string(id)
}
