package stereogram

// CatalogEntry summarizes one polytope.
type CatalogEntry struct {
	Name     string
	Dim      int
	Vertices int
	Edges    int
}

func init() {
	if err := validateCatalog(); err != nil {
		panic(err)
	}
}

// validateCatalog checks every edge table against its vertex table.
func validateCatalog() error {
	for _, p := range solids {
		if err := p.validate(); err != nil {
			return err
		}
	}
	for _, p := range hypersolids {
		if err := p.validate(); err != nil {
			return err
		}
	}
	return nil
}

// Catalog lists every polytope, solids first, in cycling order.
func Catalog() []CatalogEntry {
	out := make([]CatalogEntry, 0, int(numSolids)+int(numHypersolids))
	for s := Solid(0); s < numSolids; s++ {
		p := SolidPolytope(s)
		out = append(out, CatalogEntry{p.Name, p.Dim(), len(p.Vertices), len(p.Edges)})
	}
	for h := Hypersolid(0); h < numHypersolids; h++ {
		p := HypersolidPolytope(h)
		out = append(out, CatalogEntry{p.Name, p.Dim(), len(p.Vertices), len(p.Edges)})
	}
	return out
}
