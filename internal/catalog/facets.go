package catalog

// FacetValue 单个筛选项及命中数
type FacetValue struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Facets 筛选面板元数据
type Facets struct {
	Brands     []FacetValue `json:"brands"`
	Conditions []FacetValue `json:"conditions"`
	Storage    []FacetValue `json:"storage"`
	Features   []FacetValue `json:"features"`
	InStock    int          `json:"in_stock"`
	OutOfStock int          `json:"out_of_stock"`
}

// Facets 汇总目录中出现过的筛选项（按目录中首次出现的顺序）
func (c *Catalog) Facets() Facets {
	facets := Facets{}
	brands := newFacetCounter()
	conditions := newFacetCounter()
	storage := newFacetCounter()
	features := newFacetCounter()

	for _, p := range c.products {
		brands.add(p.Brand)
		conditions.add(p.Condition)
		storage.add(p.Storage)
		for _, feature := range p.Features {
			features.add(feature)
		}
		if p.InStock {
			facets.InStock++
		} else {
			facets.OutOfStock++
		}
	}

	facets.Brands = brands.values()
	facets.Conditions = conditions.values()
	facets.Storage = storage.values()
	facets.Features = features.values()
	return facets
}

// facetCounter 保序计数器
type facetCounter struct {
	order  []string
	counts map[string]int
}

func newFacetCounter() *facetCounter {
	return &facetCounter{counts: make(map[string]int)}
}

func (fc *facetCounter) add(value string) {
	if value == "" {
		return
	}
	if _, ok := fc.counts[value]; !ok {
		fc.order = append(fc.order, value)
	}
	fc.counts[value]++
}

func (fc *facetCounter) values() []FacetValue {
	values := make([]FacetValue, 0, len(fc.order))
	for _, v := range fc.order {
		values = append(values, FacetValue{Value: v, Count: fc.counts[v]})
	}
	return values
}
