package freq

import (
	"sort"

	"github.com/AndrewBergman1/HaploMapper-v1.0/bins"
)

// SiteKey identifies one sampling site within one combined bin. Distinct
// coordinates inside the same bin stay distinct so the dashboard can place
// markers on a map.
type SiteKey struct {
	Latitude  float64
	Longitude float64
	Bin       bins.CombinedBin
}

type siteCounts struct {
	y  map[string]int
	mt map[string]int
}

// SiteTable aggregates both lineages per sampling site. It feeds the
// dashboard map; the per-lineage Tables remain the primary output contract.
type SiteTable struct {
	sites map[SiteKey]*siteCounts
}

func NewSiteTable() *SiteTable {
	return &SiteTable{sites: make(map[SiteKey]*siteCounts)}
}

func (s *SiteTable) counts(key SiteKey) *siteCounts {
	c, ok := s.sites[key]
	if !ok {
		c = &siteCounts{y: make(map[string]int), mt: make(map[string]int)}
		s.sites[key] = c
	}

	return c
}

// AddY records one sample's basal Y haplogroup at a site.
func (s *SiteTable) AddY(key SiteKey, basal string) {
	s.counts(key).y[basal]++
}

// AddMT records one sample's basal mitochondrial haplogroup at a site.
func (s *SiteTable) AddMT(key SiteKey, basal string) {
	s.counts(key).mt[basal]++
}

// YCounts returns the Y haplogroup counts at a site.
func (s *SiteTable) YCounts(key SiteKey) map[string]int {
	return copyCounts(s.sites[key], func(c *siteCounts) map[string]int { return c.y })
}

// MTCounts returns the mitochondrial haplogroup counts at a site.
func (s *SiteTable) MTCounts(key SiteKey) map[string]int {
	return copyCounts(s.sites[key], func(c *siteCounts) map[string]int { return c.mt })
}

func copyCounts(c *siteCounts, pick func(*siteCounts) map[string]int) map[string]int {
	out := make(map[string]int)
	if c == nil {
		return out
	}

	for k, v := range pick(c) {
		out[k] = v
	}

	return out
}

// Keys returns every site sorted by entity, interval lower bound, latitude
// and longitude, fixing the exported row order.
func (s *SiteTable) Keys() []SiteKey {
	out := make([]SiteKey, 0, len(s.sites))
	for k := range s.sites {
		out = append(out, k)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Bin.Entity != out[j].Bin.Entity {
			return out[i].Bin.Entity < out[j].Bin.Entity
		}
		if out[i].Bin.Ages.Lower != out[j].Bin.Ages.Lower {
			return out[i].Bin.Ages.Lower < out[j].Bin.Ages.Lower
		}
		if out[i].Latitude != out[j].Latitude {
			return out[i].Latitude < out[j].Latitude
		}

		return out[i].Longitude < out[j].Longitude
	})

	return out
}
