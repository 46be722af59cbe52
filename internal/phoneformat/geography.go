package phoneformat

import (
	_ "embed"
	"fmt"
	"math"
	"regexp"
	"slices"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/gobwas/glob"
	"github.com/nyaruka/phonenumbers"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// AllContinents is the pseudo continent selecting every country.
const AllContinents = "All Continents"

// isoEntryCount is the number of ISO 3166-1 entries coverage is measured against.
const isoEntryCount = 249

//go:embed countries.yaml
var countriesYAML []byte

// Country is one selectable entry of the geography dataset.
type Country struct {
	Continent     string
	Subregion     string
	Flag          string
	Name          string
	FormatExample string
}

// Label returns the display label "<flag> <name>" used as the lookup key.
func (c Country) Label() string {
	return c.Flag + " " + c.Name
}

var callingCodePattern = regexp.MustCompile(`^\+(\d+)`)

// CallingCode parses the calling code from the format example, or 0.
func (c Country) CallingCode() int {
	m := callingCodePattern.FindStringSubmatch(c.FormatExample)
	if m == nil {
		return 0
	}
	code, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return code
}

// ContinentInfo lists a continent and its subregions in dataset order.
type ContinentInfo struct {
	Name       string
	Subregions []string
}

type subregion struct {
	name   string
	labels []string
}

type continent struct {
	name       string
	subregions []subregion
}

type geography struct {
	continents []continent
	byLabel    map[string]Country
	rank       map[string]int
	sorted     []string
	// continentNames and subregionNames hold collated browse lists;
	// subregionNames[AllContinents] is the deduplicated union.
	continentNames []string
	subregionNames map[string][]string
	// entries counts listings per continent; a country may be listed under two.
	entries map[string]int
}

type yamlDataset struct {
	Continents []struct {
		Name       string `yaml:"name"`
		Subregions []struct {
			Name      string `yaml:"name"`
			Countries []struct {
				Flag   string `yaml:"flag"`
				Name   string `yaml:"name"`
				Format string `yaml:"format"`
			} `yaml:"countries"`
		} `yaml:"subregions"`
	} `yaml:"continents"`
}

var (
	geoOnce sync.Once
	geoData *geography
	geoErr  error
)

func data() *geography {
	geoOnce.Do(func() {
		geoData, geoErr = parseGeography(countriesYAML)
	})
	if geoErr != nil {
		panic(fmt.Sprintf("phoneformat: embedded country dataset is invalid: %v", geoErr))
	}
	return geoData
}

func parseGeography(raw []byte) (*geography, error) {
	var ds yamlDataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse country dataset: %w", err)
	}
	if len(ds.Continents) == 0 {
		return nil, fmt.Errorf("country dataset has no continents")
	}

	g := &geography{
		byLabel: make(map[string]Country),
		entries: make(map[string]int),
	}
	for _, yc := range ds.Continents {
		cont := continent{name: yc.Name}
		for _, ys := range yc.Subregions {
			sub := subregion{name: ys.Name}
			for _, yr := range ys.Countries {
				c := Country{
					Continent:     yc.Name,
					Subregion:     ys.Name,
					Flag:          yr.Flag,
					Name:          yr.Name,
					FormatExample: yr.Format,
				}
				if c.CallingCode() == 0 {
					return nil, fmt.Errorf("country %q has no calling code in %q", c.Name, c.FormatExample)
				}
				label := c.Label()
				if _, seen := g.byLabel[label]; !seen {
					g.byLabel[label] = c
				}
				sub.labels = append(sub.labels, label)
				g.entries[yc.Name]++
			}
			cont.subregions = append(cont.subregions, sub)
		}
		g.continents = append(g.continents, cont)
	}

	g.sorted = make([]string, 0, len(g.byLabel))
	for label := range g.byLabel {
		g.sorted = append(g.sorted, label)
	}
	col := collate.New(language.English, collate.IgnoreCase, collate.Loose)
	sort.Slice(g.sorted, func(i, j int) bool {
		a, b := g.byLabel[g.sorted[i]], g.byLabel[g.sorted[j]]
		if c := col.CompareString(a.Name, b.Name); c != 0 {
			return c < 0
		}
		return a.Label() < b.Label()
	})
	g.rank = make(map[string]int, len(g.sorted))
	for i, label := range g.sorted {
		g.rank[label] = i
	}

	g.subregionNames = make(map[string][]string, len(g.continents)+1)
	var all []string
	for _, c := range g.continents {
		g.continentNames = append(g.continentNames, c.name)
		names := make([]string, len(c.subregions))
		for i, s := range c.subregions {
			names[i] = s.name
		}
		g.subregionNames[c.name] = collateNames(col, names)
		all = append(all, names...)
	}
	g.continentNames = collateNames(col, g.continentNames)
	g.subregionNames[AllContinents] = collateNames(col, all)
	return g, nil
}

// collateNames sorts names with col and drops duplicates.
func collateNames(col *collate.Collator, names []string) []string {
	out := slices.Clone(names)
	sort.SliceStable(out, func(i, j int) bool { return col.CompareString(out[i], out[j]) < 0 })
	return slices.Compact(out)
}

// sortLabels orders labels by country name, deduplicating.
func (g *geography) sortLabels(labels []string) []string {
	seen := make(map[string]bool, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return g.rank[out[i]] < g.rank[out[j]] })
	return out
}

func (g *geography) continent(name string) (continent, bool) {
	for _, c := range g.continents {
		if c.name == name {
			return c, true
		}
	}
	return continent{}, false
}

// Continents returns continent names in alphabetical order.
func Continents() []string {
	return slices.Clone(data().continentNames)
}

// Subregions returns the subregions of a continent in alphabetical order.
// AllContinents lists every subregion once. Unknown continents yield nil.
func Subregions(continentName string) []string {
	return slices.Clone(data().subregionNames[continentName])
}

// ContinentStructure returns every continent with its subregions.
func ContinentStructure() []ContinentInfo {
	g := data()
	out := make([]ContinentInfo, len(g.continentNames))
	for i, name := range g.continentNames {
		out[i] = ContinentInfo{Name: name, Subregions: Subregions(name)}
	}
	return out
}

// Countries returns sorted country labels. An empty continent (or
// AllContinents) selects every country; an empty subregion selects the whole
// continent. Unknown names yield nil.
func Countries(continentName, subregionName string) []string {
	g := data()
	if continentName == "" || continentName == AllContinents {
		if subregionName == "" {
			return CountryList()
		}
		var labels []string
		for _, c := range g.continents {
			for _, s := range c.subregions {
				if s.name == subregionName {
					labels = append(labels, s.labels...)
				}
			}
		}
		if labels == nil {
			return nil
		}
		return g.sortLabels(labels)
	}

	c, ok := g.continent(continentName)
	if !ok {
		return nil
	}
	var labels []string
	for _, s := range c.subregions {
		if subregionName == "" || s.name == subregionName {
			labels = append(labels, s.labels...)
		}
	}
	if labels == nil {
		return nil
	}
	return g.sortLabels(labels)
}

// CountryList returns every distinct country label, sorted by name.
func CountryList() []string {
	g := data()
	return append([]string(nil), g.sorted...)
}

// Lookup returns the country for a label.
func Lookup(label string) (Country, bool) {
	c, ok := data().byLabel[label]
	return c, ok
}

// FormatExample returns the format example for a label, or "".
func FormatExample(label string) string {
	return data().byLabel[label].FormatExample
}

// CallingCode extracts the calling code for a label along with the ISO 3166
// region libphonenumber assigns to it. region is empty when the code has no
// main region.
func CallingCode(label string) (code int, region string, ok bool) {
	c, found := Lookup(label)
	if !found {
		return 0, "", false
	}
	code = c.CallingCode()
	return code, RegionForCode(code), true
}

// RegionForCode returns the main ISO 3166 region for a calling code, or "".
func RegionForCode(code int) string {
	region := phonenumbers.GetRegionCodeForCountryCode(code)
	if region == "" || region == "ZZ" || region == "001" {
		return ""
	}
	return region
}

// Search finds country labels by case-insensitive substring. Queries holding
// glob metacharacters (* ? [ {) are matched as a glob against either the
// full label or the bare country name.
func Search(query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	g := data()

	match := func(c Country) bool {
		return strings.Contains(strings.ToLower(c.Label()), q)
	}
	if strings.ContainsAny(q, "*?[{") {
		pattern, err := glob.Compile(q)
		if err != nil {
			return nil
		}
		match = func(c Country) bool {
			return pattern.Match(strings.ToLower(c.Name)) || pattern.Match(strings.ToLower(c.Label()))
		}
	}

	var out []string
	for _, label := range g.sorted {
		if match(g.byLabel[label]) {
			out = append(out, label)
		}
	}
	return out
}

// LimitCount is one bucket of the digit-limit distribution.
type LimitCount struct {
	Limit int
	Codes int
}

// ContinentStats summarizes one continent.
type ContinentStats struct {
	Name       string
	Countries  int
	Subregions int
}

// Stats summarizes the dataset and the digit-limit table.
type Stats struct {
	TotalCountries    int
	TotalCallingCodes int
	// RegionMapped counts calling codes libphonenumber maps to a region.
	RegionMapped           int
	DigitLimitDistribution []LimitCount
	Continents             []ContinentStats
	// CoveragePercent is TotalCountries against the ISO 3166-1 entry count,
	// rounded to one decimal.
	CoveragePercent float64
}

// DatasetStats computes statistics about the dataset.
func DatasetStats() Stats {
	g := data()
	s := Stats{
		TotalCountries:    len(g.byLabel),
		TotalCallingCodes: len(localDigitLimits),
		CoveragePercent:   math.Round(float64(len(g.byLabel))/isoEntryCount*1000) / 10,
	}

	dist := make(map[int]int)
	for code, limit := range localDigitLimits {
		dist[limit]++
		if RegionForCode(code) != "" {
			s.RegionMapped++
		}
	}
	for limit, n := range dist {
		s.DigitLimitDistribution = append(s.DigitLimitDistribution, LimitCount{Limit: limit, Codes: n})
	}
	sort.Slice(s.DigitLimitDistribution, func(i, j int) bool {
		return s.DigitLimitDistribution[i].Limit < s.DigitLimitDistribution[j].Limit
	})

	for _, c := range g.continents {
		s.Continents = append(s.Continents, ContinentStats{
			Name:       c.name,
			Countries:  g.entries[c.name],
			Subregions: len(c.subregions),
		})
	}
	return s
}
