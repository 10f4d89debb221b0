package config

import (
	"github.com/hushd/hush/internal/region"
	"github.com/hushd/hush/internal/rules"
)

// Document is the persisted configuration: every rule, every region, and
// the debug flag. It is the sole unit of durable state and is replaced
// wholesale on each save.
//
// yaml.v3 ignores mapping keys it does not recognize, so documents written
// by newer or older versions of this engine load cleanly; unknown fields
// are dropped on the next save.
type Document struct {
	Rules   []RuleRecord   `yaml:"rules" json:"rules"`
	Regions []RegionRecord `yaml:"regions" json:"regions"`
	Debug   bool           `yaml:"debug" json:"debug"`
}

// RuleRecord is the durable form of one rule.
type RuleRecord struct {
	Event   string `yaml:"event" json:"event"`
	Scope   string `yaml:"scope" json:"scope"`
	Enabled *bool  `yaml:"enabled,omitempty" json:"enabled,omitempty"` // absent means true
	World   string `yaml:"world,omitempty" json:"world,omitempty"`
	Region  string `yaml:"region,omitempty" json:"region,omitempty"`
}

// RegionRecord is the durable form of one region.
type RegionRecord struct {
	Name        string       `yaml:"name" json:"name"`
	World       string       `yaml:"world" json:"world"`
	Pos1        region.Point `yaml:"pos1" json:"pos1"`
	Pos2        region.Point `yaml:"pos2" json:"pos2"`
	Description string       `yaml:"description,omitempty" json:"description,omitempty"`
}

// NewDocument flattens live rule and region state into a Document.
func NewDocument(ruleList []rules.Rule, regionList []region.Region, debug bool) *Document {
	doc := &Document{Debug: debug}
	for _, r := range ruleList {
		rec := RuleRecord{
			Event:  r.Event,
			Scope:  string(r.Scope),
			World:  r.World,
			Region: r.Region,
		}
		if !r.Enabled {
			enabled := false
			rec.Enabled = &enabled
		}
		doc.Rules = append(doc.Rules, rec)
	}
	for _, rg := range regionList {
		doc.Regions = append(doc.Regions, RegionRecord{
			Name:        rg.Name,
			World:       rg.World,
			Pos1:        rg.Min,
			Pos2:        rg.Max,
			Description: rg.Description,
		})
	}
	return doc
}

// Rule converts the record back to a live rule. Records with an invalid
// scope are reported by the caller via Reconcile, not here.
func (rec RuleRecord) Rule() (rules.Rule, error) {
	scope, err := rules.ParseScope(rec.Scope)
	if err != nil {
		return rules.Rule{}, err
	}
	r := rules.NewRule(rec.Event, scope, rec.World, rec.Region)
	if rec.Enabled != nil {
		r.Enabled = *rec.Enabled
	}
	return r, nil
}

// Region converts the record back to a live region, normalizing corners.
func (rec RegionRecord) Region() region.Region {
	return region.New(rec.Name, rec.World, rec.Pos1, rec.Pos2, rec.Description)
}
