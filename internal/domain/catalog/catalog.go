// Package catalog is the static quotation template reference data and the
// ordering rules shared by template reads and offer reads.
package catalog

import (
	"sort"
	"strings"

	"aseguraopen/internal/domain/entities"

	"github.com/google/uuid"
)

// templateNamespace scopes deterministic template IDs.
var templateNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("aseguraopen/quotation-templates"))

type seed struct {
	insuranceType entities.InsuranceType
	coverageType  string
	coverageLevel string
	base          float64
	deductible    float64
}

var seeds = []seed{
	{entities.InsuranceTypeAuto, "Responsabilidad Civil", "Básica", 45.00, 500},
	{entities.InsuranceTypeAuto, "Responsabilidad Civil", "Intermedia", 65.00, 250},
	{entities.InsuranceTypeAuto, "Todo Riesgo", "Básica", 95.00, 1000},
	{entities.InsuranceTypeAuto, "Todo Riesgo", "Premium", 145.00, 0},
	{entities.InsuranceTypeMoto, "Responsabilidad Civil", "Básica", 25.00, 1000},
	{entities.InsuranceTypeMoto, "Responsabilidad Civil", "Intermedia", 40.00, 500},
	{entities.InsuranceTypeMoto, "Todo Riesgo", "Básica", 60.00, 1500},
	{entities.InsuranceTypeMoto, "Todo Riesgo", "Premium", 95.00, 0},
}

// TemplateID derives the storage key of a template from its identifying
// triple, so seeding the same row twice targets the same item.
func TemplateID(t entities.InsuranceType, coverageType, coverageLevel string) string {
	key := strings.Join([]string{string(t), coverageType, coverageLevel}, "|")
	return uuid.NewSHA1(templateNamespace, []byte(key)).String()
}

// Default returns a fresh copy of the seeded catalog.
func Default() []entities.QuotationTemplate {
	out := make([]entities.QuotationTemplate, 0, len(seeds))
	for _, s := range seeds {
		out = append(out, entities.QuotationTemplate{
			ID:                 TemplateID(s.insuranceType, s.coverageType, s.coverageLevel),
			InsuranceType:      s.insuranceType,
			CoverageType:       s.coverageType,
			CoverageLevel:      s.coverageLevel,
			BaseMonthlyPremium: s.base,
			Deductible:         s.deductible,
		})
	}
	return out
}

// Knows reports whether the catalog has templates for t.
func Knows(t entities.InsuranceType) bool {
	for _, s := range seeds {
		if s.insuranceType == t {
			return true
		}
	}
	return false
}

// SortTemplates orders by ascending base premium, then coverage type, then
// coverage level.
func SortTemplates(ts []entities.QuotationTemplate) {
	sort.SliceStable(ts, func(i, j int) bool {
		a, b := ts[i], ts[j]
		if a.BaseMonthlyPremium != b.BaseMonthlyPremium {
			return a.BaseMonthlyPremium < b.BaseMonthlyPremium
		}
		if a.CoverageType != b.CoverageType {
			return a.CoverageType < b.CoverageType
		}
		return a.CoverageLevel < b.CoverageLevel
	})
}

// SortOffers orders offers the way selection indexes them: ascending monthly
// premium with the same tie-breaks as templates. Offer "1" is the cheapest.
func SortOffers(offers []entities.QuotationOffer) {
	sort.SliceStable(offers, func(i, j int) bool {
		a, b := offers[i], offers[j]
		if a.MonthlyPremium != b.MonthlyPremium {
			return a.MonthlyPremium < b.MonthlyPremium
		}
		if a.CoverageType != b.CoverageType {
			return a.CoverageType < b.CoverageType
		}
		if a.CoverageLevel != b.CoverageLevel {
			return a.CoverageLevel < b.CoverageLevel
		}
		return a.ID < b.ID
	})
}
