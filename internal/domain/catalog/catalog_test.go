package catalog

import (
	"testing"

	"aseguraopen/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_EightRowsFourPerType(t *testing.T) {
	ts := Default()
	require.Len(t, ts, 8)

	perType := map[entities.InsuranceType]int{}
	ids := map[string]bool{}
	for _, tpl := range ts {
		perType[tpl.InsuranceType]++
		ids[tpl.ID] = true
		assert.Equal(t, TemplateID(tpl.InsuranceType, tpl.CoverageType, tpl.CoverageLevel), tpl.ID)
	}
	assert.Equal(t, 4, perType[entities.InsuranceTypeAuto])
	assert.Equal(t, 4, perType[entities.InsuranceTypeMoto])
	assert.Len(t, ids, 8, "template ids must be unique")
}

func TestTemplateID_Deterministic(t *testing.T) {
	a := TemplateID(entities.InsuranceTypeAuto, "Todo Riesgo", "Premium")
	b := TemplateID(entities.InsuranceTypeAuto, "Todo Riesgo", "Premium")
	c := TemplateID(entities.InsuranceTypeMoto, "Todo Riesgo", "Premium")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestKnows(t *testing.T) {
	assert.True(t, Knows(entities.InsuranceTypeAuto))
	assert.True(t, Knows(entities.InsuranceTypeMoto))
	assert.False(t, Knows("boat"))
}

func TestSortTemplates_PriceThenLexical(t *testing.T) {
	ts := []entities.QuotationTemplate{
		{CoverageType: "Todo Riesgo", CoverageLevel: "Básica", BaseMonthlyPremium: 95},
		{CoverageType: "Todo Riesgo", CoverageLevel: "Premium", BaseMonthlyPremium: 95},
		{CoverageType: "Responsabilidad Civil", CoverageLevel: "Intermedia", BaseMonthlyPremium: 95},
		{CoverageType: "Responsabilidad Civil", CoverageLevel: "Básica", BaseMonthlyPremium: 45},
	}
	SortTemplates(ts)
	assert.Equal(t, 45.0, ts[0].BaseMonthlyPremium)
	assert.Equal(t, "Responsabilidad Civil", ts[1].CoverageType)
	assert.Equal(t, "Básica", ts[2].CoverageLevel)
	assert.Equal(t, "Premium", ts[3].CoverageLevel)
}

func TestSortOffers_AscendingMonthly(t *testing.T) {
	offers := []entities.QuotationOffer{
		{ID: "c", MonthlyPremium: 145},
		{ID: "a", MonthlyPremium: 45},
		{ID: "d", MonthlyPremium: 95},
		{ID: "b", MonthlyPremium: 65},
	}
	SortOffers(offers)
	got := []string{offers[0].ID, offers[1].ID, offers[2].ID, offers[3].ID}
	assert.Equal(t, []string{"a", "b", "d", "c"}, got)
}
