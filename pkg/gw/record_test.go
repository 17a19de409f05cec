package gw_test

import (
	"testing"

	"github.com/dev-eloper-365/NeerSetuBackend/pkg/gw"
	"github.com/stretchr/testify/assert"
)

func TestCategoryForStage(t *testing.T) {
	tests := []struct {
		name  string
		stage float64
		want  gw.Category
	}{
		{"absent or zero", 0, gw.CategoryUnknown},
		{"negative", -5, gw.CategoryUnknown},
		{"low stage", 12.5, gw.CategorySafe},
		{"just below safe bound", 69.99, gw.CategorySafe},
		{"safe bound", 70, gw.CategorySemiCritical},
		{"semi-critical", 85, gw.CategorySemiCritical},
		{"critical", 95, gw.CategoryCritical},
		{"critical bound", 100, gw.CategoryOverExploited},
		{"over-exploited", 105, gw.CategoryOverExploited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gw.CategoryForStage(tt.stage))
		})
	}
}

func TestParseField(t *testing.T) {
	f, ok := gw.ParseField(" Stage_Of_Extraction ")
	assert.True(t, ok)
	assert.Equal(t, gw.FieldStageOfExtraction, f)

	_, ok = gw.ParseField("population")
	assert.False(t, ok)
}

func TestParseLocationType(t *testing.T) {
	tt, ok := gw.ParseLocationType("district")
	assert.True(t, ok)
	assert.Equal(t, gw.District, tt)

	_, ok = gw.ParseLocationType("village")
	assert.False(t, ok)
}

func TestParentType(t *testing.T) {
	tests := []struct {
		child  gw.LocationType
		parent gw.LocationType
		ok     bool
	}{
		{gw.Taluk, gw.District, true},
		{gw.District, gw.State, true},
		{gw.State, gw.Country, true},
		{gw.Country, "", false},
	}

	for _, tt := range tests {
		parent, ok := tt.child.ParentType()
		assert.Equal(t, tt.ok, ok, string(tt.child))
		assert.Equal(t, tt.parent, parent, string(tt.child))
	}
}

func TestPresentFieldsOrder(t *testing.T) {
	var r gw.StatRecord
	r.SetValue(gw.FieldStageOfExtraction, 80)
	r.SetValue(gw.FieldRainfall, 900)
	r.SetValue(gw.FieldExtractionTotal, 12)

	// Fixed enumeration order, not map iteration order.
	assert.Equal(t,
		[]gw.Field{
			gw.FieldRainfall,
			gw.FieldExtractionTotal,
			gw.FieldStageOfExtraction,
		},
		r.PresentFields())
}

func TestYearSpecIsHistorical(t *testing.T) {
	assert.False(t, gw.YearSpec{}.IsHistorical())
	assert.False(t, gw.YearSpec{Year: "2022-2023"}.IsHistorical())
	assert.True(t, gw.YearSpec{FromYear: "2016-2017"}.IsHistorical())
	assert.True(t, gw.YearSpec{ToYear: "2020-2021"}.IsHistorical())
	assert.True(t, gw.YearSpec{Years: []string{"2022-2023"}}.IsHistorical())
}
