package goalcalc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWeights(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		month    time.Month
		sparse   map[string]float64
		validate func(t *testing.T, table WeightTable)
	}{
		{
			name:  "Sem mapa - distribuição uniforme soma 100",
			year:  2025,
			month: time.November,
			validate: func(t *testing.T, table WeightTable) {
				assert.True(t, table.IsUniform())
				assert.Equal(t, 30, table.Days())

				var sum float64
				for _, w := range table.Weights() {
					sum += w
				}
				assert.InDelta(t, 100, sum, 1e-9)
				assert.InDelta(t, 100.0/30, table.Weight(15), 1e-12)
			},
		},
		{
			name:   "Mapa vazio equivale a uniforme",
			year:   2024,
			month:  time.February,
			sparse: map[string]float64{},
			validate: func(t *testing.T, table WeightTable) {
				assert.True(t, table.IsUniform())
				assert.Equal(t, 29, table.Days())
				assert.Equal(t, 100.0, table.Total())
			},
		},
		{
			name:  "Mapa parcial - dias ausentes ficam com zero e não são redistribuídos",
			year:  2025,
			month: time.November,
			sparse: map[string]float64{
				"2025-11-01": 10,
				"2025-11-02": 5.5,
				"2025-12-01": 50, // outro mês, ignorado
			},
			validate: func(t *testing.T, table WeightTable) {
				assert.False(t, table.IsUniform())
				assert.Equal(t, 10.0, table.Weight(1))
				assert.Equal(t, 5.5, table.Weight(2))
				assert.Equal(t, 0.0, table.Weight(3))
				assert.True(t, table.IsConfigured(2))
				assert.False(t, table.IsConfigured(3))
				assert.InDelta(t, 15.5, table.Total(), 1e-12)
			},
		},
		{
			name:  "Peso negativo vira zero mas o dia continua configurado",
			year:  2025,
			month: time.November,
			sparse: map[string]float64{
				"2025-11-05": -3,
			},
			validate: func(t *testing.T, table WeightTable) {
				assert.Equal(t, 0.0, table.Weight(5))
				assert.True(t, table.IsConfigured(5))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := ResolveWeights(tt.year, tt.month, tt.sparse)
			require.NoError(t, err)
			assert.Equal(t, tt.year, table.Year())
			assert.Equal(t, tt.month, table.Month())
			tt.validate(t, table)
		})
	}
}

func TestResolveWeights_MesInvalido(t *testing.T) {
	for _, month := range []time.Month{0, 13, -1} {
		_, err := ResolveWeights(2025, month, nil)
		assert.ErrorIs(t, err, ErrInvalidCalendarInput)
	}
}

func TestWeightTable_WeightsRetornaCopia(t *testing.T) {
	table, err := ResolveWeights(2025, time.November, map[string]float64{"2025-11-01": 10})
	require.NoError(t, err)

	weights := table.Weights()
	weights[0] = 99

	assert.Equal(t, 10.0, table.Weight(1))
}

func TestWeightTable_DiaForaDoMes(t *testing.T) {
	table, err := ResolveWeights(2025, time.November, nil)
	require.NoError(t, err)

	assert.Equal(t, 0.0, table.Weight(0))
	assert.Equal(t, 0.0, table.Weight(31))

	_, err = table.dayOf(time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrInvalidCalendarInput)

	_, err = WeightTable{}.dayOf(time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrInvalidCalendarInput)
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2025, time.January))
	assert.Equal(t, 28, DaysInMonth(2025, time.February))
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 30, DaysInMonth(2025, time.November))
	assert.Equal(t, 31, DaysInMonth(2025, time.December))
}
