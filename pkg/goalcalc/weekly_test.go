package goalcalc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestRange(t *testing.T) {
	october, err := ResolveWeights(2025, time.October, nil)
	require.NoError(t, err)
	november, err := ResolveWeights(2025, time.November, nil)
	require.NoError(t, err)

	plans := []MonthPlan{
		{Target: 3100, SuperTarget: 6200, Weights: october},
		{Target: 3000, Weights: november},
	}

	t.Run("Semana que cruza a virada do mês combina as metas dos dois meses", func(t *testing.T) {
		suggestion := SuggestRange(day(2025, time.October, 27), day(2025, time.November, 2), plans)

		require.Len(t, suggestion.Days, 7)
		assert.InDelta(t, 700, suggestion.Target, 1e-9)
		assert.InDelta(t, 1000, suggestion.SuperTarget, 1e-9)
		assert.Equal(t, day(2025, time.October, 27), suggestion.Days[0].Date)
		assert.Equal(t, day(2025, time.November, 2), suggestion.Days[6].Date)
		for _, d := range suggestion.Days {
			assert.True(t, d.Covered)
		}
	})

	t.Run("Mês sem meta cadastrada não contribui", func(t *testing.T) {
		suggestion := SuggestRange(day(2025, time.November, 29), day(2025, time.December, 5), plans)

		require.Len(t, suggestion.Days, 7)
		assert.InDelta(t, 200, suggestion.Target, 1e-9)
		assert.False(t, suggestion.Days[2].Covered)
		assert.Equal(t, 0.0, suggestion.Days[2].Target)
	})

	t.Run("Intervalo invertido retorna vazio", func(t *testing.T) {
		suggestion := SuggestRange(day(2025, time.November, 5), day(2025, time.November, 1), plans)

		assert.Empty(t, suggestion.Days)
		assert.Equal(t, 0.0, suggestion.Target)
	})
}

func TestSuggestRange_PesosPersonalizados(t *testing.T) {
	weights, err := ResolveWeights(2025, time.November, map[string]float64{
		"2025-11-03": 5,
		"2025-11-04": 4,
	})
	require.NoError(t, err)

	suggestion := SuggestRange(day(2025, time.November, 3), day(2025, time.November, 5), []MonthPlan{
		{Target: 10000, Weights: weights},
	})

	// dia 5 sem peso configurado cai na divisão uniforme
	assert.InDelta(t, 500+400+10000.0/30, suggestion.Target, 1e-9)
	assert.Equal(t, 5.0, suggestion.Days[0].Weight)
}
