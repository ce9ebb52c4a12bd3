package weekref

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_IdaEVolta(t *testing.T) {
	for year := MinYear; year <= MaxYear; year++ {
		for week := MinWeek; week <= MaxWeek; week++ {
			token, err := Encode(week, year)
			require.NoError(t, err)

			ref, err := Decode(token)
			require.NoError(t, err, token)
			assert.Equal(t, week, ref.Week, token)
			assert.Equal(t, year, ref.Year, token)
			assert.Equal(t, Canonical, ref.Format, token)
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		week    int
		year    int
		format  Format
		wantErr bool
	}{
		{name: "Canônico WWYYYY", token: "462025", week: 46, year: 2025, format: Canonical},
		{name: "Legado YYYYWW", token: "202546", week: 46, year: 2025, format: Legacy},
		{name: "Legado semana 1", token: "202401", week: 1, year: 2024, format: Legacy},
		{name: "Semana 20 canônica", token: "202030", week: 20, year: 2030, format: Canonical},
		// Tokens legados de 2020 também são leituras canônicas válidas e ficam como semana 20
		{name: "Legado 2020 semana 53 lido como canônico", token: "202053", week: 20, year: 2053, format: Canonical},
		{name: "Legado 2020 semana 1 lido como canônico", token: "202001", week: 20, year: 2001, format: Canonical},
		{name: "Tamanho errado", token: "46202", wantErr: true},
		{name: "Vazio", token: "", wantErr: true},
		{name: "Não numérico", token: "4a2025", wantErr: true},
		{name: "Semana zero", token: "002025", wantErr: true},
		{name: "Semana 54", token: "542025", wantErr: true},
		{name: "Ano abaixo de 2000", token: "101999", wantErr: true},
		{name: "Legado com semana inválida", token: "202560", wantErr: true},
		{name: "Sinal negativo", token: "-12025", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := Decode(tt.token)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidWeekToken)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.week, ref.Week)
			assert.Equal(t, tt.year, ref.Year)
			assert.Equal(t, tt.format, ref.Format)
			assert.Equal(t, tt.format.String(), ref.Format.String())
		})
	}
}

func TestEncode_ForaDosLimites(t *testing.T) {
	_, err := Encode(0, 2025)
	assert.ErrorIs(t, err, ErrInvalidWeekToken)

	_, err = Encode(54, 2025)
	assert.ErrorIs(t, err, ErrInvalidWeekToken)

	_, err = Encode(10, 2101)
	assert.ErrorIs(t, err, ErrInvalidWeekToken)

	token, err := Encode(7, 2026)
	require.NoError(t, err)
	assert.Equal(t, "072026", token)
}

func TestDateRange(t *testing.T) {
	start, end, err := DateRange("462025")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.November, 10, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.November, 16, 0, 0, 0, 0, time.UTC), end)
	assert.Equal(t, time.Monday, start.Weekday())
	assert.Equal(t, time.Sunday, end.Weekday())

	legacyStart, legacyEnd, err := DateRange("202546")
	require.NoError(t, err)
	assert.Equal(t, start, legacyStart)
	assert.Equal(t, end, legacyEnd)

	_, _, err = DateRange("xx")
	assert.ErrorIs(t, err, ErrInvalidWeekToken)
}

func TestFirstMonday(t *testing.T) {
	tests := []struct {
		year     int
		expected time.Time
	}{
		{year: 2024, expected: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)},  // 1º de janeiro numa segunda
		{year: 2025, expected: time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC)}, // quarta
		{year: 2023, expected: time.Date(2022, time.December, 26, 0, 0, 0, 0, time.UTC)}, // domingo
	}

	for _, tt := range tests {
		first := FirstMonday(tt.year)
		assert.Equal(t, tt.expected, first)
		assert.Equal(t, time.Monday, first.Weekday())
	}
}

func TestOf(t *testing.T) {
	assert.Equal(t, Reference{Week: 46, Year: 2025}, Of(time.Date(2025, time.November, 12, 15, 30, 0, 0, time.UTC)))
	assert.Equal(t, Reference{Week: 1, Year: 2025}, Of(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, Reference{Week: 1, Year: 2026}, Of(time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)))

	for _, date := range []time.Time{
		time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.June, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.December, 29, 0, 0, 0, 0, time.UTC),
	} {
		start, end := Of(date).Range()
		assert.False(t, date.Before(start))
		assert.False(t, date.After(end))
	}
}

func TestSortDescendingBy(t *testing.T) {
	refs := []Reference{
		{Week: 3, Year: 2025},
		{Week: 52, Year: 2024},
		{Week: 10, Year: 2025},
		{Week: 1, Year: 2026},
	}

	SortDescendingBy(refs, func(r Reference) Reference { return r })

	assert.Equal(t, []Reference{
		{Week: 1, Year: 2026},
		{Week: 10, Year: 2025},
		{Week: 3, Year: 2025},
		{Week: 52, Year: 2024},
	}, refs)
}

func TestSortDescendingBy_MantemOrdemNaMesmaSemana(t *testing.T) {
	type item struct {
		id  string
		ref Reference
	}

	items := []item{
		{id: "a", ref: Reference{Week: 45, Year: 2025}},
		{id: "b", ref: Reference{Week: 1, Year: 2026}},
		{id: "c", ref: Reference{Week: 45, Year: 2025}},
		{id: "d", ref: Reference{Week: 46, Year: 2025}},
	}

	SortDescendingBy(items, func(i item) Reference { return i.ref })

	ids := make([]string, 0, len(items))
	for _, i := range items {
		ids = append(ids, i.id)
	}
	assert.Equal(t, []string{"b", "d", "a", "c"}, ids)
}

func TestReference_Token(t *testing.T) {
	ref, err := Decode("202546")
	require.NoError(t, err)
	assert.Equal(t, "462025", ref.Token())
	assert.Equal(t, "Semana 46/2025", ref.String())
}
