// Package weekref codifica e decodifica a referência de semana usada nas gincanas.
//
// O formato atual é "WWYYYY" (semana com dois dígitos seguida do ano). Registros antigos
// foram gravados como "YYYYWW" e continuam sendo aceitos na leitura.
package weekref

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"
)

const (
	tokenLength = 6

	MinWeek = 1
	MaxWeek = 53
	MinYear = 2000
	MaxYear = 2100

	legacyMaxYear = 2099
)

// ErrInvalidWeekToken indica referência de semana fora do formato ou dos limites aceitos
var ErrInvalidWeekToken = errors.New("referência de semana inválida")

// Format identifica como a referência estava gravada
type Format int

const (
	Canonical Format = iota // WWYYYY
	Legacy                  // YYYYWW
)

func (f Format) String() string {
	if f == Legacy {
		return "legacy"
	}
	return "canonical"
}

// Reference é uma semana do ano
type Reference struct {
	Week   int    `json:"week"`
	Year   int    `json:"year"`
	Format Format `json:"-"`
}

// Encode gera a referência canônica WWYYYY
func Encode(week, year int) (string, error) {
	if err := validate(week, year); err != nil {
		return "", err
	}
	return fmt.Sprintf("%02d%04d", week, year), nil
}

// Decode interpreta a referência.
//
// A leitura canônica tem prioridade: se os dois primeiros dígitos formam uma semana válida
// e os quatro seguintes um ano válido, o token é WWYYYY. Só quando isso falha e o token
// começa com "20" ele é lido como YYYYWW. Assim toda referência gerada por Encode volta
// para a mesma semana, inclusive a semana 20.
//
// Consequência: tokens legados do ano de 2020 ("2020WW") não são recuperáveis. Todos eles
// também formam uma leitura canônica válida e voltam como semana 20 do ano "20WW".
func Decode(token string) (Reference, error) {
	if len(token) != tokenLength {
		return Reference{}, fmt.Errorf("%w: %q deve ter %d dígitos", ErrInvalidWeekToken, token, tokenLength)
	}

	for _, c := range token {
		if c < '0' || c > '9' {
			return Reference{}, fmt.Errorf("%w: %q deve conter apenas dígitos", ErrInvalidWeekToken, token)
		}
	}

	week, _ := strconv.Atoi(token[0:2])
	year, _ := strconv.Atoi(token[2:6])
	if validate(week, year) == nil {
		return Reference{Week: week, Year: year, Format: Canonical}, nil
	}

	if token[0:2] == "20" {
		year, _ = strconv.Atoi(token[0:4])
		week, _ = strconv.Atoi(token[4:6])
		if year <= legacyMaxYear && validate(week, year) == nil {
			return Reference{Week: week, Year: year, Format: Legacy}, nil
		}
	}

	return Reference{}, fmt.Errorf("%w: %q", ErrInvalidWeekToken, token)
}

// Token retorna a referência no formato canônico
func (r Reference) Token() string {
	return fmt.Sprintf("%02d%04d", r.Week, r.Year)
}

func (r Reference) String() string {
	return fmt.Sprintf("Semana %d/%d", r.Week, r.Year)
}

// Range retorna a segunda-feira e o domingo da semana
func (r Reference) Range() (time.Time, time.Time) {
	start := FirstMonday(r.Year).AddDate(0, 0, 7*(r.Week-1))
	return start, start.AddDate(0, 0, 6)
}

// DateRange decodifica o token e retorna o intervalo de segunda a domingo
func DateRange(token string) (time.Time, time.Time, error) {
	ref, err := Decode(token)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	start, end := ref.Range()
	return start, end, nil
}

// FirstMonday é a segunda-feira da semana que contém o dia 1º de janeiro
func FirstMonday(year int) time.Time {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(jan1.Weekday()) + 6) % 7 // segunda = 0
	return jan1.AddDate(0, 0, -offset)
}

// Of retorna a semana que contém a data. Os últimos dias de dezembro que caem na semana
// do 1º de janeiro seguinte pertencem à semana 1 do ano seguinte.
func Of(date time.Time) Reference {
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	year := date.Year()
	if next := FirstMonday(year + 1); !date.Before(next) {
		year++
	}

	days := int(date.Sub(FirstMonday(year)).Hours() / 24)
	return Reference{Week: days/7 + 1, Year: year, Format: Canonical}
}

// After indica se a semana é posterior a other
func (r Reference) After(other Reference) bool {
	if r.Year != other.Year {
		return r.Year > other.Year
	}
	return r.Week > other.Week
}

// SortDescendingBy ordena qualquer coleção pela semana extraída de cada item, da mais
// recente para a mais antiga, preservando a ordem original entre itens da mesma semana.
func SortDescendingBy[T any](items []T, ref func(T) Reference) {
	sort.SliceStable(items, func(i, j int) bool {
		return ref(items[i]).After(ref(items[j]))
	})
}

func validate(week, year int) error {
	if week < MinWeek || week > MaxWeek {
		return fmt.Errorf("%w: semana %d fora de %d-%d", ErrInvalidWeekToken, week, MinWeek, MaxWeek)
	}
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("%w: ano %d fora de %d-%d", ErrInvalidWeekToken, year, MinYear, MaxYear)
	}
	return nil
}
