package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-goals-api/internal/domain"
	"github.com/vfg2006/sales-goals-api/pkg/goalcalc"
)

//go:generate mockgen -source=notifier.go -destination=mocks/notifier.go -package=mocks

// Notifier entrega o resumo diário para a loja (WhatsApp, e-mail...)
type Notifier interface {
	NotifyDailyGoals(ctx context.Context, digest *domain.DailyGoalDigest) error
}

// LogNotifier apenas registra o resumo no log. É o padrão enquanto não há canal de entrega configurado.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) NotifyDailyGoals(_ context.Context, digest *domain.DailyGoalDigest) error {
	logrus.WithFields(logrus.Fields{
		"store_id": digest.Store.ID,
		"date":     digest.Date.Format(time.DateOnly),
	}).Info("DailyGoalDigestService: resumo do dia\n" + FormatDailyGoalMessage(digest))
	return nil
}

var situationLabels = map[goalcalc.Situation]string{
	goalcalc.SituationAhead:   "adiantada",
	goalcalc.SituationBehind:  "atrasada",
	goalcalc.SituationNeutral: "no ritmo",
}

// FormatDailyGoalMessage monta o texto do resumo no formato enviado às lojas
func FormatDailyGoalMessage(digest *domain.DailyGoalDigest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*%s* - metas de %s\n", digest.Store.Name, digest.Date.Format("02/01/2006"))

	if digest.Goal == nil {
		b.WriteString("Sem meta cadastrada para o mês.\n")
		return b.String()
	}

	target := digest.Goal.Target
	fmt.Fprintf(&b, "Meta do dia: %s (%s)\n", money(target.Dynamic), situationLabels[target.Situation])
	fmt.Fprintf(&b, "Realizado no mês: %s de %s (%.2f%%)\n", money(target.AchievedToDate), money(target.MonthlyTarget), target.PercentReached)

	if digest.Goal.SuperTarget != nil {
		fmt.Fprintf(&b, "Super meta do dia: %s\n", money(digest.Goal.SuperTarget.Dynamic))
	}

	if len(digest.Goal.Employees) > 0 {
		b.WriteString("\n")
	}

	for _, employee := range digest.Goal.Employees {
		if employee.OnLeave {
			fmt.Fprintf(&b, "- %s: folga\n", employee.EmployeeName)
			continue
		}
		fmt.Fprintf(&b, "- %s: %s\n", employee.EmployeeName, money(employee.Final))
	}

	return b.String()
}

// money formata o valor em reais com separador de milhar
func money(value float64) string {
	cents := int64(value*100 + 0.5)
	if value < 0 {
		cents = int64(value*100 - 0.5)
	}

	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	integer := fmt.Sprintf("%d", cents/100)
	var grouped strings.Builder
	for i, digit := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	return fmt.Sprintf("%sR$ %s,%02d", sign, grouped.String(), cents%100)
}
