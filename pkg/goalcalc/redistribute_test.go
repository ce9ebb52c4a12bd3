package goalcalc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func member(id string, base, target float64, situation Situation) Member {
	return Member{
		EmployeeID: id,
		Daily: DailyTarget{
			Base:      base,
			Target:    target,
			Situation: situation,
		},
	}
}

func TestRedistribute_ConservacaoSemPiso(t *testing.T) {
	members := []Member{
		member("ana", 100, 120, SituationBehind),
		member("bia", 50, 130, SituationAhead),
		member("carla", 50, 100, SituationNeutral),
		member("duda", 80, 90, SituationAhead),
	}

	result := Redistribute(members, 300, NewLeaveSet("duda"))

	assert.Equal(t, 120.0, result.MandatorySum)
	assert.Equal(t, 230.0, result.AdjustableSum)
	assert.Equal(t, 90.0, result.LeavePool)
	assert.Equal(t, 30.0, result.PerWorkingShare)
	assert.Equal(t, 180.0, result.AvailableForAdjustable)
	assert.InDelta(t, 180.0/230, result.AdjustmentFactor, 1e-12)

	require.Len(t, result.Allocations, 4)
	assert.Equal(t, "ana", result.Allocations[0].EmployeeID)
	assert.Equal(t, 150.0, result.Allocations[0].Final)
	assert.InDelta(t, 130*180.0/230+30, result.Allocations[1].Final, 1e-9)
	assert.InDelta(t, 100*180.0/230+30, result.Allocations[2].Final, 1e-9)
	assert.True(t, result.Allocations[3].OnLeave)
	assert.Equal(t, 0.0, result.Allocations[3].Final)

	assert.InDelta(t, 300+90, result.WorkingTotal(), 1e-9)
}

func TestRedistribute_PisoPodeSuperarMetaDaLoja(t *testing.T) {
	tests := []struct {
		name        string
		members     []Member
		storeTarget float64
	}{
		{
			name: "Atrasadas consomem toda a meta - adiantadas ficam na base",
			members: []Member{
				member("ana", 100, 120, SituationBehind),
				member("bia", 100, 130, SituationAhead),
				member("carla", 100, 100, SituationNeutral),
			},
			storeTarget: 100,
		},
		{
			name: "Meta da loja pequena - piso da base acionado para várias colaboradoras",
			members: []Member{
				member("ana", 90, 150, SituationAhead),
				member("bia", 90, 140, SituationAhead),
				member("carla", 90, 90, SituationNeutral),
				member("duda", 90, 95, SituationAhead),
			},
			storeTarget: 200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Redistribute(tt.members, tt.storeTarget, NewLeaveSet())

			assert.Greater(t, result.WorkingTotal(), tt.storeTarget)
			for i, a := range result.Allocations {
				assert.GreaterOrEqual(t, a.Final, tt.members[i].Daily.Base)
			}
		})
	}
}

func TestRedistribute_FolgaSempreZerada(t *testing.T) {
	members := []Member{
		member("ana", 100, 400, SituationBehind),
		member("bia", 100, 130, SituationAhead),
		member("carla", 100, 100, SituationNeutral),
	}

	for _, leave := range []LeaveSet{
		NewLeaveSet("ana"),
		NewLeaveSet("bia", "carla"),
		NewLeaveSet("ana", "bia", "carla"),
	} {
		result := Redistribute(members, 500, leave)
		for _, a := range result.Allocations {
			if leave.Contains(a.EmployeeID) {
				assert.True(t, a.OnLeave)
				assert.Equal(t, 0.0, a.Final)
			} else {
				assert.False(t, a.OnLeave)
				assert.Greater(t, a.Final, 0.0)
			}
		}
	}
}

func TestRedistribute_TodasDeFolga(t *testing.T) {
	members := []Member{
		member("ana", 100, 120, SituationBehind),
		member("bia", 100, 130, SituationAhead),
	}

	result := Redistribute(members, 250, NewLeaveSet("ana", "bia"))

	assert.Equal(t, 250.0, result.LeavePool)
	assert.Equal(t, 0.0, result.PerWorkingShare)
	assert.Equal(t, 0.0, result.WorkingTotal())
}

func TestRedistribute_SemAjustaveis(t *testing.T) {
	members := []Member{
		member("ana", 100, 120, SituationBehind),
		member("bia", 100, 110, SituationBehind),
	}

	result := Redistribute(members, 500, nil)

	assert.Equal(t, 0.0, result.AdjustmentFactor)
	assert.Equal(t, 120.0, result.Allocations[0].Final)
	assert.Equal(t, 110.0, result.Allocations[1].Final)
}

func TestRedistribute_ComMetasCalculadas(t *testing.T) {
	table := uniformNovember(t)
	today := time.Date(2025, time.November, 11, 0, 0, 0, 0, time.UTC)

	behind, err := DynamicDailyTarget(3000, 700, today, table)
	require.NoError(t, err)
	ahead, err := DynamicDailyTarget(3000, 1300, today, table)
	require.NoError(t, err)
	store, err := DynamicDailyTarget(6000, 2000, today, table)
	require.NoError(t, err)

	result := Redistribute([]Member{
		{EmployeeID: "ana", Daily: behind},
		{EmployeeID: "bia", Daily: ahead},
	}, store.Target, nil)

	// loja no ritmo com meta 200: ana atrasada fica com 115 e bia desce até o piso da base
	assert.InDelta(t, 200, store.Target, 1e-9)
	assert.InDelta(t, 115, result.Allocations[0].Final, 1e-9)
	assert.InDelta(t, 100, result.Allocations[1].Final, 1e-9)
	assert.InDelta(t, 215, result.WorkingTotal(), 1e-9)
}

func TestIndividualTargets(t *testing.T) {
	members := []Member{
		member("ana", 100, 120, SituationBehind),
		member("bia", 100, 130, SituationAhead),
		member("carla", 0, 0, SituationNeutral),
	}

	allocations := IndividualTargets(members, NewLeaveSet("bia"))

	require.Len(t, allocations, 3)
	assert.Equal(t, 120.0, allocations[0].Final)
	assert.True(t, allocations[1].OnLeave)
	assert.Equal(t, 0.0, allocations[1].Final)
	assert.Equal(t, 130.0, allocations[1].Dynamic)
	assert.Equal(t, 0.0, allocations[2].Final)
}
