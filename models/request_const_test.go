package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequestStatusTransitions(t *testing.T) {
	t.Run("из pending разрешены только терминальные переходы", func(t *testing.T) {
		require.True(t, RequestStatusPending.IsAllowChange(RequestStatusApproved))
		require.True(t, RequestStatusPending.IsAllowChange(RequestStatusRejected))
		require.False(t, RequestStatusPending.IsAllowChange(RequestStatusPending))
	})

	t.Run("терминальные статусы не меняются", func(t *testing.T) {
		require.False(t, RequestStatusApproved.IsAllowChange(RequestStatusRejected))
		require.False(t, RequestStatusApproved.IsAllowChange(RequestStatusPending))
		require.False(t, RequestStatusRejected.IsAllowChange(RequestStatusApproved))
	})

	t.Run("терминальность статусов", func(t *testing.T) {
		require.False(t, RequestStatusPending.IsTerminal())
		require.True(t, RequestStatusApproved.IsTerminal())
		require.True(t, RequestStatusRejected.IsTerminal())
	})
}

func TestRequestEnumValidate(t *testing.T) {
	t.Run("известные значения проходят проверку", func(t *testing.T) {
		for _, rt := range []RequestType{RequestTypeLeave, RequestTypeEquipment, RequestTypeOvertime} {
			require.NoError(t, rt.Validate())
		}
		for _, u := range []RequestUrgency{RequestUrgencyLow, RequestUrgencyMedium, RequestUrgencyHigh} {
			require.NoError(t, u.Validate())
		}
	})

	t.Run("неизвестные значения отклоняются", func(t *testing.T) {
		require.Error(t, RequestType("Vacation").Validate())
		require.Error(t, RequestUrgency("Urgent").Validate())
	})
}
