package access

import (
	"testing"

	"vestlock/internal/sdk"
	"vestlock/internal/vlerror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminIsSuperset(t *testing.T) {
	ctrl := NewController(sdk.NewMockState())
	admin := sdk.Address("admin")
	ctrl.Grant(RoleAdmin, admin)

	assert.True(t, ctrl.IsAdmin(admin))
	assert.True(t, ctrl.CanCreate(admin), "admin may create even without RoleScheduleCreator")
	require.NoError(t, ctrl.RequireAdmin(admin))
	require.NoError(t, ctrl.RequireCreator(admin))
}

func TestScheduleCreatorCannotActAsAdmin(t *testing.T) {
	ctrl := NewController(sdk.NewMockState())
	creator := sdk.Address("creator")
	ctrl.Grant(RoleScheduleCreator, creator)

	assert.True(t, ctrl.CanCreate(creator))
	assert.False(t, ctrl.IsAdmin(creator))
	assert.ErrorIs(t, ctrl.RequireAdmin(creator), vlerror.New(vlerror.Unauthorized, ""))
}

func TestRevokeRemovesRole(t *testing.T) {
	ctrl := NewController(sdk.NewMockState())
	addr := sdk.Address("x")
	ctrl.Grant(RoleScheduleCreator, addr)
	require.True(t, ctrl.Has(RoleScheduleCreator, addr))

	ctrl.Revoke(RoleScheduleCreator, addr)
	assert.False(t, ctrl.Has(RoleScheduleCreator, addr))
}

func TestUnknownAddressHasNoRole(t *testing.T) {
	ctrl := NewController(sdk.NewMockState())
	assert.False(t, ctrl.IsAdmin(sdk.Address("nobody")))
	assert.Error(t, ctrl.RequireCreator(sdk.Address("nobody")))
}
