package access

import (
	"testing"

	"vestlock/internal/sdk"
	"vestlock/internal/vlerror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandoverAtomicallyTransfersAdmin(t *testing.T) {
	ctrl := NewController(sdk.NewMockState())
	incumbent := sdk.Address("incumbent")
	nominee := sdk.Address("nominee")
	ctrl.Grant(RoleAdmin, incumbent)

	ctrl.BeginHandover(incumbent, nominee)
	assert.Equal(t, nominee, ctrl.PendingAdmin())

	require.NoError(t, ctrl.AcceptHandover(nominee))
	assert.True(t, ctrl.IsAdmin(nominee))
	assert.False(t, ctrl.IsAdmin(incumbent), "acceptance transfers the role rather than adding a second holder")
	assert.True(t, ctrl.PendingAdmin().IsZero())
}

func TestOnlyNomineeCanAccept(t *testing.T) {
	ctrl := NewController(sdk.NewMockState())
	incumbent := sdk.Address("incumbent")
	nominee := sdk.Address("nominee")
	impostor := sdk.Address("impostor")
	ctrl.Grant(RoleAdmin, incumbent)
	ctrl.BeginHandover(incumbent, nominee)

	err := ctrl.AcceptHandover(impostor)
	assert.ErrorIs(t, err, vlerror.New(vlerror.AdminTransferFailed, ""))
	assert.False(t, ctrl.IsAdmin(impostor))
	assert.True(t, ctrl.IsAdmin(incumbent), "a failed accept leaves the incumbent's role untouched")
}

func TestCancelHandoverClearsNominee(t *testing.T) {
	ctrl := NewController(sdk.NewMockState())
	incumbent := sdk.Address("incumbent")
	ctrl.Grant(RoleAdmin, incumbent)
	ctrl.BeginHandover(incumbent, sdk.Address("nominee"))
	ctrl.CancelHandover()
	assert.True(t, ctrl.PendingAdmin().IsZero())
	assert.True(t, ctrl.IsAdmin(incumbent))
}

func TestAcceptWithNoPendingHandoverFails(t *testing.T) {
	ctrl := NewController(sdk.NewMockState())
	err := ctrl.AcceptHandover(sdk.Address("anyone"))
	assert.ErrorIs(t, err, vlerror.New(vlerror.AdminTransferFailed, ""))
}
