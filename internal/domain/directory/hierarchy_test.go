package directory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapFinder serves users from a map; a nil vc means no VC is provisioned.
type mapFinder struct {
	users map[uint]*User
	vc    *User
}

func (f *mapFinder) GetByID(_ context.Context, id uint) (*User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (f *mapFinder) GetVC(_ context.Context) (*User, error) {
	if f.vc == nil {
		return nil, ErrUserNotFound
	}
	return f.vc, nil
}

func hierarchyUser(t *testing.T, id uint, role Role, reportsTo *uint) *User {
	t.Helper()
	u, err := ReconstructUser(id, "User", "user@univ.edu", CredentialFromHash("x"), role, nil, nil, reportsTo)
	require.NoError(t, err)
	return u
}

func TestNextAssignee_ReportsTo(t *testing.T) {
	hodID := uint(2)
	finder := &mapFinder{users: map[uint]*User{
		1: hierarchyUser(t, 1, RoleProctor, &hodID),
		2: hierarchyUser(t, 2, RoleHOD, nil),
	}}

	next, err := NextAssignee(context.Background(), finder, 1)
	require.NoError(t, err)
	assert.Equal(t, uint(2), next.ID())
}

func TestNextAssignee_VCFallback(t *testing.T) {
	vc := hierarchyUser(t, 9, RoleVC, nil)
	finder := &mapFinder{
		users: map[uint]*User{
			2: hierarchyUser(t, 2, RoleHOD, nil),
			9: vc,
		},
		vc: vc,
	}

	next, err := NextAssignee(context.Background(), finder, 2)
	require.NoError(t, err)
	assert.Equal(t, uint(9), next.ID())
}

func TestNextAssignee_VCAtTop(t *testing.T) {
	vc := hierarchyUser(t, 9, RoleVC, nil)
	finder := &mapFinder{users: map[uint]*User{9: vc}, vc: vc}

	_, err := NextAssignee(context.Background(), finder, 9)
	assert.ErrorIs(t, err, ErrNoHigherAuthority)
}

func TestNextAssignee_NoVCProvisioned(t *testing.T) {
	finder := &mapFinder{users: map[uint]*User{
		2: hierarchyUser(t, 2, RoleHOD, nil),
	}}

	_, err := NextAssignee(context.Background(), finder, 2)
	assert.ErrorIs(t, err, ErrNoHigherAuthority)
}

func TestNextAssignee_SelfReference(t *testing.T) {
	selfID := uint(3)
	finder := &mapFinder{users: map[uint]*User{
		3: hierarchyUser(t, 3, RoleHOD, &selfID),
	}}

	_, err := NextAssignee(context.Background(), finder, 3)
	assert.ErrorIs(t, err, ErrReportingCycle)
}

func TestNextAssignee_DanglingManager(t *testing.T) {
	goneID := uint(99)
	finder := &mapFinder{users: map[uint]*User{
		1: hierarchyUser(t, 1, RoleProctor, &goneID),
	}}

	_, err := NextAssignee(context.Background(), finder, 1)
	assert.ErrorIs(t, err, ErrNoHigherAuthority)
}

func TestChainOf(t *testing.T) {
	proctorID, hodID, vcID := uint(1), uint(2), uint(9)
	finder := &mapFinder{users: map[uint]*User{
		1: hierarchyUser(t, 1, RoleProctor, &hodID),
		2: hierarchyUser(t, 2, RoleHOD, &vcID),
		9: hierarchyUser(t, 9, RoleVC, nil),
	}}

	chain, err := ChainOf(context.Background(), finder, proctorID)
	require.NoError(t, err)
	require.Len(t, chain, 2)
	assert.Equal(t, hodID, chain[0].ID())
	assert.Equal(t, vcID, chain[1].ID())
}

func TestChainOf_Cycle(t *testing.T) {
	aID, bID := uint(1), uint(2)
	finder := &mapFinder{users: map[uint]*User{
		1: hierarchyUser(t, 1, RoleProctor, &bID),
		2: hierarchyUser(t, 2, RoleHOD, &aID),
	}}

	_, err := ChainOf(context.Background(), finder, aID)
	assert.ErrorIs(t, err, ErrReportingCycle)
}
