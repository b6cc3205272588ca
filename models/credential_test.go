package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPendingUserValidityWindow(t *testing.T) {
	fresh := PendingUser{CreatedAt: time.Now()}
	assert.True(t, fresh.IsValid())

	// Just inside the 20-minute window.
	inside := PendingUser{CreatedAt: time.Now().Add(-CredentialLifespan + time.Second)}
	assert.True(t, inside.IsValid())

	expired := PendingUser{CreatedAt: time.Now().Add(-CredentialLifespan - time.Second)}
	assert.False(t, expired.IsValid())
}

func TestTokenValidityWindow(t *testing.T) {
	inside := Token{CreatedAt: time.Now().Add(-CredentialLifespan + time.Second)}
	assert.True(t, inside.IsValid())

	expired := Token{CreatedAt: time.Now().Add(-CredentialLifespan - time.Second)}
	assert.False(t, expired.IsValid())
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleCompany.Valid())
	assert.True(t, RoleCandidate.Valid())
	assert.False(t, Role("superuser").Valid())
}

func TestCanAccess(t *testing.T) {
	assert.True(t, CanAccess(RoleAdmin, ResourceAdminPanel))
	assert.False(t, CanAccess(RoleAdmin, ResourceTests))
	assert.False(t, CanAccess(RoleCompany, ResourceAdminPanel))
	assert.True(t, CanAccess(RoleCompany, ResourceAdverts))
	assert.False(t, CanAccess(RoleCandidate, ResourceAdverts))
	assert.True(t, CanAccess(RoleCandidate, ResourceTests))
}

func TestValidOption(t *testing.T) {
	for _, option := range []string{OptionOne, OptionTwo, OptionThree, OptionFour} {
		assert.True(t, ValidOption(option))
	}
	assert.False(t, ValidOption("option5"))
	assert.False(t, ValidOption(""))
}

func TestAdvertIsActive(t *testing.T) {
	now := time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)

	active := JobAdvert{IsPublished: true, Deadline: now.Add(72 * time.Hour)}
	assert.True(t, active.IsActive(now))

	// The deadline day itself still counts.
	sameDay := JobAdvert{IsPublished: true, Deadline: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)}
	assert.True(t, sameDay.IsActive(now))

	past := JobAdvert{IsPublished: true, Deadline: now.Add(-48 * time.Hour)}
	assert.False(t, past.IsActive(now))

	draft := JobAdvert{IsPublished: false, Deadline: now.Add(72 * time.Hour)}
	assert.False(t, draft.IsActive(now))
}
