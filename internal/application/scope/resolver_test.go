package scope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govindweb777/erp-sales-backend/internal/application/scope"
	"github.com/govindweb777/erp-sales-backend/internal/domain"
	"github.com/govindweb777/erp-sales-backend/internal/domain/entity"
)

func principal(role, branchID string) scope.Principal {
	return scope.Principal{UserID: "u1", CompanyID: "comp-1", BranchID: branchID, Role: role}
}

func TestForRead(t *testing.T) {
	cases := []struct {
		name            string
		p               scope.Principal
		requestedBranch string
		wantBranch      string
	}{
		{"admin ve toda la empresa", principal(entity.RoleAdmin, ""), "", ""},
		{"admin puede acotar a una sucursal", principal(entity.RoleAdmin, ""), "br-2", "br-2"},
		{"user-panel ve toda la empresa", principal(entity.RoleUserPanel, ""), "", ""},
		{"branch confinado a su sucursal", principal(entity.RoleBranch, "br-1"), "", "br-1"},
		{"branch no puede pedir otra sucursal", principal(entity.RoleBranch, "br-1"), "br-2", "br-1"},
		{"user confinado a su sucursal", principal(entity.RoleUser, "br-1"), "br-9", "br-1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := scope.ForRead(tc.p, tc.requestedBranch)
			require.NoError(t, err)
			assert.Equal(t, "comp-1", f.CompanyID)
			assert.Equal(t, tc.wantBranch, f.BranchID)
		})
	}
}

func TestForRead_RolDesconocido(t *testing.T) {
	_, err := scope.ForRead(principal("superuser", ""), "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestForWrite(t *testing.T) {
	// branch/user escriben en su sucursal aunque pidan otra
	f, err := scope.ForWrite(principal(entity.RoleUser, "br-1"), "br-2")
	require.NoError(t, err)
	assert.Equal(t, "br-1", f.BranchID)

	// admin escribe en la sucursal pedida
	f, err = scope.ForWrite(principal(entity.RoleAdmin, ""), "br-2")
	require.NoError(t, err)
	assert.Equal(t, "br-2", f.BranchID)

	// admin sin sucursal destino es input inválido
	_, err = scope.ForWrite(principal(entity.RoleAdmin, ""), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = scope.ForWrite(principal("", ""), "br-1")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCanAccess(t *testing.T) {
	assert.True(t, scope.CanAccess(principal(entity.RoleAdmin, ""), "br-5"))
	assert.True(t, scope.CanAccess(principal(entity.RoleUserPanel, ""), "br-5"))
	assert.True(t, scope.CanAccess(principal(entity.RoleBranch, "br-1"), "br-1"))
	assert.False(t, scope.CanAccess(principal(entity.RoleBranch, "br-1"), "br-2"))
	assert.False(t, scope.CanAccess(principal("ghost", "br-1"), "br-1"))
}
