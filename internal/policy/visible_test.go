package policy_test

import (
	"errors"
	"testing"

	"github.com/serroba/cde-access/internal/policy"
	"github.com/serroba/cde-access/internal/rbac"
	"github.com/stretchr/testify/require"
)

func TestVisibleStatuses_Admin(t *testing.T) {
	t.Parallel()

	require.Equal(t, policy.Statuses(), policy.VisibleStatuses(rbac.RoleAdmin))
}

func TestVisibleStatuses_NonAdmin(t *testing.T) {
	t.Parallel()

	for _, role := range []rbac.Role{rbac.RoleProjectManager, rbac.RoleViewer} {
		visible := policy.VisibleStatuses(role)

		require.Len(t, visible, len(policy.Statuses())-1)

		for _, status := range visible {
			if status == policy.StatusWIP {
				t.Errorf("role %s: WIP must not be listed as visible", role)
			}
		}
	}
}

func TestVisibleDocuments(t *testing.T) {
	t.Parallel()

	p := newPolicy(nil)

	ownWIP := policy.Document{ID: "d1", OwnerID: "u1", Status: policy.StatusWIP}
	otherWIP := policy.Document{ID: "d2", OwnerID: "u2", Status: policy.StatusWIP}
	published := policy.Document{ID: "d3", OwnerID: "u2", Status: policy.StatusPublished}
	archived := policy.Document{ID: "d4", OwnerID: "u3", Status: policy.StatusArchived}

	docs := []policy.Document{ownWIP, otherWIP, published, archived}

	tests := []struct {
		name     string
		user     policy.User
		expected []policy.Document
	}{
		{
			name:     "admin sees everything",
			user:     policy.User{ID: "u9", Role: rbac.RoleAdmin},
			expected: docs,
		},
		{
			name:     "viewer keeps own WIP and released",
			user:     policy.User{ID: "u1", Role: rbac.RoleViewer},
			expected: []policy.Document{ownWIP, published, archived},
		},
		{
			name:     "non-owner loses foreign WIP",
			user:     policy.User{ID: "u3", Role: rbac.RoleProjectManager},
			expected: []policy.Document{published, archived},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			visible, err := p.VisibleDocuments(tt.user, docs)
			require.NoError(t, err)

			require.Equal(t, tt.expected, visible)
		})
	}
}

func TestVisibleDocuments_FaultAborts(t *testing.T) {
	t.Parallel()

	p := newPolicy(nil)

	docs := []policy.Document{
		{ID: "d1", OwnerID: "u1", Status: policy.StatusPublished},
		{ID: "d2", OwnerID: "u1", Status: policy.DocumentStatus(99)},
	}

	_, err := p.VisibleDocuments(policy.User{ID: "u1", Role: rbac.RoleViewer}, docs)
	if !errors.Is(err, policy.ErrUnknownStatus) {
		t.Errorf("expected ErrUnknownStatus, got %v", err)
	}
}

func TestVisibleDocuments_Empty(t *testing.T) {
	t.Parallel()

	p := newPolicy(nil)

	visible, err := p.VisibleDocuments(policy.User{ID: "u1", Role: rbac.RoleViewer}, nil)
	require.NoError(t, err)
	require.Empty(t, visible)
}
