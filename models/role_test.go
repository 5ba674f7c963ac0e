package models

import "testing"

func TestRoleCapabilities(t *testing.T) {
	tests := []struct {
		role          Role
		valid         bool
		manageContent bool
	}{
		{RoleAdmin, true, true},
		{RoleLearner, true, false},
		{Role("TEACHER"), false, false},
		{Role(""), false, false},
	}

	for _, tc := range tests {
		if got := tc.role.Valid(); got != tc.valid {
			t.Errorf("Role(%q).Valid() = %v, want %v", tc.role, got, tc.valid)
		}
		if got := tc.role.CanManageContent(); got != tc.manageContent {
			t.Errorf("Role(%q).CanManageContent() = %v, want %v", tc.role, got, tc.manageContent)
		}
	}
}
