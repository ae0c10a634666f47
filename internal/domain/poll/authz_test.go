package poll

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pollboard/internal/domain/identity"
)

func TestCanMutate(t *testing.T) {
	p := &Poll{ID: "p1", OwnerID: "u1"}

	tests := []struct {
		name   string
		caller *identity.Identity
		want   bool
	}{
		{"anonymous", nil, false},
		{"empty identity", &identity.Identity{}, false},
		{"owner", &identity.Identity{ID: "u1", Role: identity.RoleUser}, true},
		{"other user", &identity.Identity{ID: "u2", Role: identity.RoleUser}, false},
		{"admin non-owner", &identity.Identity{ID: "u2", Role: identity.RoleAdmin}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanMutate(tt.caller, p))
		})
	}
}
