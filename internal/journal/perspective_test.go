package journal

import (
	"testing"

	"github.com/rakesh-arrepu/HHH-sub000/internal/models"
)

func TestResolvePerspective(t *testing.T) {
	members := []models.Member{
		{ID: 1, UserID: 7, Name: "Owner", Email: "owner@example.com"},
		{ID: 2, UserID: 9, Name: "Member", Email: "member@example.com"},
	}

	tests := []struct {
		name      string
		isOwner   bool
		requested int
		self      int
		want      Perspective
	}{
		{
			name:      "no request means self",
			isOwner:   true,
			requested: 0,
			self:      7,
			want:      Perspective{},
		},
		{
			name:      "owner requesting self stays editable",
			isOwner:   true,
			requested: 7,
			self:      7,
			want:      Perspective{},
		},
		{
			name:      "owner viewing member is read-only",
			isOwner:   true,
			requested: 9,
			self:      7,
			want:      Perspective{UserID: 9, ReadOnly: true},
		},
		{
			name:      "non-owner requesting another member coerced to self",
			isOwner:   false,
			requested: 7,
			self:      9,
			want:      Perspective{},
		},
		{
			name:      "owner requesting a non-member coerced to self",
			isOwner:   true,
			requested: 42,
			self:      7,
			want:      Perspective{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolvePerspective(tt.isOwner, members, tt.requested, tt.self)
			if got != tt.want {
				t.Errorf("ResolvePerspective() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
