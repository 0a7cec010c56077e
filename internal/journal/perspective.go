package journal

import "github.com/rakesh-arrepu/HHH-sub000/internal/models"

// Perspective is the resolved view: whose data is shown and whether the
// view allows edits. A zero UserID means the caller's own data.
type Perspective struct {
	UserID   int
	ReadOnly bool
}

// ResolvePerspective decides the effective viewed user. Only a group
// owner may view another member, and then only read-only. Any request a
// non-owner makes for someone else, or for a user not in the member list,
// falls back to self. This is a UX convenience; the server re-validates
// every request.
func ResolvePerspective(isOwner bool, members []models.Member, requestedUserID, selfUserID int) Perspective {
	if requestedUserID == 0 || requestedUserID == selfUserID {
		return Perspective{}
	}
	if !isOwner {
		return Perspective{}
	}
	for _, m := range members {
		if m.UserID == requestedUserID {
			return Perspective{UserID: requestedUserID, ReadOnly: true}
		}
	}
	return Perspective{}
}
