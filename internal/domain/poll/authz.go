package poll

import "pollboard/internal/domain/identity"

// CanMutate is the single predicate behind update and delete: the owner may
// mutate their own poll, an admin may mutate any poll, an anonymous caller
// may mutate nothing. Callers evaluate it after the poll is known to exist
// and before any write, so a refused caller leaves no trace in the store.
func CanMutate(caller *identity.Identity, p *Poll) bool {
	if caller.IsAnonymous() {
		return false
	}
	return caller.IsPrivileged() || caller.ID == p.OwnerID
}
