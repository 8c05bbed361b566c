// Package policy contains the pure access-control decisions for investments.
// Functions here are side-effect free and never touch a store; the service
// layer resolves the actor and the record, policy only decides.
package policy

import (
	"github.com/altfolio/portfolio-api/internal/core/domain"
)

// CanRead reports whether actor may see the investment: admins see
// everything, viewers only investments they co-own.
func CanRead(actor *domain.User, inv *domain.Investment) bool {
	return actor.IsAdmin() || inv.OwnedBy(actor.ID)
}

// CanModify reports whether actor may mutate the investment. Read and write
// visibility share the same rule — there are no read-only collaborators.
func CanModify(actor *domain.User, inv *domain.Investment) bool {
	return CanRead(actor, inv)
}

// CheckOwners validates a proposed owner set against the actor. A non-admin
// must always appear in the owner set of anything they create or retain
// after an update: they may neither create an investment that excludes
// themselves nor remove themselves from one.
func CheckOwners(actor *domain.User, proposed []string, isUpdate bool) error {
	if actor.IsAdmin() {
		return nil
	}
	for _, id := range proposed {
		if id == actor.ID {
			return nil
		}
	}
	if isUpdate {
		return domain.ErrForbiddenOwnerRemoval
	}
	return domain.ErrForbiddenOwnerSet
}

// CheckInvestmentCap enforces the business-policy ceiling on invested
// amount for non-admin actors. The universal bound (domain.MaxAmount) is a
// separate validation concern and applies to everyone.
func CheckInvestmentCap(actor *domain.User, investedAmount float64) error {
	if actor.IsAdmin() {
		return nil
	}
	if investedAmount > domain.ViewerInvestmentCap {
		return domain.ErrInvestmentCapExceeded
	}
	return nil
}
