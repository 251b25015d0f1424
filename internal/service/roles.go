package service

import "github.com/ncastillo/eserbisyo/models"

// canProcessRequests reports whether the actor may verify, render, or
// release documents.
func canProcessRequests(actor models.Actor) bool {
	if actor.Type != models.ActorOfficial {
		return false
	}
	switch actor.Role {
	case models.RoleSecretary, models.RoleCaptain, models.RoleSuperAdmin:
		return true
	}
	return false
}

// canRecordPayments reports whether the actor may write to the payment
// ledger.
func canRecordPayments(actor models.Actor) bool {
	if actor.Type != models.ActorOfficial {
		return false
	}
	switch actor.Role {
	case models.RoleTreasurer, models.RoleSuperAdmin:
		return true
	}
	return false
}

func isOfficial(actor models.Actor) bool {
	return actor.Type == models.ActorOfficial
}

func isResident(actor models.Actor) bool {
	return actor.Type == models.ActorResident
}
