package service

import "fleetflow/internal/model"

// allowedTransitions is the trip lifecycle: Draft is the only initial state,
// Completed and Cancelled are terminal, Cancelled is reachable from both
// Draft and Dispatched.
var allowedTransitions = map[model.TripStatus][]model.TripStatus{
	model.TripStatusDraft:      {model.TripStatusDispatched, model.TripStatusCancelled},
	model.TripStatusDispatched: {model.TripStatusCompleted, model.TripStatusCancelled},
	model.TripStatusCompleted:  {},
	model.TripStatusCancelled:  {},
}

func CanTransition(from, to model.TripStatus) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
