// Package entity contains the core business objects of the project.
package entity

// Onboarding step numbers per actor type. The registration step counter on an
// identity and its profile records the highest step reached; handlers never
// assume the counter equals "previous step + 1".
const (
	// Independent professional sequence.
	ProfessionalStepProfile   = 1
	ProfessionalStepPortfolio = 2
	ProfessionalStepServices  = 3
	ProfessionalStepSubmit    = 4

	// Salon owner sequence carries an extra operating-hours step.
	SalonStepProfile   = 1
	SalonStepPortfolio = 2
	SalonStepServices  = 3
	SalonStepHours     = 4
	SalonStepFAQs      = 5
	SalonStepFinalize  = 6
)

// FinalStep returns the terminal step number of the onboarding sequence for a
// provider type. Completing it flips the identity's approval status to
// pending.
func FinalStep(t ProviderType) int {
	if t == ProviderTypeSalon {
		return SalonStepFinalize
	}

	return ProfessionalStepSubmit
}
