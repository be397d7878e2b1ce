package state

// Interface defines the state manager contract for dependency injection
// and testing.
type Interface interface {
	OnboardingCompleted() bool
	SetOnboardingCompleted(done bool) error
	HintsEnabled() bool
	SetHintsEnabled(enabled bool) error
	SelectedTarget() string
	SaveSelectedTarget(id string)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
