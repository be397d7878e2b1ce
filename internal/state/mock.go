// internal/state/mock.go
package state

// Mock is a test double for Manager.
type Mock struct {
	Onboarded  bool
	Hints      bool
	TargetID   string
	SaveCalls  int
	closedFlag bool
}

// NewMock creates a new mock state manager for testing. Hints default
// to enabled, matching the real manager.
func NewMock() *Mock {
	return &Mock{Hints: true}
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)

func (m *Mock) OnboardingCompleted() bool { return m.Onboarded }

func (m *Mock) SetOnboardingCompleted(done bool) error {
	m.Onboarded = done
	return nil
}

func (m *Mock) HintsEnabled() bool { return m.Hints }

func (m *Mock) SetHintsEnabled(enabled bool) error {
	m.Hints = enabled
	return nil
}

func (m *Mock) SelectedTarget() string { return m.TargetID }

func (m *Mock) SaveSelectedTarget(id string) {
	m.TargetID = id
	m.SaveCalls++
}

func (m *Mock) Close() error {
	m.closedFlag = true
	return nil
}
