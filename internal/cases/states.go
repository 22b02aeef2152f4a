package cases

// State identifies one of the tracked states. Its value is the bar index.
type State int

const (
	California State = iota
	Texas
	Florida
	NewYork
	Illinois
)

// NumTracked is the number of tracked states
const NumTracked = 5

// StateInfo pairs a state identifier with its display name
type StateInfo struct {
	ID   State
	Name string
}

// TrackedStates lists the tracked states in display order
var TrackedStates = [NumTracked]StateInfo{
	{ID: California, Name: "California"},
	{ID: Texas, Name: "Texas"},
	{ID: Florida, Name: "Florida"},
	{ID: NewYork, Name: "New York"},
	{ID: Illinois, Name: "Illinois"},
}

// String returns the display name
func (s State) String() string {
	if s < 0 || int(s) >= NumTracked {
		return "unknown"
	}
	return TrackedStates[s].Name
}

// LookupState matches a source state name exactly (case-sensitive)
func LookupState(name string) (State, bool) {
	for _, info := range TrackedStates {
		if info.Name == name {
			return info.ID, true
		}
	}
	return 0, false
}
