package domain

// Transition is one entry of a transition table: reading Via in From moves to To.
type Transition struct {
	From State  `json:"from" yaml:"from"`
	Via  Symbol `json:"via" yaml:"via"`
	To   State  `json:"to" yaml:"to"`
}
