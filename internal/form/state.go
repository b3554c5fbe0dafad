package form

import "github.com/amishk599/shortlist/internal/model"

// State is the submission status. Exactly one variant holds at a time:
// Idle, Loading, Succeeded or Failed.
type State interface {
	isState()
}

// Idle is the state before the first submission.
type Idle struct{}

// Loading means a request is in flight.
type Loading struct{}

// Succeeded holds the results of the last submission.
type Succeeded struct {
	Results []model.AnalysisResult
}

// Failed holds the user-facing message of the last failed submission.
type Failed struct {
	Message string
}

func (Idle) isState()      {}
func (Loading) isState()   {}
func (Succeeded) isState() {}
func (Failed) isState()    {}
