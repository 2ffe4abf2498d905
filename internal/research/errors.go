package research

import "fmt"

// Stages a research run can fail in. The stage tells the caller whether to
// blame the topic/model ("research", "bundle") or the local infrastructure
// ("report", "project", "graph").
const (
	StageResearch = "research" // deep-research collaborator call
	StageBundle   = "bundle"   // bundle parse/validation
	StageReport   = "report"   // report file write
	StageProject  = "project"  // project row creation
	StageGraph    = "graph"    // graph materialization
)

// ResearchError is a typed failure of one stage of a research run. The whole
// run aborts on the first failing stage; no partial project is ever exposed.
type ResearchError struct {
	Stage string
	Err   error
}

func (e *ResearchError) Error() string {
	return fmt.Sprintf("research %s stage: %v", e.Stage, e.Err)
}

func (e *ResearchError) Unwrap() error { return e.Err }
