// Package parsing turns loosely formatted resume text into a ResumeRecord
// using layered heuristics, and reports what was and was not found.
package parsing

import (
	"log/slog"
	"strings"

	"github.com/jonathan/resume-builder/internal/provenance"
	"github.com/jonathan/resume-builder/internal/types"
)

// NoTextSentinel is supplied by text acquisition when a source has no
// selectable text (for example an image-only PDF).
const NoTextSentinel = "No text content found in PDF. Please ensure the PDF contains selectable text."

// State is a stage of the parse pipeline.
type State int

const (
	StateIdle State = iota
	StateExtractingIdentity
	StateLocatingSections
	StateExtractingEntries
	StateAssembling
	StateEnhancing
	StateDone
	StateUnparseable
)

var stateNames = map[State]string{
	StateIdle:               "idle",
	StateExtractingIdentity: "extracting_identity",
	StateLocatingSections:   "locating_sections",
	StateExtractingEntries:  "extracting_entries",
	StateAssembling:         "assembling",
	StateEnhancing:          "enhancing",
	StateDone:               "done",
	StateUnparseable:        "unparseable",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// transitions lists the legal successors of each state.
var transitions = map[State][]State{
	StateIdle:               {StateExtractingIdentity, StateUnparseable},
	StateExtractingIdentity: {StateLocatingSections},
	StateLocatingSections:   {StateExtractingEntries},
	StateExtractingEntries:  {StateAssembling},
	StateAssembling:         {StateEnhancing, StateDone},
	StateEnhancing:          {StateDone},
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == StateDone || s == StateUnparseable
}

func canTransition(from, to State) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Enhancer is the optional post-process applied to an assembled record.
// Implementations must return a new record and leave the input untouched.
type Enhancer interface {
	Enhance(record *types.ResumeRecord, text string) *types.ResumeRecord
}

// Result is the output of one parse invocation.
type Result struct {
	Record     *types.ResumeRecord `json:"record"`
	Provenance types.Provenance    `json:"provenance"`
	State      State               `json:"-"`
	Enhanced   bool                `json:"enhanced"`
}

// Err returns ErrUnparseable when the document had no usable text.
func (r Result) Err() error {
	if r.State == StateUnparseable {
		return ErrUnparseable
	}
	return nil
}

// Parser runs the pipeline. The zero value is ready to use and does not enhance.
type Parser struct {
	Logger   *slog.Logger
	Enhancer Enhancer
}

// NewParser creates a parser. Both arguments may be nil.
func NewParser(logger *slog.Logger, enhancer Enhancer) *Parser {
	return &Parser{Logger: logger, Enhancer: enhancer}
}

// ParseResumeText parses text without enhancement.
func ParseResumeText(text string) Result {
	return (&Parser{}).Parse(text)
}

// Parse runs identity extraction, section extraction, and assembly over text.
// It never fails for present text; sections that cannot be read are reported
// in the provenance and left out of the record.
func (p *Parser) Parse(text string) Result {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	run := &pipelineRun{logger: logger, state: StateIdle, tracker: provenance.NewTracker()}

	if isUnparseable(text) {
		run.advance(StateUnparseable)
		run.tracker.Error(NoTextSentinel)
		return run.result(&types.ResumeRecord{}, false)
	}

	record := &types.ResumeRecord{}

	run.advance(StateExtractingIdentity)
	extractIdentity(text, record, run.tracker)

	run.advance(StateLocatingSections)
	run.advance(StateExtractingEntries)
	record.Experience = extractExperience(text, run.tracker)
	record.Education = extractEducation(text, run.tracker)
	extractSkills(text, record, run.tracker)
	record.Projects = extractProjects(text, run.tracker)
	record.Certifications = extractCertifications(text, run.tracker)

	run.advance(StateAssembling)
	assemble(record)

	enhanced := false
	if p.Enhancer != nil {
		run.advance(StateEnhancing)
		record = p.Enhancer.Enhance(record, text)
		enhanced = true
	}
	run.advance(StateDone)

	res := run.result(record, enhanced)
	logger.Debug("resume parsed",
		"successes", len(res.Provenance.Successes),
		"warnings", len(res.Provenance.Warnings),
		"skipped", len(res.Provenance.Skipped),
		"enhanced", enhanced)
	return res
}

// isUnparseable reports whether text is blank or carries the no-text sentinel.
func isUnparseable(text string) bool {
	t := strings.TrimSpace(text)
	return t == "" || strings.Contains(t, NoTextSentinel)
}

type pipelineRun struct {
	logger  *slog.Logger
	state   State
	tracker *provenance.Tracker
}

func (r *pipelineRun) advance(to State) {
	if !canTransition(r.state, to) {
		r.logger.Error("parse pipeline transition rejected", "error", &StateError{From: r.state, To: to})
		return
	}
	r.logger.Debug("parse pipeline", "from", r.state.String(), "to", to.String())
	r.state = to
}

func (r *pipelineRun) result(record *types.ResumeRecord, enhanced bool) Result {
	return Result{
		Record:     record,
		Provenance: r.tracker.Report(),
		State:      r.state,
		Enhanced:   enhanced,
	}
}
