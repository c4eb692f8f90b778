package domain

// Mode identifies which practice tool a session belongs to.
type Mode string

const (
	ModeAnalysis  Mode = "analysis"
	ModeSimulator Mode = "simulator"
	ModeDrill     Mode = "drill"
)

// ExamType distinguishes direct from cross examination.
type ExamType string

const (
	ExamDirect ExamType = "direct"
	ExamCross  ExamType = "cross"
)

// ValidExamTypes enumerates the accepted exam types.
var ValidExamTypes = map[ExamType]bool{
	ExamDirect: true,
	ExamCross:  true,
}

// Label returns the human-readable name used in prompts and exports.
func (e ExamType) Label() string {
	if e == ExamCross {
		return "Cross-Examination"
	}
	return "Direct Examination"
}

// AnalysisType selects one of the case analysis templates.
type AnalysisType string

const (
	AnalysisFullCase             AnalysisType = "full_case"
	AnalysisKeyFacts             AnalysisType = "key_facts"
	AnalysisLegalIssues          AnalysisType = "legal_issues"
	AnalysisProsecutionArguments AnalysisType = "prosecution_arguments"
	AnalysisDefenseArguments     AnalysisType = "defense_arguments"
	AnalysisWitnessQuestions     AnalysisType = "witness_questions"
	AnalysisOpeningStatement     AnalysisType = "opening_statement"
	AnalysisClosingStatement     AnalysisType = "closing_statement"
)

// ValidAnalysisTypes enumerates the accepted analysis types.
var ValidAnalysisTypes = map[AnalysisType]bool{
	AnalysisFullCase:             true,
	AnalysisKeyFacts:             true,
	AnalysisLegalIssues:          true,
	AnalysisProsecutionArguments: true,
	AnalysisDefenseArguments:     true,
	AnalysisWitnessQuestions:     true,
	AnalysisOpeningStatement:     true,
	AnalysisClosingStatement:     true,
}

// Ruling is the judgment on a practice examination question.
type Ruling string

const (
	RulingProper   Ruling = "proper"
	RulingImproper Ruling = "improper"
)

// ValidRulings enumerates the accepted rulings.
var ValidRulings = map[Ruling]bool{
	RulingProper:   true,
	RulingImproper: true,
}
