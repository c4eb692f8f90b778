// Package prompt holds the prompt templates sent to the completion
// providers. Templates interpolate only the prepared case context and
// user-supplied names; all wording lives here so the services stay free of
// prompt text.
package prompt

import (
	"fmt"
	"strings"

	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/domain"
)

// AnalysisSystem is the coach persona shared by every case analysis request.
func AnalysisSystem() string {
	return `You are an expert Mock Trial coach who has studied national championship performances. You analyze ONLY what is explicitly written in the case packet.

ABSOLUTE RULES:
1. ONLY STATE FACTS EXPLICITLY WRITTEN IN THE CASE PACKET
2. NEVER INVENT OR ASSUME
3. DISTINGUISH META-INFO FROM CASE CONTENT
4. WHEN UNCERTAIN: State "This is not specified in the case packet"
5. ACCURACY OVER COMPLETENESS

STYLISTIC GUIDELINES (inspired by championship mock trial performances):
- Use powerful, memorable phrasing for key points
- Create narrative themes that tie facts together
- Identify "story arcs" within the case
- Suggest compelling metaphors that fit the case facts
- Highlight emotional resonance of key facts
- Frame arguments with rhetorical techniques (rule of three, contrasts, repetition)

Your analysis must be 100% grounded in the case packet provided, but presented with championship-level strategic insight.`
}

// Analysis returns the user prompt for the requested analysis type.
// witnessName is only used by the witness_questions template.
func Analysis(t domain.AnalysisType, caseText, witnessName string) string {
	switch t {
	case domain.AnalysisFullCase:
		return fmt.Sprintf(`Analyze this case using ONLY information explicitly stated below.

**1. CASE OVERVIEW & THEME**
- Parties, charges, key dates
- **NARRATIVE THEME**: Compelling story (1-2 sentences)
- **CASE TAGLINE**: Memorable phrase

**2. CRITICAL FACTS (18-20 facts)**
For each: fact with quotes, legal significance, strategic value, source, emotional impact, catchphrase opportunity

**3. LEGAL ELEMENTS & BURDEN**
- What must be proven
- Strength assessment for each element

**4. PROSECUTION/PLAINTIFF STRATEGY**
- Core theory, theme statement
- 3 strongest arguments with evidence
- Power phrases (3-5 memorable lines)

**5. DEFENSE STRATEGY**
- Core theory, theme statement
- 3 strongest arguments with evidence
- Power phrases (3-5 memorable lines)

**6. WITNESS BREAKDOWN**
For each: role, credibility assessment, key testimony with quotes, contradictions, examination strategy, memorable characterization

**7. EVIDENCE & EXHIBITS**
- Key exhibits and what they prove
- Timeline reconstruction
- Visual opportunities

**8. STRATEGIC ROADMAP**
- Opening hook ideas (3 approaches)
- Closing themes (2-3 alternatives)
- Zingers (5-7 powerful one-liners from case facts)
- Winning moments

===CASE PACKET===
%s
===END===

Championship-level analysis using only case facts.`, caseText)

	case domain.AnalysisKeyFacts:
		return fmt.Sprintf(`Extract 20 most legally significant facts.

**FACT #X: [Dramatic phrasing]**
- Quote: "[Exact quote]"
- Source: [Witness/exhibit]
- Legal significance
- Strategic value
- Power phrase
- Juror appeal

Prioritize: disputed facts, contradictions, timeline issues, credibility indicators, smoking guns, emotional resonance.

===CASE PACKET===
%s
===END===

20 strategic facts.`, caseText)

	case domain.AnalysisLegalIssues:
		return fmt.Sprintf(`Identify key legal issues.

**ISSUE #X:**
- Elements to prove
- Burden of proof
- Evidence for each side with strength
- Battleground analysis
- Winning approach
- Catchphrase

===CASE PACKET===
%s
===END===`, caseText)

	case domain.AnalysisProsecutionArguments:
		return fmt.Sprintf(`Develop 5 championship prosecution arguments.

**ARGUMENT #X: [Title]**
- Theme statement
- Evidence chain with quotes
- Why this wins
- Power phrases (3-5 lines)
- Defense counter & response
- Closing moment

===CASE PACKET===
%s
===END===`, caseText)

	case domain.AnalysisDefenseArguments:
		return fmt.Sprintf(`Develop 5 championship defense arguments.

**ARGUMENT #X: [Title]**
- Theme statement
- Evidence chain with quotes
- Why this creates reasonable doubt
- Power phrases (3-5 lines)
- Prosecution counter & response
- Closing moment

===CASE PACKET===
%s
===END===`, caseText)

	case domain.AnalysisWitnessQuestions:
		return fmt.Sprintf(`Generate championship examination questions for: %s

**WITNESS PROFILE**
- Role, credibility, bias, one-line characterization

**DIRECT EXAMINATION (12 questions)**
- Foundation (2-3)
- Key facts (6-7)
- Credibility building (2-3)
[For each: purpose, follow-up, emotional moment]

**CROSS-EXAMINATION (12 questions)**
- Control & commitment (2-3)
- Impeachment (7-8)
- Final blow (2-3)
[For each: goal, expected answer, impeachment setup, resistance plan]

**POWER MOVES**
- Impeachment opportunities
- Zingers
- Silence moments
- Exhibits to use

If %s is NOT a witness: State so.

===CASE PACKET===
%s
===END===`, witnessName, witnessName, caseText)

	case domain.AnalysisOpeningStatement:
		return fmt.Sprintf(`Draft championship opening frameworks.

**PROSECUTION/PLAINTIFF:**
1. Hook (3 alternatives: dramatic quote, rhetorical question, vivid scene)
2. Theme statement (1 sentence to repeat)
3. Story (chronological with emotional beats, power phrases, repetition device)
4. What we will prove (element by element)
5. Closing line (3 alternatives)

**DEFENSE:**
1. Hook (3 alternatives)
2. Theme statement (reasonable doubt)
3. Defense story
4. What prosecution must prove
5. Closing line (3 alternatives)

Championship techniques: rule of three, present tense, rhetorical questions, contrasts, repetition, silence.

===CASE PACKET===
%s
===END===`, caseText)

	case domain.AnalysisClosingStatement:
		return fmt.Sprintf(`Draft championship closing frameworks.

**PROSECUTION/PLAINTIFF:**
1. Opening hook (3 alternatives, return to theme)
2. "Here's what happened" (dramatic retelling)
3. Elements proven (each with evidence, power phrases)
4. Credibility (why ours are credible, theirs aren't)
5. Addressing defense (anticipate and dismantle)
6. The stakes (why this matters)
7. Final appeal (mic drop moment)

**DEFENSE:**
1. Opening hook (presumption of innocence)
2. "Here's what they cannot prove"
3. Reasonable doubt (each element, why not proven)
4. Credibility (their problems, our credibility)
5. Addressing prosecution (pre-emptive dismantling)
6. The stakes (innocence protection)
7. Final appeal (powerful final line)

Championship techniques, power phrases bank (10-15 from case).

===CASE PACKET===
%s
===END===`, caseText)
	}
	return ""
}

// WitnessSystem is the per-turn system instruction for the simulator.
func WitnessSystem(witnessName string) string {
	return fmt.Sprintf("You are %s, a witness. Answer ONLY based on testimony. Object to improper questions.", witnessName)
}

// WitnessSetup is the persona context that anchors every simulator turn.
func WitnessSetup(witnessName string, examType domain.ExamType, caseText string) string {
	return fmt.Sprintf(`You are %s, a WITNESS in this case.

RULES:
1. Answer ONLY based on %s's witness statement
2. Stay 100%% consistent
3. If unknown: "I don't know" or "I don't recall"
4. For improper questions: "OBJECTION: [reason]"
5. Do NOT invent facts

Exam type: %s

===CASE===
%s
===END===

You are %s.`, witnessName, witnessName, examType.Label(), caseText, witnessName)
}

// WitnessTurn combines the persona setup, the recent transcript window, and
// the new question into one user prompt.
func WitnessTurn(setup string, recent []domain.Exchange, question, witnessName string) string {
	var conv strings.Builder
	for i, ex := range recent {
		if i > 0 {
			conv.WriteString("\n")
		}
		fmt.Fprintf(&conv, "Q: %s\nA: %s", ex.Question, ex.Answer)
	}

	return fmt.Sprintf(`%s

Previous:
%s

New question: %s

Respond as %s:
- If improper: "OBJECTION: [reason]"
- If proper: Answer based ONLY on testimony`, setup, conv.String(), question, witnessName)
}

// FeedbackSystem is the coach persona for examination feedback.
func FeedbackSystem() string {
	return "You are an expert mock trial coach. Provide constructive feedback."
}

// Feedback asks for coach feedback on the questions asked so far.
func Feedback(examType domain.ExamType, questions []string) string {
	var transcript strings.Builder
	for i, q := range questions {
		if i > 0 {
			transcript.WriteString("\n")
		}
		fmt.Fprintf(&transcript, "Q%d: %s", i+1, q)
	}

	return fmt.Sprintf(`You are a championship mock trial coach. Provide feedback on this %s examination.

TRANSCRIPT:
%s

PROVIDE:
**OVERALL ASSESSMENT**
**STRENGTHS** (2-3 specific)
**AREAS FOR IMPROVEMENT** (3-4 with examples and fixes)
**QUESTION-BY-QUESTION NOTES**
**RULES FOLLOWED/VIOLATED**
**CHAMPIONSHIP TIPS**
**SUGGESTED QUESTIONS TO ADD** (3-5)

Be specific, actionable.`, examType.Label(), transcript.String())
}

// DrillSystem is the judge persona for objection drill question generation.
func DrillSystem() string {
	return "You are a mock trial judge creating practice questions. Generate realistic, educational questions."
}

// DrillQuestion asks the model for one examination question that is either
// proper or improper, in the line-tagged format the drill parser expects.
func DrillQuestion(witnessName string, examType domain.ExamType, caseContext string) string {
	improper := "- Improper questions: non-leading, compound, argumentative, asked and answered, speculation"
	if examType == domain.ExamDirect {
		improper = "- Improper questions: leading, assumes facts not in evidence, compound, argumentative"
	}

	return fmt.Sprintf(`You are generating a mock trial examination question for objection practice.

Witness: %s
Examination type: %s

Case context:
%s

Generate ONE realistic examination question that is either:
- Proper (no objection needed), OR
- Improper (objection should be made)

For %s:
%s

Output format:
QUESTION: [the actual question]
RULING: [PROPER or IMPROPER]
REASON: [If improper, what objection applies. If proper, why it's acceptable]
EXPLANATION: [Brief explanation of why this is proper/improper for this examination type]

Generate a realistic question based on the case.`, witnessName, examType.Label(), caseContext, examType.Label(), improper)
}

// CondenseSystem is the instruction for the size-management condense call.
func CondenseSystem() string {
	return "Extract case content only. Preserve all legal details. Remove meta-information."
}

// Condense asks the model to compress an over-budget case packet while
// keeping every case-relevant detail.
func Condense(text string) string {
	return fmt.Sprintf(`Extract ONLY legal case content from this document.

RULES:
1. INCLUDE all charges, parties, witnesses, dates, locations, events, evidence, testimony
2. PRESERVE exact names, numbers, quotes
3. KEEP all contradictions and disputed facts
4. EXCLUDE dedications, author info, competition rules, instructions

Output ONLY case facts. No preamble.

Document:
%s

Case content only:`, text)
}
