package app

import (
	"strings"

	"jsanalyzer/internal/engine/extractor"
	"jsanalyzer/internal/shared/observability"
)

const noneMarker = "None"

// Summarize renders the two-line overview of an extraction result.
func Summarize(res extractor.Result) string {
	return "Functions: " + joinOrNone(res.Functions) + "\n" +
		"Variables: " + joinOrNone(res.Variables)
}

func joinOrNone(names []string) string {
	if len(names) == 0 {
		return noneMarker
	}
	return strings.Join(names, ", ")
}

type AnswerKind int

const (
	AnswerUnrecognized AnswerKind = iota
	AnswerFunctions
	AnswerVariables
)

func (k AnswerKind) String() string {
	switch k {
	case AnswerFunctions:
		return "functions"
	case AnswerVariables:
		return "variables"
	default:
		return "unrecognized"
	}
}

// Answer is the reply to a free-form question. Names is empty for
// AnswerUnrecognized.
type Answer struct {
	Kind  AnswerKind
	Names []string
}

const (
	functionsHeading  = "Here are the detected functions:"
	variablesHeading  = "Here are the detected variables:"
	noFunctionsText   = "No functions detected."
	noVariablesText   = "No variables detected."
	unrecognizedReply = "Sorry, I can't answer that question yet!"
)

// Text renders the answer the way every presentation layer shows it.
func (a Answer) Text() string {
	switch a.Kind {
	case AnswerFunctions:
		return listOrMarker(functionsHeading, noFunctionsText, a.Names)
	case AnswerVariables:
		return listOrMarker(variablesHeading, noVariablesText, a.Names)
	default:
		return unrecognizedReply
	}
}

func listOrMarker(heading, empty string, names []string) string {
	if len(names) == 0 {
		return empty
	}
	var b strings.Builder
	b.WriteString(heading)
	for _, name := range names {
		b.WriteString("\n- ")
		b.WriteString(name)
	}
	return b.String()
}

// AnswerQuestion matches the question against the two supported keywords,
// case-insensitively. "function" wins when both appear.
func AnswerQuestion(question string, res extractor.Result) Answer {
	q := strings.ToLower(question)

	var ans Answer
	switch {
	case strings.Contains(q, "function"):
		ans = Answer{Kind: AnswerFunctions, Names: res.Functions}
	case strings.Contains(q, "variable"):
		ans = Answer{Kind: AnswerVariables, Names: res.Variables}
	default:
		ans = Answer{Kind: AnswerUnrecognized}
	}
	observability.QuestionsTotal.WithLabelValues(ans.Kind.String()).Inc()
	return ans
}
