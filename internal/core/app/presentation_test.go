package app

import (
	"testing"

	"jsanalyzer/internal/engine/extractor"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name string
		res  extractor.Result
		want string
	}{
		{
			name: "both populated",
			res:  extractor.Result{Functions: []string{"foo"}, Variables: []string{"x"}},
			want: "Functions: foo\nVariables: x",
		},
		{
			name: "no functions",
			res:  extractor.Result{Variables: []string{"a", "b", "c"}},
			want: "Functions: None\nVariables: a, b, c",
		},
		{
			name: "empty",
			res:  extractor.Result{},
			want: "Functions: None\nVariables: None",
		},
		{
			name: "duplicates kept",
			res:  extractor.Result{Functions: []string{"f", "f"}},
			want: "Functions: f, f\nVariables: None",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(tt.res))
		})
	}
}

func TestAnswerQuestion(t *testing.T) {
	res := extractor.Result{Functions: []string{"foo", "bar"}, Variables: []string{"x"}}

	tests := []struct {
		question string
		kind     AnswerKind
		names    []string
	}{
		{"what functions exist?", AnswerFunctions, []string{"foo", "bar"}},
		{"what functions and variables?", AnswerFunctions, []string{"foo", "bar"}},
		{"List the VARIABLES", AnswerVariables, []string{"x"}},
		{"which variable is global", AnswerVariables, []string{"x"}},
		{"how many lines?", AnswerUnrecognized, nil},
		{"", AnswerUnrecognized, nil},
	}

	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			ans := AnswerQuestion(tt.question, res)
			assert.Equal(t, tt.kind, ans.Kind)
			assert.Equal(t, tt.names, ans.Names)
		})
	}
}

func TestAnswerText(t *testing.T) {
	assert.Equal(t, "Here are the detected functions:\n- foo\n- bar",
		Answer{Kind: AnswerFunctions, Names: []string{"foo", "bar"}}.Text())
	assert.Equal(t, "Here are the detected variables:\n- x",
		Answer{Kind: AnswerVariables, Names: []string{"x"}}.Text())
	assert.Equal(t, "No functions detected.", Answer{Kind: AnswerFunctions}.Text())
	assert.Equal(t, "No variables detected.", Answer{Kind: AnswerVariables}.Text())
	assert.Equal(t, "Sorry, I can't answer that question yet!", Answer{}.Text())
}

func TestAnswerKindString(t *testing.T) {
	assert.Equal(t, "functions", AnswerFunctions.String())
	assert.Equal(t, "variables", AnswerVariables.String())
	assert.Equal(t, "unrecognized", AnswerUnrecognized.String())
}
