package web

import (
	"log/slog"
	"net/http"

	"jsanalyzer/internal/core/app"
	"jsanalyzer/internal/shared/version"
)

type pageData struct {
	Code     string
	Question string
	Analysis *analysisView
	Answer   *answerView
	Version  string
}

type analysisView struct {
	Class       string
	Message     string
	Summary     string
	Diagnostics []string
}

type answerView struct {
	Class   string
	Message string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, pageData{})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	code := r.PostFormValue("code")

	report := s.analyzer.Analyze(r.Context(), code)

	view := &analysisView{
		Class:   statusClass(report.Status),
		Message: report.Message,
		Summary: report.Summary,
	}
	for _, d := range report.Diagnostics() {
		view.Diagnostics = append(view.Diagnostics, d.String())
	}

	slog.Info("analyze request",
		"request_id", RequestIDFromContext(r.Context()),
		"status", report.Status.String(),
		"functions", len(report.Result.Functions),
		"variables", len(report.Result.Variables),
		"diagnostics", len(view.Diagnostics),
	)

	s.render(w, r, pageData{
		Code:     code,
		Question: r.PostFormValue("question"),
		Analysis: view,
	})
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	code := r.PostFormValue("code")
	question := r.PostFormValue("question")

	report := s.analyzer.Ask(r.Context(), code, question)

	slog.Info("ask request",
		"request_id", RequestIDFromContext(r.Context()),
		"status", report.Status.String(),
		"answer", report.Answer.Kind.String(),
	)

	s.render(w, r, pageData{
		Code:     code,
		Question: question,
		Answer: &answerView{
			Class:   answerClass(report),
			Message: report.Message,
		},
	})
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, data pageData) {
	data.Version = version.Version
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, data); err != nil {
		slog.Error("render page", "request_id", RequestIDFromContext(r.Context()), "error", err)
	}
}

func statusClass(status app.Status) string {
	if status == app.StatusOK {
		return "success"
	}
	return "error"
}

func answerClass(report app.QuestionReport) string {
	switch {
	case report.Status != app.StatusOK:
		return "error"
	case report.Answer.Kind == app.AnswerUnrecognized:
		return "warning"
	default:
		return "info"
	}
}
