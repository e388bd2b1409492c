package domain

import (
	"fmt"
	"strings"
)

// Alert алерт внешней системы, пришедший через вебхук
type Alert struct {
	Message  string
	Source   string
	Severity string
}

// Text текст для чата алертов; без источника и важности отправляется как есть
func (a Alert) Text() string {
	if a.Source == "" && a.Severity == "" {
		return a.Message
	}

	var b strings.Builder
	b.WriteString("🔔 Alert")
	if a.Source != "" {
		fmt.Fprintf(&b, " from %s", a.Source)
	}
	if a.Severity != "" {
		fmt.Fprintf(&b, " [%s]", strings.ToUpper(a.Severity))
	}
	b.WriteString("\n\n")
	b.WriteString(a.Message)
	return b.String()
}

// JobFailure фоновая задача исчерпала все повторы
type JobFailure struct {
	Job      string
	Attempts []error
}

func (f JobFailure) Text() string {
	var b strings.Builder
	b.WriteString("⚠️ Scheduler job failed, retries exhausted\n\n")
	fmt.Fprintf(&b, "Job: %s\n\n", f.Job)
	b.WriteString("Attempt errors:")
	for i, err := range f.Attempts {
		fmt.Fprintf(&b, "\nAttempt %d: %s", i+1, err)
	}
	return b.String()
}
