package models

// TaskKind identifies one of the fixed assistant operations.
type TaskKind string

const (
	TaskGenerate  TaskKind = "generate"
	TaskSummarize TaskKind = "summarize"
	TaskViva      TaskKind = "viva"
	TaskGrade     TaskKind = "grade"
	TaskSimplify  TaskKind = "simplify"
	TaskChat      TaskKind = "chat"
)

func AllTaskKinds() []TaskKind {
	return []TaskKind{TaskGenerate, TaskSummarize, TaskViva, TaskGrade, TaskSimplify, TaskChat}
}

// Task is a decoded request for one task kind.
type Task interface {
	Kind() TaskKind
	// MissingFields lists the JSON names of required fields that are absent or empty.
	MissingFields() []string
}

// GenerateRequest forwards a raw prompt.
type GenerateRequest struct {
	Prompt string `json:"prompt"`
}

func (r GenerateRequest) Kind() TaskKind { return TaskGenerate }

func (r GenerateRequest) MissingFields() []string {
	return missing(field{"prompt", r.Prompt})
}

// SummarizeRequest carries an assignment to summarize.
type SummarizeRequest struct {
	Text string `json:"text"`
}

func (r SummarizeRequest) Kind() TaskKind { return TaskSummarize }

func (r SummarizeRequest) MissingFields() []string {
	return missing(field{"text", r.Text})
}

// VivaRequest carries an assignment to derive viva questions from.
type VivaRequest struct {
	Text string `json:"text"`
}

func (r VivaRequest) Kind() TaskKind { return TaskViva }

func (r VivaRequest) MissingFields() []string {
	return missing(field{"text", r.Text})
}

// GradeRequest compares a student answer against a model answer.
type GradeRequest struct {
	Question      string `json:"question"`
	ModelAnswer   string `json:"modelAnswer"`
	StudentAnswer string `json:"studentAnswer"`
}

func (r GradeRequest) Kind() TaskKind { return TaskGrade }

func (r GradeRequest) MissingFields() []string {
	return missing(
		field{"question", r.Question},
		field{"modelAnswer", r.ModelAnswer},
		field{"studentAnswer", r.StudentAnswer},
	)
}

// SimplifyRequest carries an official notice to rewrite.
type SimplifyRequest struct {
	Text string `json:"text"`
}

func (r SimplifyRequest) Kind() TaskKind { return TaskSimplify }

func (r SimplifyRequest) MissingFields() []string {
	return missing(field{"text", r.Text})
}

// ChatRequest is a single freeform chat turn.
type ChatRequest struct {
	Prompt string `json:"prompt"`
}

func (r ChatRequest) Kind() TaskKind { return TaskChat }

func (r ChatRequest) MissingFields() []string {
	return missing(field{"prompt", r.Prompt})
}

type field struct {
	name  string
	value string
}

func missing(fields ...field) []string {
	var out []string
	for _, f := range fields {
		if f.value == "" {
			out = append(out, f.name)
		}
	}
	return out
}
