package services

import (
	"fmt"

	"campusai-backend/internal/models"
)

var requiredMessages = map[models.TaskKind]string{
	models.TaskGenerate:  "Prompt is required",
	models.TaskSummarize: "Text input is required",
	models.TaskViva:      "Text input is required",
	models.TaskGrade:     "Question, Model Answer, and Student Answer are required",
	models.TaskSimplify:  "Text input is required",
	models.TaskChat:      "Prompt is required",
}

// ValidateTask returns a *ValidationError naming every missing field, or nil.
func ValidateTask(task models.Task) error {
	fields := task.MissingFields()
	if len(fields) == 0 {
		return nil
	}

	verr := &ValidationError{
		Message: requiredMessages[task.Kind()],
		Fields:  make(map[string]string, len(fields)),
	}
	for _, f := range fields {
		verr.Fields[f] = "is required"
	}
	return verr
}

// BuildPrompt renders the fixed template for a validated task.
func BuildPrompt(task models.Task) (string, error) {
	switch t := task.(type) {
	case models.GenerateRequest:
		return t.Prompt, nil
	case models.SummarizeRequest:
		return "Summarize this academic assignment in 5 bullet points.\n" +
			"Extract key concepts.\n" +
			"Provide difficulty level (Easy/Medium/Hard).\n\n" +
			"Assignment: " + t.Text, nil
	case models.VivaRequest:
		return "Generate 10 viva questions from this assignment.\n" +
			"5 basic\n" +
			"3 medium\n" +
			"2 advanced.\n\n" +
			"Assignment: " + t.Text, nil
	case models.GradeRequest:
		return "Compare student answer with model answer.\n" +
			"Give score out of 10.\n" +
			"Explain deductions briefly.\n\n" +
			"Question: " + t.Question + "\n" +
			"Model Answer: " + t.ModelAnswer + "\n" +
			"Student Answer: " + t.StudentAnswer, nil
	case models.SimplifyRequest:
		return "Convert this official university notice into simple language.\n" +
			"Extract 3 key deadlines.\n" +
			"List action steps clearly.\n\n" +
			"Notice: " + t.Text, nil
	case models.ChatRequest:
		return "You are a helpful university academic assistant. Answer clearly and concisely.\n\n" +
			"User: " + t.Prompt, nil
	default:
		return "", fmt.Errorf("unsupported task type %T", task)
	}
}
