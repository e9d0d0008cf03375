package validate

import (
	"testing"

	"podcheck-api/core/domain"
)

func TestValidateChapters_Clean(t *testing.T) {
	chapters := []domain.Chapter{
		{StartTime: 0, Title: "Intro"},
		{StartTime: 120, Title: "Main"},
		{StartTime: 340, Title: "Outro"},
	}

	if findings := ValidateChapters(chapters); len(findings) != 0 {
		t.Errorf("clean chapters produced findings: %+v", findings)
	}
}

func TestValidateChapters_NegativeStart(t *testing.T) {
	chapters := []domain.Chapter{{StartTime: -5, Title: "Bad"}}

	findings := ValidateChapters(chapters)
	if !hasFinding(findings, "Chapter 1: Negative Start Time") {
		t.Error("negative start time should be an error")
	}
}

func TestValidateChapters_OutOfOrder(t *testing.T) {
	chapters := []domain.Chapter{
		{StartTime: 100, Title: "A"},
		{StartTime: 50, Title: "B"},
	}

	findings := ValidateChapters(chapters)
	matches := findingsByTitle(findings, "Chapter 2: Out of Order")
	if len(matches) != 1 || matches[0].Type != domain.SeverityError {
		t.Errorf("out-of-order chapter should be an error, got %+v", findings)
	}
}

func TestValidateChapters_EqualStartsOutOfOrder(t *testing.T) {
	chapters := []domain.Chapter{
		{StartTime: 60, Title: "A"},
		{StartTime: 60, Title: "B"},
	}

	if !hasFinding(ValidateChapters(chapters), "Chapter 2: Out of Order") {
		t.Error("equal start times should be an error")
	}
}

func TestValidateChapters_MissingTitle(t *testing.T) {
	chapters := []domain.Chapter{{StartTime: 0}}

	findings := ValidateChapters(chapters)
	matches := findingsByTitle(findings, "Chapter 1: Missing Title")
	if len(matches) != 1 || matches[0].Type != domain.SeverityWarning {
		t.Errorf("missing title should warn, got %+v", findings)
	}
}
