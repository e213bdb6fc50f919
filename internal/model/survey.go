package model

// QuestionType enumerates the supported survey question kinds
type QuestionType string

const (
	QuestionSingleSelect QuestionType = "single-select"
	QuestionMultiSelect  QuestionType = "multi-select"
	QuestionScale        QuestionType = "scale"
	QuestionText         QuestionType = "text"
)

// Option is one selectable answer for a select question
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Question is one questionnaire item. Field names the response attribute
// the answer is stored under.
type Question struct {
	ID       int          `json:"id"`
	Section  string       `json:"section"`
	Prompt   string       `json:"question"`
	Type     QuestionType `json:"type"`
	Field    string       `json:"field"`
	Required bool         `json:"required"`
	Options  []Option     `json:"options,omitempty"`
	ScaleMin int          `json:"scaleMin,omitempty"`
	ScaleMax int          `json:"scaleMax,omitempty"`
}

// Section groups questionnaire items by theme
type Section struct {
	Number    int        `json:"number"`
	Title     string     `json:"title"`
	Purpose   string     `json:"purpose"`
	Questions []Question `json:"questions"`
}
