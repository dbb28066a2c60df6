// Package quiz scores answered multiple-choice quizzes and keeps the log of
// recorded quiz results used by the study stats.
package quiz
