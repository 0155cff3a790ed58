// Package scoring implements the net-score arithmetic for the fixed
// ten-question exam format.
package scoring

import "math"

// QuestionsPerExam is fixed by the exam format.
const QuestionsPerExam = 10

// netPenalty is the fraction of a correct answer each incorrect one cancels.
const netPenalty = 0.33

// Net returns correct − 0.33×incorrect rounded to two decimals. Bounds are
// the caller's job; the formula itself accepts any non-negative pair.
func Net(correct, incorrect int) float64 {
	return Round2(float64(correct) - netPenalty*float64(incorrect))
}

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Empty returns the unanswered-question count for an attended exam.
func Empty(correct, incorrect int) int {
	return QuestionsPerExam - correct - incorrect
}
