package services

import "math"

const (
	DefaultEase = 2.5
	MinEase     = 1.3
)

// ReviewResponse is the recall quality the user reports after seeing a note.
type ReviewResponse string

const (
	ResponseAgain ReviewResponse = "again"
	ResponseHard  ReviewResponse = "hard"
	ResponseGood  ReviewResponse = "good"
	ResponseEasy  ReviewResponse = "easy"
)

func IsKnownResponse(response ReviewResponse) bool {
	switch response {
	case ResponseAgain, ResponseHard, ResponseGood, ResponseEasy:
		return true
	}
	return false
}

// NextReview computes the next interval and ease after one review.
//
// The interval multiplier is looked up on the ease as it was before this
// review; the new ease is computed independently. That ordering is part of
// the contract: NextReview(4, 2.0, good) must return interval 8 and ease
// 2.0, not an interval based on the adjusted ease.
func NextReview(currentInterval int, ease float64, response ReviewResponse) (int, float64) {
	if currentInterval < 1 {
		currentInterval = 1
	}
	if ease == 0 {
		ease = DefaultEase
	}

	var multiplier float64
	var delta float64
	switch response {
	case ResponseAgain:
		multiplier = 0.5
		delta = -0.2
	case ResponseHard:
		multiplier = 1.2
		delta = -0.15
	case ResponseEasy:
		multiplier = ease * 1.3
		delta = 0.15
	default:
		multiplier = ease
	}

	newEase := math.Max(MinEase, ease+delta)
	newInterval := int(math.Round(float64(currentInterval) * multiplier))
	if newInterval < 1 {
		newInterval = 1
	}
	return newInterval, newEase
}

// IsDue compares ISO day strings directly; lexicographic order is
// chronological order and avoids timezone skew from date parsing.
func IsDue(nextReviewAt string, today string) bool {
	return nextReviewAt <= today
}
