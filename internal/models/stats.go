package models

import "math"

// GenderStats counts ratings per rater gender.
type GenderStats struct {
	Male   int `json:"male"`
	Female int `json:"female"`
	Other  int `json:"other"`
}

// AgeStats counts ratings per rater age bucket.
type AgeStats struct {
	Age18To25 int `json:"18-25"`
	Age26To35 int `json:"26-35"`
	Age36To50 int `json:"36-50"`
	Age50Plus int `json:"50+"`
}

// PhotoStats is the derived per-photo rating summary.
type PhotoStats struct {
	TotalRatings int         `json:"totalRatings"`
	AverageScore float64     `json:"averageScore"`
	GenderStats  GenderStats `json:"genderStats"`
	AgeStats     AgeStats    `json:"ageStats"`
}

// ComputeStats derives the rating summary for a photo. It is a pure function
// of the ratings list and is recomputed on every read; zero ratings yields an
// average of 0, not an error.
func ComputeStats(ratings []Rating) PhotoStats {
	stats := PhotoStats{TotalRatings: len(ratings)}
	if len(ratings) == 0 {
		return stats
	}

	sum := 0
	for _, r := range ratings {
		sum += r.Score

		switch r.Gender {
		case GenderMale:
			stats.GenderStats.Male++
		case GenderFemale:
			stats.GenderStats.Female++
		case GenderOther:
			stats.GenderStats.Other++
		}

		switch r.Age {
		case AgeBucket18To25:
			stats.AgeStats.Age18To25++
		case AgeBucket26To35:
			stats.AgeStats.Age26To35++
		case AgeBucket36To50:
			stats.AgeStats.Age36To50++
		case AgeBucket50Plus:
			stats.AgeStats.Age50Plus++
		}
	}

	mean := float64(sum) / float64(len(ratings))
	stats.AverageScore = math.Round(mean*100) / 100
	return stats
}
