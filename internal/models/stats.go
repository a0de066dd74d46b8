package models

// Rating is a resolved skill rating or the unavailable marker.
type Rating struct {
	Value     int
	Available bool
}

func Unavailable() Rating {
	return Rating{}
}

func Available(v int) Rating {
	return Rating{Value: v, Available: true}
}

type ClubSeasonStats struct {
	ClubID       string
	Wins         int
	Ties         int
	Losses       int
	GamesPlayed  int
	Goals        int
	GoalsAgainst int
	SkillRating  Rating
}

// RatingContext maps opponent club ids to their rating for a single request.
type RatingContext map[string]Rating

func (rc RatingContext) Lookup(clubID string) (int, bool) {
	r, ok := rc[clubID]
	if !ok || !r.Available {
		return 0, false
	}
	return r.Value, true
}
