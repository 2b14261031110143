package models

// Stats summarises the rolls made in a channel
type Stats struct {
	// ChannelID is the channel the stats belong to
	ChannelID string

	// Total is the number of rolls recorded
	Total int64

	// Faces maps each face to the number of times it came up
	Faces map[int]int64

	// Primes is the number of rolls that came up prime
	Primes int64
}

// Frequency returns the share of rolls that landed on face, or 0 with no rolls
func (s *Stats) Frequency(face int) float64 {
	if s == nil || s.Total == 0 {
		return 0
	}
	return float64(s.Faces[face]) / float64(s.Total)
}
