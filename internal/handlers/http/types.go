package http

import "time"

type pageData struct {
	Name    string
	Title   string
	Value   int
	Outcome string
	Comment string
	Error   string
}

type rollResponse struct {
	ID       string `json:"id"`
	Value    int    `json:"value"`
	IsPrime  bool   `json:"is_prime"`
	Title    string `json:"title"`
	Outcome  string `json:"outcome"`
	Comment  string `json:"comment"`
	Recorded bool   `json:"recorded"`
}

type primeResponse struct {
	N       int64  `json:"n"`
	IsPrime bool   `json:"is_prime"`
	Message string `json:"message"`
}

type historyEntry struct {
	ID         string    `json:"id"`
	Value      int       `json:"value"`
	IsPrime    bool      `json:"is_prime"`
	PlayerName string    `json:"player_name"`
	Timestamp  time.Time `json:"timestamp"`
}

type historyResponse struct {
	Rolls []historyEntry `json:"rolls"`
}

type statsResponse struct {
	ChannelID string           `json:"channel_id"`
	Total     int64            `json:"total"`
	Primes    int64            `json:"primes"`
	Faces     map[string]int64 `json:"faces"`
	Summary   string           `json:"summary"`
}

type errorResponse struct {
	Error string `json:"error"`
}
