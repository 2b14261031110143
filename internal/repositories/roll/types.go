package roll

import "github.com/KirkDiggler/primedice/internal/models"

type SaveRollInput struct {
	Roll *models.Roll
}

type GetRollInput struct {
	RollID string
}

type ListRollsInput struct {
	ChannelID string
	Limit     int
}

type ListRollsOutput struct {
	Rolls []*models.Roll
}

type GetStatsInput struct {
	ChannelID string
}

type ClearChannelInput struct {
	ChannelID string
}
