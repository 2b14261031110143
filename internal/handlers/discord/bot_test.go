package discord

import (
	"fmt"
	"sync"
	"testing"

	"github.com/KirkDiggler/primedice/internal/logging"
	"github.com/KirkDiggler/primedice/internal/services/messaging"
	rollerMocks "github.com/KirkDiggler/primedice/internal/services/roller/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestBot(t *testing.T) *Bot {
	t.Helper()

	ctrl := gomock.NewController(t)
	messagingService, err := messaging.NewService(nil)
	require.NoError(t, err)

	bot, err := New(&Config{
		Token:            "token",
		RollerService:    rollerMocks.NewMockService(ctrl),
		MessagingService: messagingService,
		Logger:           logging.NewNop(),
	})
	require.NoError(t, err)
	return bot
}

func TestBotCommandLookup(t *testing.T) {
	bot := newTestBot(t)

	_, ok := bot.command(DiceCommandName)
	assert.False(t, ok)

	diceCmd := NewDiceCommand(bot.rollerService, bot.messagingService, logging.NewNop())
	bot.addCommand(diceCmd, "cmd-1")

	h, ok := bot.command(DiceCommandName)
	require.True(t, ok)
	assert.Same(t, diceCmd, h)
	assert.Equal(t, "cmd-1", bot.commandIDs[DiceCommandName])
}

func TestBotCommandsSafeDuringRegistration(t *testing.T) {
	bot := newTestBot(t)

	var wg sync.WaitGroup
	for n := 0; n < 20; n++ {
		wg.Add(2)

		go func(n int) {
			defer wg.Done()
			cmd := NewDiceCommand(bot.rollerService, bot.messagingService, logging.NewNop())
			cmd.Name = fmt.Sprintf("cmd-%d", n)
			bot.addCommand(cmd, fmt.Sprintf("id-%d", n))
		}(n)

		go func(n int) {
			defer wg.Done()
			bot.command(fmt.Sprintf("cmd-%d", n))
		}(n)
	}
	wg.Wait()

	for n := 0; n < 20; n++ {
		_, ok := bot.command(fmt.Sprintf("cmd-%d", n))
		assert.True(t, ok)
	}
}
