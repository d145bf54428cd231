package reportbot

import (
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/fanjindong/go-cache"
)

var dmChannels = cache.NewMemCache()

// userChannel resolves the direct-message channel for a user, caching the
// result so repeated notifications skip the extra round trip.
func userChannel(s *discordgo.Session, userID string) (*discordgo.Channel, error) {
	if value, ok := dmChannels.Get(userID); ok {
		return value.(*discordgo.Channel), nil
	}

	channel, err := s.UserChannelCreate(userID)
	if err != nil {
		return nil, err
	}

	dmChannels.Set(userID, channel, cache.WithEx(12*time.Hour))
	return channel, nil
}
