package reportbot

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestClassifyDeliveryErrorClosedDMs(t *testing.T) {
	err := &discordgo.RESTError{
		Message: &discordgo.APIErrorMessage{
			Code:    discordgo.ErrCodeCannotSendMessagesToThisUser,
			Message: "Cannot send messages to this user",
		},
	}

	result := classifyDeliveryError(err)
	assert.Equal(t, RecipientUnreachable, result.Outcome)
	assert.Equal(t, err, result.Err)
}

func TestClassifyDeliveryErrorOtherRESTError(t *testing.T) {
	err := &discordgo.RESTError{
		Message: &discordgo.APIErrorMessage{
			Code:    discordgo.ErrCodeMissingAccess,
			Message: "Missing Access",
		},
	}

	result := classifyDeliveryError(err)
	assert.Equal(t, DeliveryFailed, result.Outcome)
}

func TestClassifyDeliveryErrorTransportError(t *testing.T) {
	err := errors.New("connection reset by peer")

	result := classifyDeliveryError(err)
	assert.Equal(t, DeliveryFailed, result.Outcome)
	assert.Equal(t, err, result.Err)
}

func TestClassifyDeliveryErrorBareRESTError(t *testing.T) {
	result := classifyDeliveryError(&discordgo.RESTError{})
	assert.Equal(t, DeliveryFailed, result.Outcome)
}
