package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chatRequest struct {
	ChatID string `json:"telegram_chat_id" validate:"omitempty,telegram_chat_id"`
}

func TestTelegramChatIDRule(t *testing.T) {
	v := NewValidator()

	testCases := []struct {
		chatID string
		valid  bool
	}{
		{"", true},
		{"123456789", true},
		{"-1001234567890", true},
		{"@finance_channel", false},
		{"12.5", false},
		{"99999999999999999999", false},
	}

	for _, tc := range testCases {
		t.Run(tc.chatID, func(t *testing.T) {
			err := v.Struct(chatRequest{ChatID: tc.chatID})
			if tc.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var validationErrs validator.ValidationErrors
			require.True(t, errors.As(err, &validationErrs))
			assert.Equal(t, "telegram_chat_id", validationErrs[0].Field())
			assert.Equal(t, "telegram_chat_id", validationErrs[0].Tag())
		})
	}
}
