package chatbot_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/solutionam/partstore/internal/adapter/chatbot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockChatCaller struct {
	mock.Mock
}

func (m *MockChatCaller) Chat(
	ctx context.Context, message string,
) (string, error) {
	args := m.Called(ctx, message)
	return args.String(0), args.Error(1)
}

func TestStaticResponder(t *testing.T) {
	r := chatbot.NewStaticResponder()

	t.Run("KnownTopicKey", func(t *testing.T) {
		answer, err := r.Respond(t.Context(), "location")
		require.NoError(t, err)
		assert.Contains(t, answer, "Yerevan")
	})

	t.Run("UnknownTopicKeyGetsFallback", func(t *testing.T) {
		answer, err := r.Respond(t.Context(), "meaning-of-life")
		require.NoError(t, err)
		assert.Equal(t,
			"I'm sorry, I don't have an answer for that.", answer)
	})

	t.Run("TopicsListEveryAnswerKey", func(t *testing.T) {
		categories := r.Topics()
		require.Len(t, categories, 4)
		for _, cat := range categories {
			for _, topic := range cat.Topics {
				answer, err := r.Respond(t.Context(), topic.Key)
				require.NoError(t, err)
				assert.NotEqual(t,
					"I'm sorry, I don't have an answer for that.", answer,
					"topic %q has no answer", topic.Key)
			}
		}
	})
}

func TestRemoteResponder(t *testing.T) {

	t.Run("WrapsMessageWithBusinessContext", func(t *testing.T) {
		caller := new(MockChatCaller)
		caller.On("Chat", t.Context(),
			mock.MatchedBy(func(msg string) bool {
				return strings.Contains(msg, "Solution.am") &&
					strings.Contains(msg, "do you ship to Gyumri?")
			})).Return("Yes, we do.", nil)

		r := chatbot.NewRemoteResponder(caller)
		answer, err := r.Respond(t.Context(), "do you ship to Gyumri?")
		require.NoError(t, err)
		assert.Equal(t, "Yes, we do.", answer)
	})

	t.Run("CallerFailurePropagates", func(t *testing.T) {
		caller := new(MockChatCaller)
		caller.On("Chat", mock.Anything, mock.Anything).
			Return("", errors.New("boom"))

		r := chatbot.NewRemoteResponder(caller)
		_, err := r.Respond(t.Context(), "hello")
		require.Error(t, err)
	})
}
