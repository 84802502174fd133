package chatbot

import (
	"context"
	"fmt"

	"github.com/solutionam/partstore/internal/core/domain"
	"github.com/solutionam/partstore/internal/core/port"
)

var _ port.ChatResponder = (*RemoteResponder)(nil)

type ChatCaller interface {
	Chat(ctx context.Context, message string) (string, error)
}

// businessContext is sent with every message. Each call is stateless:
// nothing from the visible transcript goes back to the model.
const businessContext = `You are a friendly and helpful assistant for Solution.am, a leading reseller and importer of high-quality automobile parts in Armenia. Your goal is to answer user questions based on the information provided below. Keep your answers concise and directly related to the user's question.

About Solution.am:
- Established in 2015.
- Leading reseller and importer of high-quality automobile parts in Armenia.
- Slogan: "Creative Solutions for Modern Problems".
- Contact: info@solution.am, +37491989595, Hakob Hakobyan St., 3 Building, Yerevan, Armenia.
- Products: We sell a wide variety of car parts, including lamps (halogen, LED, xenon), filters, brake parts, and engine components. We carry brands like NAITE, Bosch, Hella, and Nissens.
- Services: We help customers find the right parts, offer a loyalty program, and have a network of dealers.
- How to become a dealer: Interested parties can fill out the form on our '/dealer' page.
- How to give feedback: Customers can use the form on the '/feedback' page.
- Shop: Our online shop is available at '/shop'.

Rules:
- If the question is not about Solution.am, its products, or services, politely state that you can only answer questions about the company.
- Do not invent information. If you don't know the answer, say "I'm sorry, I don't have that information, but you can contact us at info@solution.am for more details."
- Be friendly and professional.

User Question: %s
Your Answer:
`

// RemoteResponder forwards each message to the model gateway with the
// fixed business context prepended.
type RemoteResponder struct {
	caller ChatCaller
}

func NewRemoteResponder(caller ChatCaller) RemoteResponder {
	return RemoteResponder{caller}
}

func (r RemoteResponder) Respond(
	ctx context.Context, message string,
) (string, error) {
	const op = "RemoteResponder.Respond"

	answer, err := r.caller.Chat(ctx, fmt.Sprintf(businessContext, message))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return answer, nil
}

// Topics exposes the same topic listing as the static variant so the
// UI shortcuts keep working whichever backing is wired.
func (RemoteResponder) Topics() []domain.ChatTopicCategory {
	return topicCategories
}
