// Package chatbot provides the two support-assistant backings: a
// deterministic topic table and a remote model call. Both satisfy
// port.ChatResponder, so the wiring decides which one runs.
package chatbot

import (
	"context"

	"github.com/solutionam/partstore/internal/core/domain"
	"github.com/solutionam/partstore/internal/core/port"
)

var _ port.ChatResponder = (*StaticResponder)(nil)

const fallbackAnswer = "I'm sorry, I don't have an answer for that."

var topicCategories = []domain.ChatTopicCategory{
	{
		Category: "General",
		Topics: []domain.ChatTopic{
			{Key: "what-is", Question: "What is Solution.am?"},
			{Key: "location", Question: "Where are you located?"},
		},
	},
	{
		Category: "Products",
		Topics: []domain.ChatTopic{
			{Key: "products", Question: "What kind of products do you sell?"},
			{Key: "led-lamps", Question: "Do you sell LED lamps?"},
			{Key: "brands", Question: "What brands do you carry?"},
		},
	},
	{
		Category: "Partnership",
		Topics: []domain.ChatTopic{
			{Key: "become-dealer", Question: "How to become a dealer?"},
			{Key: "dealer-benefits", Question: "What are the benefits of being a dealer?"},
		},
	},
	{
		Category: "Customer Service",
		Topics: []domain.ChatTopic{
			{Key: "feedback", Question: "How can I give feedback?"},
			{Key: "contact", Question: "What is your contact information?"},
		},
	},
}

var answers = map[string]string{
	"what-is":         `Solution.am, established in 2015, is a leading reseller and importer of high-quality automobile parts in Armenia. Our slogan is "Creative Solutions for Modern Problems".`,
	"location":        "We are located at Hakob Hakobyan St., 3 Building, Yerevan, Armenia. You can find a map on our '/contacts' page.",
	"products":        "We sell a wide variety of car parts, including lamps (halogen, LED, xenon), filters, brake parts, and engine components. You can see our full catalog on the '/shop' page.",
	"led-lamps":       "Yes, we sell a wide variety of lamps, including LED, xenon, and halogen types. You can find them in our '/shop' section.",
	"brands":          "We carry many top brands, including NAITE, Bosch, Hella, and Nissens. You can see a full list of our partner brands on our home page.",
	"become-dealer":   "To become a dealer, interested parties can fill out the application form on our '/dealer' page on the website. As a dealer, you get access to our extensive catalog of high-quality parts at competitive prices, a dedicated support team, and inclusion in our network, which can help grow your business. We'd love to hear from you!",
	"dealer-benefits": "As a dealer, you get access to our extensive catalog of high-quality parts at competitive prices, a dedicated support team, and inclusion in our network, which can help grow your business.",
	"feedback":        "We value your opinion! Customers can use the form on the '/feedback' page to share their thoughts and help us improve.",
	"contact":         "You can reach us at info@solution.am or call us at +37491989595. Our office is at Hakob Hakobyan St., 3 Building, Yerevan, Armenia.",
}

// StaticResponder answers from the fixed topic table, no network calls.
// The message is expected to be a topic key; anything else gets the
// fixed fallback answer.
type StaticResponder struct{}

func NewStaticResponder() StaticResponder {
	return StaticResponder{}
}

func (StaticResponder) Respond(
	_ context.Context, message string,
) (string, error) {
	if answer, ok := answers[message]; ok {
		return answer, nil
	}
	return fallbackAnswer, nil
}

func (StaticResponder) Topics() []domain.ChatTopicCategory {
	return topicCategories
}
