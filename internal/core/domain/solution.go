package domain

// Solution is one generated answer paired with its one-sentence summary.
type Solution struct {
	Original string
	Summary  string
}

type ChatTopic struct {
	Key      string
	Question string
}

type ChatTopicCategory struct {
	Category string
	Topics   []ChatTopic
}

type Language struct {
	Code string
	Name string
	Flag string
}
