package learn

// Question is a single multiple-choice question. Answer is the index of the
// correct option.
type Question struct {
	Text    string
	Options []string
	Answer  int
}

// Quiz is a scored set of questions tied to the tutorial track.
type Quiz struct {
	ID        string
	Title     string
	Questions []Question
}

// Quizzes lists the available quizzes.
var Quizzes = []Quiz{
	{
		ID:    "basics-1",
		Title: "Market Basics",
		Questions: []Question{
			{
				Text:    "What does owning a share of a company give you?",
				Options: []string{"A loan to the company", "Part ownership of the company", "A guaranteed dividend", "A seat on the board"},
				Answer:  1,
			},
			{
				Text:    "Where do investors buy shares from other investors?",
				Options: []string{"The primary market", "The company directly", "The secondary market", "The central bank"},
				Answer:  2,
			},
			{
				Text:    "What does LTP stand for?",
				Options: []string{"Long Term Position", "Last Traded Price", "Listed Trading Platform", "Low Target Price"},
				Answer:  1,
			},
			{
				Text:    "In a market-depth view, what is a bid?",
				Options: []string{"The price a seller asks for", "The exchange's fee", "The price a buyer offers", "Yesterday's closing price"},
				Answer:  2,
			},
			{
				Text:    "A stock's day high can be lower than its current price.",
				Options: []string{"True", "False", "Only on holidays", "Only for new listings"},
				Answer:  1,
			},
		},
	},
	{
		ID:    "trading-1",
		Title: "Trading and Cost Basis",
		Questions: []Question{
			{
				Text:    "You buy 10 shares at 100 and 10 more at 200. What is your average cost?",
				Options: []string{"100", "200", "150", "300"},
				Answer:  2,
			},
			{
				Text:    "When is a position removed from your holdings?",
				Options: []string{"When its price falls", "When its quantity reaches zero", "At the end of the day", "Never"},
				Answer:  1,
			},
			{
				Text:    "Selling shares you hold increases which balance?",
				Options: []string{"Cash", "Quantity held", "Average cost", "Volume"},
				Answer:  0,
			},
			{
				Text:    "Why diversify across sectors?",
				Options: []string{"To pay less brokerage", "To reduce exposure to any single company", "To trade faster", "To guarantee profits"},
				Answer:  1,
			},
		},
	},
}

// GetQuiz returns the quiz with this id.
func GetQuiz(id string) (Quiz, bool) {
	for _, q := range Quizzes {
		if q.ID == id {
			return q, true
		}
	}
	return Quiz{}, false
}
