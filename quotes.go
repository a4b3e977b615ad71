package qapdf

import (
	"fmt"
	"math/rand/v2"
)

// Quote is a motivational quote shown after the cover.
type Quote struct {
	Text   string `json:"text" yaml:"text"`
	Author string `json:"author" yaml:"author"`
}

// DefaultQuotes is the built-in quote list.
var DefaultQuotes = []Quote{
	{"The only way to do great work is to love what you do.", "Steve Jobs"},
	{"Success is not final, failure is not fatal: It is the courage to continue that counts.", "Winston Churchill"},
	{"Believe you can and you're halfway there.", "Theodore Roosevelt"},
	{"Opportunities don't happen. You create them.", "Chris Grosser"},
	{"Don't watch the clock; do what it does. Keep going.", "Sam Levenson"},
	{"The future belongs to those who believe in the beauty of their dreams.", "Eleanor Roosevelt"},
	{"Your talent determines what you can do. Your motivation determines how much you're willing to do. Your attitude determines how well you do it.", "Lou Holtz"},
	{"The only limit to our realization of tomorrow is our doubts of today.", "Franklin D. Roosevelt"},
	{"Act as if what you do makes a difference. It does.", "William James"},
	{"Quality is not an act, it is a habit.", "Aristotle"},
	{"The best way to predict the future is to create it.", "Peter Drucker"},
	{"What you get by achieving your goals is not as important as what you become by achieving your goals.", "Zig Ziglar"},
	{"The harder you work for something, the greater you'll feel when you achieve it.", "Anonymous"},
	{"Dream big and dare to fail.", "Norman Vaughan"},
	{"It's not whether you get knocked down, it's whether you get up.", "Vince Lombardi"},
	{"The question isn't who is going to let me; it's who is going to stop me.", "Ayn Rand"},
	{"Strive not to be a success, but rather to be of value.", "Albert Einstein"},
	{"If you can dream it, you can do it.", "Walt Disney"},
	{"The secret to getting ahead is getting started.", "Mark Twain"},
	{"You don't have to be great to start, but you have to start to be great.", "Zig Ziglar"},
	{"The only person you are destined to become is the person you decide to be.", "Ralph Waldo Emerson"},
	{"The expert in anything was once a beginner.", "Helen Hayes"},
	{"Your time is limited, don't waste it living someone else's life.", "Steve Jobs"},
	{"The journey of a thousand miles begins with one step.", "Lao Tzu"},
	{"Whether you think you can or you think you can't, you're right.", "Henry Ford"},
	{"Preparation is the key to success.", "Alexander Graham Bell"},
	{"The best preparation for tomorrow is doing your best today.", "H. Jackson Brown, Jr."},
	{"Before anything else, preparation is the key to success.", "Alexander Graham Bell"},
	{"By failing to prepare, you are preparing to fail.", "Benjamin Franklin"},
	{"Success is where preparation and opportunity meet.", "Bobby Unser"},
}

// ProgressMessages holds the milestone captions keyed by percentage.
var ProgressMessages = map[int][]string{
	25: {
		"You're off to a great start!",
		"Keep up the good work!",
		"You're making excellent progress!",
		"25% complete - you're on your way!",
		"One quarter done - looking good!",
	},
	50: {
		"Halfway there!",
		"You're doing great!",
		"50% complete - keep going!",
		"The halfway point - you've got this!",
		"Half the questions mastered!",
	},
	75: {
		"Almost there!",
		"The finish line is in sight!",
		"75% complete - you're almost done!",
		"Just a few more questions to go!",
		"You're in the final stretch!",
	},
}

// picker chooses quotes and captions. A fixed seed gives repeatable output.
type picker struct {
	rng    *rand.Rand
	quotes []Quote
}

func newPicker(seed uint64, quotes []Quote) *picker {
	if len(quotes) == 0 {
		quotes = DefaultQuotes
	}
	return &picker{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), quotes: quotes}
}

func (p *picker) quote() Quote {
	return p.quotes[p.rng.IntN(len(p.quotes))]
}

func (p *picker) progress(percent int) string {
	msgs := ProgressMessages[percent]
	if len(msgs) == 0 {
		return fmt.Sprintf("%d%% Complete", percent)
	}
	return msgs[p.rng.IntN(len(msgs))]
}
