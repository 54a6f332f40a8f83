package nlp

// SentimentCategory is the coarse polarity bucket of a message.
type SentimentCategory string

const (
	SentimentPositive SentimentCategory = "positive"
	SentimentNegative SentimentCategory = "negative"
	SentimentNeutral  SentimentCategory = "neutral"
)

// Polarity thresholds for mapping a continuous score to a category.
const (
	positiveThreshold = 0.1
	negativeThreshold = -0.1
)

// afinnWeights is a lexicon of sentiment-bearing words with integer valence
// in [-5, 5], in the style of the AFINN word list. Lookup happens on stems,
// so the keys are stemmed at construction time.
var afinnWeights = map[string]float64{
	"good": 3, "great": 3, "awesome": 4, "amazing": 4, "excellent": 3,
	"love": 3, "loved": 3, "like": 2, "likes": 2, "liked": 2,
	"best": 3, "better": 2, "happy": 3, "glad": 3, "wonderful": 4,
	"fantastic": 4, "perfect": 3, "nice": 3, "helpful": 2, "thanks": 2,
	"thank": 2, "appreciate": 2, "appreciated": 2, "fun": 4, "enjoy": 2,
	"enjoyed": 2, "interesting": 2, "impressive": 3, "cool": 1,
	"useful": 2, "clever": 2, "brilliant": 4, "win": 4, "wins": 4,
	"winner": 4, "improved": 2, "improvement": 2, "success": 2,
	"successful": 3, "easy": 1, "recommend": 2, "superb": 5,
	"outstanding": 5, "delighted": 3, "excited": 3, "exciting": 3,
	"beautiful": 3, "fascinating": 3, "smart": 1, "strong": 2,
	"bad": -3, "terrible": -3, "awful": -3, "horrible": -3,
	"hate": -3, "hated": -3, "hates": -3, "worst": -3, "poor": -2,
	"sad": -2, "angry": -3, "annoying": -2, "annoyed": -2,
	"fail": -2, "failed": -2, "fails": -2, "failure": -2,
	"wrong": -2, "problem": -2, "problems": -2, "difficult": -1,
	"frustrated": -2, "frustrating": -2, "confused": -2, "confusing": -2,
	"disappointed": -2, "disappointing": -2, "useless": -2, "stupid": -2,
	"broken": -1, "ugly": -3, "boring": -3, "weak": -2, "worse": -3,
	"lost": -3, "miss": -2, "pain": -2, "hard": -1, "stuck": -2,
}

// SentimentScorer maps stemmed token lists to a polarity score using a
// fixed lexicon-weighted mean. The lexicon itself is a replaceable detail;
// the thresholding contract is the stable part.
type SentimentScorer struct {
	weights map[string]float64
}

// NewSentimentScorer builds a scorer with the built-in lexicon, stemming
// the lexicon keys so lookups line up with stemmed input tokens.
func NewSentimentScorer() *SentimentScorer {
	weights := make(map[string]float64, len(afinnWeights))
	for word, w := range afinnWeights {
		weights[Stem(word)] = w
	}
	return &SentimentScorer{weights: weights}
}

// Score returns the mean lexicon valence of the given stems. An empty
// token list scores zero.
func (s *SentimentScorer) Score(stems []string) float64 {
	if len(stems) == 0 {
		return 0
	}
	var sum float64
	for _, st := range stems {
		sum += s.weights[st]
	}
	return sum / float64(len(stems))
}

// Categorize maps a continuous sentiment score to its category.
func Categorize(score float64) SentimentCategory {
	switch {
	case score > positiveThreshold:
		return SentimentPositive
	case score < negativeThreshold:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}
