// Package detector guesses the natural language of a vocabulary.
package detector

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"

	"github.com/dtnitsch/vocab/models"
	"github.com/dtnitsch/vocab/pkg/mapreduce"
)

// DefaultSampleSize is how many of the most frequent words are shown to the detector.
const DefaultSampleSize = 200

// Languages the detector chooses between. A small set keeps model loading fast.
var Languages = []lingua.Language{
	lingua.English,
	lingua.French,
	lingua.German,
	lingua.Spanish,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
	lingua.Latin,
}

// Detection is the outcome of a language guess.
type Detection struct {
	Language   string  `json:"language" yaml:"language"`     // ISO 639-1 code, empty if unknown
	Confidence float64 `json:"confidence" yaml:"confidence"` // 0-1
}

// Detector wraps a lingua detector, built on first use.
// It is safe for concurrent use.
type Detector struct {
	SampleSize int

	once     sync.Once
	detector lingua.LanguageDetector
}

// New returns a Detector sampling the DefaultSampleSize most frequent words.
func New() *Detector {
	return &Detector{SampleSize: DefaultSampleSize}
}

func (d *Detector) build() {
	d.once.Do(func() {
		d.detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(Languages...).
			Build()
	})
}

// Language returns the ISO 639-1 code of the most likely language, or "" when the
// vocabulary is empty or no language is reliable.
func (d *Detector) Language(v models.Vocabulary) string {
	return d.Detect(v).Language
}

// Detect guesses the language from the most frequent words of v.
func (d *Detector) Detect(v models.Vocabulary) Detection {
	sample := d.sample(v)
	if sample == "" {
		return Detection{}
	}

	d.build()
	lang, ok := d.detector.DetectLanguageOf(sample)
	if !ok {
		return Detection{}
	}

	return Detection{
		Language:   strings.ToLower(lang.IsoCode639_1().String()),
		Confidence: d.detector.ComputeLanguageConfidence(sample, lang),
	}
}

// sample joins the top words, most frequent first.
func (d *Detector) sample(v models.Vocabulary) string {
	n := d.SampleSize
	if n <= 0 {
		n = DefaultSampleSize
	}
	items := mapreduce.TopItems(v, n)
	words := make([]string, len(items))
	for i, item := range items {
		words[i] = item.Word
	}
	return strings.Join(words, " ")
}
