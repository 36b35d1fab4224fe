package detector

import (
	"testing"

	"github.com/dtnitsch/vocab/models"
	"github.com/dtnitsch/vocab/pkg/analytics"
)

func vocab(text string) models.Vocabulary {
	return models.NewVocabulary((&analytics.Analytics{}).WordFrequency(text))
}

func TestLanguage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "english",
			text: "The quick brown fox jumps over the lazy dog while the children are playing in the garden and their parents watch from the house",
			want: "en",
		},
		{
			name: "german",
			text: "Der schnelle braune Fuchs springt über den faulen Hund während die Kinder im Garten spielen und die Eltern aus dem Haus zuschauen",
			want: "de",
		},
		{
			name: "french",
			text: "Le renard brun rapide saute par dessus le chien paresseux pendant que les enfants jouent dans le jardin et que leurs parents regardent depuis la maison",
			want: "fr",
		},
		{
			name: "empty",
			text: "",
			want: "",
		},
	}

	d := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Language(vocab(tt.text)); got != tt.want {
				t.Errorf("Language() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetect_Confidence(t *testing.T) {
	got := New().Detect(vocab("the house is very big and the garden is beautiful in the summer"))
	if got.Language != "en" {
		t.Fatalf("Detect().Language = %q, want en", got.Language)
	}
	if got.Confidence <= 0 || got.Confidence > 1 {
		t.Errorf("Detect().Confidence = %v, want (0, 1]", got.Confidence)
	}
}

func TestSample_Limit(t *testing.T) {
	d := &Detector{SampleSize: 2}
	v := models.NewVocabulary(map[string]int{"a": 3, "b": 2, "c": 1})
	if got := d.sample(v); got != "a b" {
		t.Errorf("sample() = %q, want %q", got, "a b")
	}
}
