package i18n

import (
	"reflect"
	"testing"

	"github.com/go-errors/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestLog() *logrus.Entry {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return logrus.NewEntry(log)
}

// TestDetectLanguage is a function.
func TestDetectLanguage(t *testing.T) {
	type scenario struct {
		langDetector func() (string, error)
		expected     string
	}

	scenarios := []scenario{
		{
			func() (string, error) {
				return "", errors.New("an error")
			},
			"C",
		},
		{
			func() (string, error) {
				return "de", nil
			},
			"de",
		},
	}

	for _, s := range scenarios {
		assert.EqualValues(t, s.expected, detectLanguage(s.langDetector))
	}
}

func TestNewTranslationSetFromConfig(t *testing.T) {
	type scenario struct {
		name     string
		language string
		test     func(*TranslationSet, error)
	}

	scenarios := []scenario{
		{
			"english",
			"en",
			func(tr *TranslationSet, err error) {
				assert.NoError(t, err)
				assert.EqualValues(t, "No entry for the given server found.", tr.CredentialsNotFound)
			},
		},
		{
			"german",
			"de",
			func(tr *TranslationSet, err error) {
				assert.NoError(t, err)
				assert.EqualValues(t, "Für diesen Server wurde kein Eintrag gefunden.", tr.CredentialsNotFound)
			},
		},
		{
			"unsupported language falls back to english",
			"xx",
			func(tr *TranslationSet, err error) {
				assert.EqualError(t, err, "Language not found: xx")
				assert.EqualValues(t, "No entry for the given server found.", tr.CredentialsNotFound)
			},
		},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			s.test(NewTranslationSetFromConfig(newTestLog(), s.language))
		})
	}
}

func TestGermanFallsBackToEnglishForMissingStrings(t *testing.T) {
	tr := NewTranslationSet(newTestLog(), DE)

	// not translated, so the english text is used
	assert.EqualValues(t, englishSet().AfterHelp, tr.AfterHelp)
}

func TestEnglishSetIsComplete(t *testing.T) {
	value := reflect.ValueOf(englishSet())
	for i := 0; i < value.NumField(); i++ {
		assert.NotEmpty(t, value.Field(i).String(), value.Type().Field(i).Name)
	}
}
