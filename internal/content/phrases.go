package content

import (
	"errors"
	"strings"
	"time"

	"nihongoclass/internal/models"

	"golang.org/x/text/unicode/norm"
)

var (
	ErrUnknownSituation = errors.New("unknown situation")
	ErrUnknownPhrase    = errors.New("phrase does not belong to situation")
)

// MaxNameLength caps the optional name accepted by Combine, in runes
const MaxNameLength = 40

var DayPhrases = []models.DayPhrase{
	{Japanese: "よろしくお願いいたします", Meaning: "잘 부탁드립니다(경어)"},
	{Japanese: "お世話になっております", Meaning: "늘 신세지고 있습니다(비즈니스)"},
	{Japanese: "失礼いたします", Meaning: "실례하겠습니다(격식)"},
	{Japanese: "ありがとうございます", Meaning: "감사합니다"},
}

var PhraseGroups = []models.PhraseGroup{
	{Situation: "인사", Phrases: []string{"おはよう", "こんにちは", "こんばんは"}, Personal: true},
	{Situation: "감사", Phrases: []string{"ありがとう", "ありがとうございます"}},
	{Situation: "정중 표현", Phrases: []string{"お願いします", "すみません"}},
	{Situation: "경어", Phrases: []string{"よろしくお願いいたします", "失礼いたします", "お世話になっております"}, Personal: true},
}

// unixEpochOrdinal is the day number of 1970-01-01 counting 0001-01-01 as day 1
const unixEpochOrdinal = 719163

// dayOrdinal returns the proleptic Gregorian day number of t's calendar date.
func dayOrdinal(t time.Time) int64 {
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return midnight.Unix()/86400 + unixEpochOrdinal
}

// PhraseOfTheDay rotates through DayPhrases once per calendar day
func PhraseOfTheDay(t time.Time) models.DayPhrase {
	return DayPhrases[dayOrdinal(t)%int64(len(DayPhrases))]
}

// FindGroup returns the phrase group for situation.
func FindGroup(situation string) (models.PhraseGroup, bool) {
	for _, g := range PhraseGroups {
		if g.Situation == situation {
			return g, true
		}
	}
	return models.PhraseGroup{}, false
}

// Combine builds a sentence from a situation, one of its phrases and an
// optional name. Greetings and honorifics address the name directly.
func Combine(situation, phrase, name string) (string, error) {
	group, ok := FindGroup(situation)
	if !ok {
		return "", ErrUnknownSituation
	}

	found := false
	for _, p := range group.Phrases {
		if p == phrase {
			found = true
			break
		}
	}
	if !found {
		return "", ErrUnknownPhrase
	}

	name = norm.NFC.String(strings.TrimSpace(name))
	if runes := []rune(name); len(runes) > MaxNameLength {
		name = string(runes[:MaxNameLength])
	}

	if group.Personal && name != "" {
		return phrase + "、" + name + "さん！", nil
	}
	return phrase, nil
}
