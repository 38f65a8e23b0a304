package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/brianvoe/gofakeit/v7"

	"bookshelf/backend/internal/model"
)

// DefaultRegion is used for empty or unknown region codes.
const DefaultRegion = "en"

// Locale produces region-flavoured field values. Every generator draws only
// from the faker it is handed.
type Locale struct {
	Code string
	Name string

	title      func(f *gofakeit.Faker) string
	person     func(f *gofakeit.Faker) string
	company    func(f *gofakeit.Faker) string
	reviewText func(f *gofakeit.Faker) string
}

var locales = map[string]Locale{
	"en": {
		Code:       "en",
		Name:       "English (US)",
		title:      func(f *gofakeit.Faker) string { return f.BookTitle() },
		person:     func(f *gofakeit.Faker) string { return f.Name() },
		company:    func(f *gofakeit.Faker) string { return f.Company() },
		reviewText: func(f *gofakeit.Faker) string { return paragraph(f, enSentence, " ") },
	},
	"de": pooledLocale("de", "Deutsch (Deutschland)", deData),
	"fr": pooledLocale("fr", "Français (France)", frData),
	"ja": {
		Code: "ja",
		Name: "日本語 (日本)",
		title: func(f *gofakeit.Faker) string {
			return f.RandomString(jaData.titleNouns) + "の" + f.RandomString(jaData.titleNouns)
		},
		person: func(f *gofakeit.Faker) string {
			return f.RandomString(jaData.lastNames) + " " + f.RandomString(jaData.firstNames)
		},
		company: func(f *gofakeit.Faker) string {
			return fmt.Sprintf(f.RandomString(jaData.publisherForms), f.RandomString(jaData.publisherWords))
		},
		reviewText: func(f *gofakeit.Faker) string {
			return paragraph(f, func(f *gofakeit.Faker) string { return f.RandomString(jaData.reviews) }, "")
		},
	},
}

// LookupLocale returns the locale for region, falling back to DefaultRegion.
func LookupLocale(region string) Locale {
	if l, ok := locales[strings.ToLower(strings.TrimSpace(region))]; ok {
		return l
	}
	return locales[DefaultRegion]
}

// Regions lists the supported regions ordered by code.
func Regions() []model.Region {
	out := make([]model.Region, 0, len(locales))
	for _, l := range locales {
		out = append(out, model.Region{Code: l.Code, Name: l.Name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// localeData holds the word pools of a locale without faker coverage.
type localeData struct {
	firstNames     []string
	lastNames      []string
	titleStarts    []string
	titleNouns     []string
	publisherForms []string
	publisherWords []string
	reviews        []string
}

func pooledLocale(code, name string, d localeData) Locale {
	return Locale{
		Code: code,
		Name: name,
		title: func(f *gofakeit.Faker) string {
			return f.RandomString(d.titleStarts) + " " + f.RandomString(d.titleNouns)
		},
		person: func(f *gofakeit.Faker) string {
			return f.RandomString(d.firstNames) + " " + f.RandomString(d.lastNames)
		},
		company: func(f *gofakeit.Faker) string {
			return fmt.Sprintf(f.RandomString(d.publisherForms), f.RandomString(d.lastNames))
		},
		reviewText: func(f *gofakeit.Faker) string {
			return paragraph(f, func(f *gofakeit.Faker) string { return f.RandomString(d.reviews) }, " ")
		},
	}
}

// paragraph joins two to four sentences.
func paragraph(f *gofakeit.Faker, sentence func(*gofakeit.Faker) string, sep string) string {
	n := f.IntRange(2, 4)
	parts := make([]string, n)
	for i := range parts {
		parts[i] = sentence(f)
	}
	return strings.Join(parts, sep)
}

type reviewTemplate struct {
	format string
	words  []func(*gofakeit.Faker) string
}

var (
	adjective = func(f *gofakeit.Faker) string { return f.Adjective() }
	noun      = func(f *gofakeit.Faker) string { return f.Noun() }
)

var enReviewTemplates = []reviewTemplate{
	{"An absolutely %s read about a %s.", []func(*gofakeit.Faker) string{adjective, noun}},
	{"The %s ending caught me off guard.", []func(*gofakeit.Faker) string{adjective}},
	{"I found the prose %s, though the %s felt underused.", []func(*gofakeit.Faker) string{adjective, noun}},
	{"Not what I expected from a book about a %s, but %s all the same.", []func(*gofakeit.Faker) string{noun, adjective}},
	{"A %s story with one truly memorable %s.", []func(*gofakeit.Faker) string{adjective, noun}},
	{"The middle drags, yet the final chapter is %s.", []func(*gofakeit.Faker) string{adjective}},
}

func enSentence(f *gofakeit.Faker) string {
	tmpl := enReviewTemplates[f.IntRange(0, len(enReviewTemplates)-1)]
	args := make([]any, len(tmpl.words))
	for i, word := range tmpl.words {
		args[i] = word(f)
	}
	return fmt.Sprintf(tmpl.format, args...)
}
