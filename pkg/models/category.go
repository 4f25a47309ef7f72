package models

type Category string

const (
	CategoryCode      Category = "code"
	CategoryLink      Category = "link"
	CategoryTodo      Category = "todo"
	CategoryIdea      Category = "idea"
	CategoryReference Category = "reference"
	CategoryOther     Category = "other"
)

// CategoryAll is not a stored category; it selects every note in list
// queries and count aggregates.
const CategoryAll Category = "all"

type CategoryMeta struct {
	Label  string
	Symbol string
}

var categories = []Category{
	CategoryCode,
	CategoryLink,
	CategoryTodo,
	CategoryIdea,
	CategoryReference,
	CategoryOther,
}

var categoryMeta = map[Category]CategoryMeta{
	CategoryCode:      {Label: "코드", Symbol: "💻"},
	CategoryLink:      {Label: "링크", Symbol: "🔗"},
	CategoryTodo:      {Label: "할 일", Symbol: "✅"},
	CategoryIdea:      {Label: "아이디어", Symbol: "💡"},
	CategoryReference: {Label: "참고자료", Symbol: "📄"},
	CategoryOther:     {Label: "기타", Symbol: "🎯"},
}

// categoryLabels maps the natural-language labels the classifier responds
// with onto the fixed taxonomy, including the common variants it uses.
var categoryLabels = map[string]Category{
	"코드":   CategoryCode,
	"링크":   CategoryLink,
	"URL":  CategoryLink,
	"할일":   CategoryTodo,
	"할 일":  CategoryTodo,
	"작업":   CategoryTodo,
	"아이디어": CategoryIdea,
	"참고자료": CategoryReference,
	"참고":   CategoryReference,
	"문서":   CategoryReference,
	"기타":   CategoryOther,
}

func Categories() []Category {
	return categories
}

func (c Category) Valid() bool {
	_, ok := categoryMeta[c]
	return ok
}

func (c Category) Meta() CategoryMeta {
	if m, ok := categoryMeta[c]; ok {
		return m
	}
	return categoryMeta[CategoryOther]
}

// ParseCategory maps a stored category value onto the taxonomy. Anything
// unrecognized falls back to CategoryOther.
func ParseCategory(s string) Category {
	c := Category(s)
	if c.Valid() {
		return c
	}
	return CategoryOther
}

// CategoryFromLabel maps a classifier label onto the taxonomy. Anything
// unrecognized falls back to CategoryOther.
func CategoryFromLabel(label string) Category {
	if c, ok := categoryLabels[label]; ok {
		return c
	}
	return CategoryOther
}
