package entity

// Source はAIの回答の根拠となったWebページです。
type Source struct {
	URI   string
	Title string
}

// Insight は市場に関する質問への回答です。
type Insight struct {
	Query   string
	Answer  string
	Sources []Source
}
