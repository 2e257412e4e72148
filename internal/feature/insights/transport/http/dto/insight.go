package dto

import "skillroots/internal/feature/insights/domain/entity"

// AskReq はPOST /insightsのリクエストです。
type AskReq struct {
	Query string `json:"query" binding:"required"`
}

// SourceRes は回答の根拠となったWebページです。
type SourceRes struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// InsightRes はPOST /insightsのレスポンスです。
type InsightRes struct {
	Query   string      `json:"query"`
	Answer  string      `json:"answer"`
	Sources []SourceRes `json:"sources"`
}

func NewInsightRes(in entity.Insight) InsightRes {
	sources := make([]SourceRes, 0, len(in.Sources))
	for _, s := range in.Sources {
		sources = append(sources, SourceRes(s))
	}
	return InsightRes{Query: in.Query, Answer: in.Answer, Sources: sources}
}
