package usecase

import "errors"

var (
	// ErrInvalidInput は質問が空、または長すぎる場合に返されます。
	ErrInvalidInput = errors.New("invalid input")
	// ErrInsightsDisabled はAPIキー未設定などでAIが利用できない場合に返されます。
	ErrInsightsDisabled = errors.New("market insights are disabled")
	// ErrUpstream はAIサービスの呼び出しに失敗した場合に返されます。
	ErrUpstream = errors.New("insight service failed")
)
