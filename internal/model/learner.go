// internal/model/learner.go
package model

// ContextKey はコンテキスト格納用のキー型です。
type ContextKey string

const (
	// LearnerIDKey はコンテキストに学習者IDを格納するためのキー
	LearnerIDKey ContextKey = "learnerID"
)
