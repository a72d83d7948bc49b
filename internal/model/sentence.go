// internal/model/sentence.go
package model

// GeneratedSentence は生成AIが作った穴埋め例文です。
// Amharic には空欄プレースホルダ '____' が含まれる。
type GeneratedSentence struct {
	Source  string `json:"source"`  // 出題言語での文
	Amharic string `json:"amharic"` // 空欄付きのアムハラ語文
	Blank   string `json:"blank"`   // 空欄に入るべき語（出題言語側）
}
