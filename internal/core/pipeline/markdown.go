package pipeline

import (
	"regexp"
	"strings"
)

// 去除行內 markdown 強調符號。雙符號 pattern 必須先於單符號
// 處理，否則會留下落單的星號或底線。
var (
	boldStarPattern   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicStarPattern = regexp.MustCompile(`\*(.*?)\*`)
	boldUnderPattern  = regexp.MustCompile(`__(.*?)__`)
	italicUnderPatten = regexp.MustCompile(`_(.*?)_`)
)

// StripMarkdown 去除文字中的粗體與斜體標記，重複呼叫結果不變
func StripMarkdown(text string) string {
	if text == "" {
		return ""
	}
	text = boldStarPattern.ReplaceAllString(text, "$1")
	text = italicStarPattern.ReplaceAllString(text, "$1")
	text = boldUnderPattern.ReplaceAllString(text, "$1")
	text = italicUnderPatten.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
