package models

type NoticeLevel string

const (
	NoticeError   NoticeLevel = "error"
	NoticeWarning NoticeLevel = "warning"
	NoticeSuccess NoticeLevel = "success"
	NoticeInfo    NoticeLevel = "info"
)

// Notice is feedback shown to the user next to the rendered section.
type Notice struct {
	Level NoticeLevel `json:"level"`
	Text  string      `json:"text"`
}
