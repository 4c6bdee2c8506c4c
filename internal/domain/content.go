package domain

// Kind identifies the content type of a message
type Kind string

const (
	KindText      Kind = "text"
	KindPhoto     Kind = "photo"
	KindVideo     Kind = "video"
	KindDocument  Kind = "document"
	KindVoice     Kind = "voice"
	KindAudio     Kind = "audio"
	KindVideoNote Kind = "video_note"
	KindSticker   Kind = "sticker"
	KindAnimation Kind = "animation"
	KindUnknown   Kind = "unknown"
)

// Content is the transport-independent payload of a message.
// Media kinds carry the platform file id; text lives in Text.
type Content struct {
	Kind    Kind
	Text    string
	FileID  string
	Caption string
}

// Captionable reports whether the kind carries a caption when sent
func (k Kind) Captionable() bool {
	switch k {
	case KindPhoto, KindVideo, KindDocument, KindAudio, KindAnimation:
		return true
	}
	return false
}
