package services

// ChannelResult is the per-recipient verdict a notification channel reports.
// Channels never retry; a failure here is terminal for the attempt.
type ChannelResult struct {
	Name    string
	Phone   string
	Success bool
	Error   string
}

// VoiceAttachment carries an audio blob into an email channel dispatch.
type VoiceAttachment struct {
	Filename string
	Content  []byte
}
