package interact

// CopyStatus is the outcome of the most recent copy, until it expires.
type CopyStatus int

const (
	CopyIdle CopyStatus = iota
	CopyCopied
	CopyFailed
)

// Tone is the colour role a copy button takes for a status.
type Tone int

const (
	TonePrimary Tone = iota
	ToneSecondary
	ToneDefault
)

func (s CopyStatus) String() string {
	switch s {
	case CopyCopied:
		return "copied"
	case CopyFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Label returns the button text shown for the status.
func (s CopyStatus) Label() string {
	switch s {
	case CopyCopied:
		return "Copied"
	case CopyFailed:
		return "Failed!"
	default:
		return "Copy URL"
	}
}

// Tone returns the colour role for the status.
func (s CopyStatus) Tone() Tone {
	switch s {
	case CopyCopied:
		return ToneSecondary
	case CopyFailed:
		return ToneDefault
	default:
		return TonePrimary
	}
}
