package vibewall

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrEmptyPrompt indicates the prompt was empty or whitespace only.
	// It is raised locally and never reaches the image service.
	ErrEmptyPrompt = errors.New("empty prompt")

	// ErrNoSelection indicates a remix was requested with no wallpaper selected.
	ErrNoSelection = errors.New("no wallpaper selected")

	// ErrGeneration indicates an initial generation request failed.
	ErrGeneration = errors.New("generation failed")

	// ErrRemix indicates a remix request failed.
	ErrRemix = errors.New("remix failed")

	// ErrNoImage indicates the image service responded without image data.
	ErrNoImage = errors.New("no image in response")

	// ErrMissingAPIKey indicates no credential was configured for the image service.
	ErrMissingAPIKey = errors.New("API key not set")
)

// User-facing messages for the errors a session can surface.
const (
	MessageEmptyPrompt = "Please enter a vibe for your wallpaper."
	MessageGeneration  = "Failed to generate wallpapers. Please try a different prompt."
	MessageRemix       = "Failed to remix the wallpaper. Please try again."
	MessageUnknown     = "An unknown error occurred."
)

// Message returns the user-facing text for err. Sub-causes of generation and
// remix failures collapse into a single message each.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyPrompt):
		return MessageEmptyPrompt
	case errors.Is(err, ErrRemix):
		return MessageRemix
	case errors.Is(err, ErrGeneration):
		return MessageGeneration
	default:
		return MessageUnknown
	}
}
