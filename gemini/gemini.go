// Package gemini implements [vibewall.ImageGenerator] for Google's
// generative image models.
//
// It wraps the google.golang.org/genai SDK. Initial generation uses an Imagen
// model to produce all wallpapers in one call; remix sends the source image
// plus an instruction to a Gemini image model and returns one image per call.
package gemini

const (
	defaultImageModel = "imagen-4.0-generate-001"
	defaultRemixModel = "gemini-2.5-flash-image"

	aspectRatio = "9:16"
	outputMIME  = "image/jpeg"
)
