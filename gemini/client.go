package gemini

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fwojciec/vibewall"
	"google.golang.org/genai"
)

// Interface compliance check.
var _ vibewall.ImageGenerator = (*Client)(nil)

// models is the subset of [genai.Models] used by Client.
type models interface {
	GenerateImages(ctx context.Context, model, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error)
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client implements [vibewall.ImageGenerator] for the Gemini API.
type Client struct {
	models     models
	imageModel string
	remixModel string
	httpOpts   genai.HTTPOptions
}

// Option configures a [Client].
type Option func(*Client)

// WithImageModel sets the model used for initial generation.
// Default is imagen-4.0-generate-001.
func WithImageModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.imageModel = model
		}
	}
}

// WithRemixModel sets the model used for remix. Default is gemini-2.5-flash-image.
func WithRemixModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.remixModel = model
		}
	}
}

// WithHTTPOptions overrides the SDK's HTTP options, e.g. the base URL.
func WithHTTPOptions(opts genai.HTTPOptions) Option {
	return func(c *Client) { c.httpOpts = opts }
}

// New creates a new Gemini [Client] with the given API key and options.
// An empty key is a configuration error reported before any request.
func New(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: %w", vibewall.ErrMissingAPIKey)
	}
	c := newClient(opts...)
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: c.httpOpts,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	c.models = gc.Models
	return c, nil
}

func newClient(opts ...Option) *Client {
	c := &Client{
		imageModel: defaultImageModel,
		remixModel: defaultRemixModel,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Generate requests [vibewall.WallpaperCount] images for prompt in a single
// call. Fewer usable images than requested is an error.
func (c *Client) Generate(ctx context.Context, prompt string) ([][]byte, error) {
	resp, err := c.models.GenerateImages(ctx, c.imageModel, GeneratePrompt(prompt), &genai.GenerateImagesConfig{
		NumberOfImages: vibewall.WallpaperCount,
		AspectRatio:    aspectRatio,
		OutputMIMEType: outputMIME,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: generate images: %w", err)
	}
	images := ExtractImages(resp)
	if len(images) < vibewall.WallpaperCount {
		return nil, fmt.Errorf("gemini: got %d of %d images: %w", len(images), vibewall.WallpaperCount, vibewall.ErrNoImage)
	}
	return images, nil
}

// RemixOne sends source and a remix instruction and returns the first image
// in the response.
func (c *Client) RemixOne(ctx context.Context, prompt string, source []byte) ([]byte, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			{InlineData: &genai.Blob{MIMEType: sourceMIME(source), Data: source}},
			genai.NewPartFromText(RemixPrompt(prompt)),
		}, genai.RoleUser),
	}
	resp, err := c.models.GenerateContent(ctx, c.remixModel, contents, &genai.GenerateContentConfig{
		ResponseModalities: []string{string(genai.ModalityImage)},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: generate content: %w", err)
	}
	img := ExtractInlineImage(resp)
	if img == nil {
		return nil, fmt.Errorf("gemini: remix: %w", vibewall.ErrNoImage)
	}
	return img, nil
}

// GeneratePrompt wraps the user's vibe in the wallpaper instruction.
// Exported for testing.
func GeneratePrompt(vibe string) string {
	return fmt.Sprintf("A stunning, high-resolution, artistic phone wallpaper with a %s aspect ratio. "+
		"The vibe is: %s. Focus on aesthetic quality and composition.", aspectRatio, vibe)
}

// RemixPrompt builds the remix instruction for the user's vibe.
// Exported for testing.
func RemixPrompt(vibe string) string {
	return fmt.Sprintf("Remix this image with the following vibe: %s. "+
		"Generate a new, unique wallpaper in a %s aspect ratio, inspired by the original but distinct.", vibe, aspectRatio)
}

// ExtractImages returns the bytes of every generated image that carries data.
// Images withheld by safety filters have no bytes and are skipped.
// Exported for testing.
func ExtractImages(resp *genai.GenerateImagesResponse) [][]byte {
	if resp == nil {
		return nil
	}
	var images [][]byte
	for _, gi := range resp.GeneratedImages {
		if gi == nil || gi.Image == nil || len(gi.Image.ImageBytes) == 0 {
			continue
		}
		images = append(images, gi.Image.ImageBytes)
	}
	return images
}

// ExtractInlineImage returns the first inline data part of the first
// candidate, or nil if there is none.
// Exported for testing.
func ExtractInlineImage(resp *genai.GenerateContentResponse) []byte {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].Content == nil {
		return nil
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData.Data
		}
	}
	return nil
}

// sourceMIME sniffs the source image type. Generated wallpapers are JPEG, but
// remix output may come back in another format.
func sourceMIME(data []byte) string {
	switch ct := http.DetectContentType(data); ct {
	case "image/png", "image/webp", "image/gif", "image/jpeg":
		return ct
	default:
		return outputMIME
	}
}
