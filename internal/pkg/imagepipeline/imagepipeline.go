// Package imagepipeline decodes user-supplied images and deterministically
// re-encodes them to bounded dimensions for embedding in report documents.
package imagepipeline

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2/log"
	"github.com/rwcarlsen/goexif/exif"
)

// ErrImageDecode marks any failure to resolve or decode a source image.
// Callers substitute a placeholder; the error never aborts a render.
var ErrImageDecode = errors.New("imagepipeline: image decode failed")

// Profile bounds the re-encoded output. Lossless profiles encode to PNG
// to keep crisp edges on small graphics; lossy profiles encode to JPEG
// at the fixed quality to bound output size.
type Profile struct {
	MaxWidth  int
	MaxHeight int
	Lossless  bool
	Quality   int
}

// The two fixed re-encoding profiles used by the renderers.
var (
	PhotoProfile = Profile{MaxWidth: 800, MaxHeight: 600, Quality: 90}
	LogoProfile  = Profile{MaxWidth: 200, MaxHeight: 80, Lossless: true}
)

// Encoded is a re-encoded image ready for embedding.
type Encoded struct {
	Data   []byte
	Format string // "jpeg" or "png"
	Width  int
	Height int
}

const fetchTimeout = 15 * time.Second

var httpClient = &http.Client{Timeout: fetchTimeout}

// Load resolves an image source to raw bytes. Supported sources are
// base64 data URLs and http(s) URLs. Anything else fails with
// ErrImageDecode.
func Load(source string) ([]byte, error) {
	switch {
	case strings.HasPrefix(source, "data:"):
		_, payload, found := strings.Cut(source, ",")
		if !found || payload == "" {
			return nil, fmt.Errorf("%w: malformed data URL", ErrImageDecode)
		}
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrImageDecode, err)
		}
		return data, nil
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		resp, err := httpClient.Get(source)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrImageDecode, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%w: unexpected status %s", ErrImageDecode, resp.Status)
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrImageDecode, err)
		}
		return data, nil
	case source == "":
		return nil, fmt.Errorf("%w: empty source", ErrImageDecode)
	default:
		return nil, fmt.Errorf("%w: unsupported source scheme", ErrImageDecode)
	}
}

// Reencode resolves source and re-encodes it under the given profile.
func Reencode(source string, profile Profile) (*Encoded, error) {
	data, err := Load(source)
	if err != nil {
		return nil, err
	}
	return ReencodeBytes(data, profile)
}

// ReencodeBytes re-encodes raw image bytes under the given profile.
// EXIF orientation is applied before resizing so rotated phone photos
// come out upright. The image is shrunk to fit the profile bounds with
// the aspect ratio preserved; sources already inside the bounds are
// never upscaled.
func ReencodeBytes(data []byte, profile Profile) (*Encoded, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageDecode, err)
	}

	img = applyOrientation(img, data)
	img = imaging.Fit(img, profile.MaxWidth, profile.MaxHeight, imaging.Lanczos)

	var buf bytes.Buffer
	format := "jpeg"
	if profile.Lossless {
		format = "png"
		err = imaging.Encode(&buf, img, imaging.PNG)
	} else {
		err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(profile.Quality))
	}
	if err != nil {
		return nil, fmt.Errorf("imagepipeline: encoding %s: %w", format, err)
	}

	bounds := img.Bounds()
	return &Encoded{
		Data:   buf.Bytes(),
		Format: format,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}

// applyOrientation rotates or flips the decoded image according to the
// EXIF orientation tag. Images without EXIF data pass through untouched.
func applyOrientation(img image.Image, data []byte) image.Image {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return img
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return img
	}
	orientation, err := tag.Int(0)
	if err != nil {
		return img
	}

	switch orientation {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.Transpose(img)
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.Transverse(img)
	case 8:
		return imaging.Rotate90(img)
	default:
		return img
	}
}

// MustReencode is Reencode with the degraded path folded in: on any
// failure it logs and returns the placeholder for the profile bounds.
// The returned image is therefore always usable.
func MustReencode(source string, profile Profile, placeholderText string) *Encoded {
	enc, err := Reencode(source, profile)
	if err != nil {
		log.Warn(fmt.Sprintf("[ImagePipeline] substituting placeholder: %v", err))
		return Placeholder(placeholderText, profile.MaxWidth, profile.MaxHeight)
	}
	return enc
}
