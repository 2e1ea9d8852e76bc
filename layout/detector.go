package layout

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"io"
	"net/http"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/tsawler/recital/model"
)

// Detector produces scored, labeled regions for a page image
type Detector interface {
	Detect(ctx context.Context, img image.Image) ([]model.Region, error)
}

// HTTPDetectorConfig holds configuration for the detection service client
type HTTPDetectorConfig struct {
	// Endpoint is the detection service URL
	Endpoint string

	// Model is the model name sent with each request, e.g. "publaynet"
	Model string

	// Spec resolves class ids to labels and supplies the score threshold
	Spec ModelSpec

	// MaxDim caps the longer page-image dimension before upload. Larger
	// images are downscaled for transport and the returned boxes are
	// rescaled to the original raster. Zero disables downscaling.
	// Default: 2000
	MaxDim int

	// Timeout bounds one detection request. Zero means no timeout: layout
	// inference on busy services can legitimately take minutes.
	// Default: 0
	Timeout time.Duration
}

// DefaultHTTPDetectorConfig returns sensible default configuration for an
// endpoint
func DefaultHTTPDetectorConfig(endpoint, modelName string, spec ModelSpec) HTTPDetectorConfig {
	return HTTPDetectorConfig{
		Endpoint: endpoint,
		Model:    modelName,
		Spec:     spec,
		MaxDim:   2000,
	}
}

// HTTPDetector calls a layout detection service over HTTP. The service
// accepts a base64 PNG and returns scored boxes with integer class ids,
// which are mapped to labels through the configured model spec.
type HTTPDetector struct {
	config HTTPDetectorConfig
	client *http.Client
}

// NewHTTPDetector creates a detector client for the configured service
func NewHTTPDetector(config HTTPDetectorConfig) *HTTPDetector {
	return &HTTPDetector{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

type detectRequest struct {
	Image string `json:"image"`
	Model string `json:"model"`
}

type detectResponse struct {
	Detections []struct {
		ClassID int        `json:"class_id"`
		Label   string     `json:"label"`
		Score   float64    `json:"score"`
		Box     [4]float64 `json:"box"`
	} `json:"detections"`
}

// Detect posts the page image to the detection service and returns the
// labeled regions at or above the model's score threshold, in service
// order, with coordinates in the original image's pixel space.
func (d *HTTPDetector) Detect(ctx context.Context, img image.Image) ([]model.Region, error) {
	upload, scale := d.downscale(img)

	var buf bytes.Buffer
	if err := png.Encode(&buf, upload); err != nil {
		return nil, fmt.Errorf("encoding page image: %w", err)
	}

	body, err := json.Marshal(detectRequest{
		Image: "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
		Model: d.config.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding detection request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.config.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building detection request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("detection request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("detection service returned %d: %s", resp.StatusCode, detail)
	}

	var decoded detectResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding detection response: %w", err)
	}

	var regions []model.Region
	for _, det := range decoded.Detections {
		label := det.Label
		if label == "" {
			label = d.config.Spec.LabelMap[det.ClassID]
		}
		if label == "" {
			// Class id outside the configured map: nothing downstream
			// can interpret it.
			continue
		}
		if det.Score < d.config.Spec.Threshold {
			continue
		}

		regions = append(regions, model.Region{
			Type:  label,
			Score: det.Score,
			Box: model.NewBBox(
				det.Box[0]/scale,
				det.Box[1]/scale,
				det.Box[2]/scale,
				det.Box[3]/scale,
			),
		})
	}

	return regions, nil
}

// downscale returns the image to upload and the scale factor applied to it.
// Boxes returned by the service are divided by the factor to land back in
// the original raster's coordinates.
func (d *HTTPDetector) downscale(img image.Image) (image.Image, float64) {
	if d.config.MaxDim <= 0 {
		return img, 1
	}

	bounds := img.Bounds()
	longest := bounds.Dx()
	if bounds.Dy() > longest {
		longest = bounds.Dy()
	}
	if longest <= d.config.MaxDim {
		return img, 1
	}

	scale := float64(d.config.MaxDim) / float64(longest)
	dst := image.NewRGBA(image.Rect(0, 0,
		int(float64(bounds.Dx())*scale),
		int(float64(bounds.Dy())*scale)))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)

	return dst, scale
}
