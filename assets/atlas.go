package assets

import (
	"image"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Frame is one named sub-rectangle of an atlas image, in pixels.
type Frame struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Sequence is an ordered list of frame names played at a fixed rate.
type Sequence struct {
	Frames []string `yaml:"frames"`
	FPS    float32  `yaml:"fps"`
}

// Atlas describes how one image is carved into named frames and animation
// sequences. It is loaded from a YAML sidecar file next to the image.
type Atlas struct {
	Image     string              `yaml:"image"` // path of the backing image
	Frames    map[string]Frame    `yaml:"frames"`
	Sequences map[string]Sequence `yaml:"sequences"`
}

// LoadAtlas reads and validates an atlas description.
func LoadAtlas(path string) (*Atlas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read atlas %s", path)
	}
	var a Atlas
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, errors.Wrapf(err, "parse atlas %s", path)
	}
	if a.Image == "" {
		return nil, errors.Errorf("atlas %s: missing image path", path)
	}
	for name, seq := range a.Sequences {
		if len(seq.Frames) == 0 {
			return nil, errors.Errorf("atlas %s: sequence %q has no frames", path, name)
		}
		if seq.FPS <= 0 {
			return nil, errors.Errorf("atlas %s: sequence %q has no frame rate", path, name)
		}
		for _, f := range seq.Frames {
			if _, ok := a.Frames[f]; !ok {
				return nil, errors.Errorf("atlas %s: sequence %q references unknown frame %q", path, name, f)
			}
		}
	}
	return &a, nil
}

// FrameAt resolves step i of a sequence to its frame rectangle.
func (a *Atlas) FrameAt(sequence string, i int) (Frame, bool) {
	seq, ok := a.Sequences[sequence]
	if !ok || i < 0 || i >= len(seq.Frames) {
		return Frame{}, false
	}
	f, ok := a.Frames[seq.Frames[i]]
	return f, ok
}

// Sub returns the named frame as a sub-image of the atlas texture.
func (a *Atlas) Sub(img *ebiten.Image, frame string) (*ebiten.Image, bool) {
	f, ok := a.Frames[frame]
	if !ok {
		return nil, false
	}
	r := image.Rect(f.X, f.Y, f.X+f.W, f.Y+f.H)
	return img.SubImage(r).(*ebiten.Image), true
}
