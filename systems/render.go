package systems

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/Hendrin-Mckay/odingame/assets"
	"github.com/Hendrin-Mckay/odingame/components"
	"github.com/Hendrin-Mckay/odingame/ecs"
)

// Renderer draws every entity owning a Sprite and a Position, sorted by
// layer, offset by the camera. It runs in the draw phase, not as a system:
// drawing needs the frame image, which only exists during ebiten's Draw.
type Renderer struct {
	cache     *assets.Cache
	atlas     *assets.Atlas
	atlasPath string
	sheet     *ebiten.Image
	log       *zap.Logger

	// scratch buffer reused across frames to avoid per-frame allocation
	drawList []drawEntry
}

type drawEntry struct {
	sprite *components.Sprite
	pos    components.Position
}

// NewRenderer creates a renderer around one atlas and its backing image,
// both held in the cache for the renderer's lifetime.
func NewRenderer(cache *assets.Cache, atlasPath string, log *zap.Logger) (*Renderer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	atlas, err := cache.AcquireAtlas(atlasPath)
	if err != nil {
		return nil, err
	}
	sheet, err := cache.AcquireImage(atlas.Image)
	if err != nil {
		cache.Release(atlasPath)
		return nil, err
	}
	return &Renderer{
		cache:     cache,
		atlas:     atlas,
		atlasPath: atlasPath,
		sheet:     sheet,
		log:       log,
	}, nil
}

// Atlas returns the renderer's atlas, shared with the animation system.
func (r *Renderer) Atlas() *assets.Atlas {
	return r.atlas
}

// Draw renders the world onto screen.
func (r *Renderer) Draw(w *ecs.World, screen *ebiten.Image) {
	camera := CameraPosition(w)

	r.drawList = r.drawList[:0]
	ecs.Each2(w, func(_ ecs.EntityID, s *components.Sprite, p *components.Position) {
		r.drawList = append(r.drawList, drawEntry{sprite: s, pos: *p})
	})
	sort.SliceStable(r.drawList, func(i, j int) bool {
		return r.drawList[i].sprite.Layer < r.drawList[j].sprite.Layer
	})

	for _, d := range r.drawList {
		img := r.sheet
		if d.sprite.Frame != "" {
			sub, ok := r.atlas.Sub(r.sheet, d.sprite.Frame)
			if !ok {
				r.log.Warn("sprite references unknown atlas frame",
					zap.String("frame", d.sprite.Frame))
				continue
			}
			img = sub
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(
			float64(d.pos.X+d.sprite.OffsetX-camera.X),
			float64(d.pos.Y+d.sprite.OffsetY-camera.Y),
		)
		screen.DrawImage(img, op)
	}
}

// Close releases the renderer's atlas and image references, letting the
// next prune evict them.
func (r *Renderer) Close() {
	r.cache.Release(r.atlas.Image)
	r.cache.Release(r.atlasPath)
}
