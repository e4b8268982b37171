// Package page composes the guide page: a scrollable document of sections
// over the particle-network backdrop, with scroll-triggered reveals. It
// owns the ebiten game loop and the production implementations of the host
// interfaces the core components are written against.
package page

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"
	"go.uber.org/zap"

	"github.com/iburimskiy/obsidian-guide/internal/audio"
	"github.com/iburimskiy/obsidian-guide/internal/config"
	"github.com/iburimskiy/obsidian-guide/internal/content"
	"github.com/iburimskiy/obsidian-guide/internal/particles"
	"github.com/iburimskiy/obsidian-guide/internal/reveal"
)

// Obsidian-ish dark palette. The canvas owns these; the particle field only
// talks geometry and opacity.
var (
	colorBg     = color.RGBA{0x16, 0x16, 0x1d, 0xff}
	colorAccent = color.RGBA{0x8b, 0x6c, 0xef, 0xff}
	colorPanel  = color.RGBA{0x1f, 0x20, 0x2a, 0xff}
	colorBorder = color.RGBA{0x35, 0x37, 0x47, 0xff}
	colorText   = color.RGBA{0xdc, 0xdd, 0xe3, 0xff}
	colorMuted  = color.RGBA{0x8d, 0x90, 0x9f, 0xff}
)

var sectionIDs = []string{
	SectionConcepts,
	SectionFeatures,
	SectionHotkeys,
	SectionPlugins,
	SectionThemes,
	SectionClosing,
}

// Options configures a Page.
type Options struct {
	Guide     *content.Guide
	Logger    *zap.Logger
	Width     int
	Height    int
	Particles int
	Ambient   bool
}

// Page is the ebiten.Game for the guide.
type Page struct {
	logger *zap.Logger
	guide  *content.Guide

	width, height int
	doc           document

	backdrop *ebiten.Image
	canvas   *screenCanvas
	sched    *updateScheduler
	watcher  *viewportWatcher
	field    *particles.Field
	observer *reveal.Observer
	ambient  *audio.Ambient

	transitions map[string]*reveal.Transition

	spring       harmonica.Spring
	scroll       float64
	scrollVel    float64
	scrollTarget float64

	elapsed       float64
	started       bool
	torndown      bool
	buttonPressed bool
	heroHover     bool
	closingHover  bool

	textCache     map[string]*ebiten.Image
	sectionImages map[string]*ebiten.Image
}

// New builds a page for the given guide content. The particle field and
// observer stay inactive until the first Update tick.
func New(opts Options) *Page {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Page{
		logger:        logger,
		guide:         opts.Guide,
		sched:         newUpdateScheduler(),
		watcher:       newViewportWatcher(),
		canvas:        &screenCanvas{bg: colorBg, accent: colorAccent},
		transitions:   make(map[string]*reveal.Transition, len(sectionIDs)),
		spring:        harmonica.NewSpring(harmonica.FPS(60), config.ScrollFrequency, config.ScrollDamping),
		textCache:     map[string]*ebiten.Image{},
		sectionImages: map[string]*ebiten.Image{},
	}
	for _, id := range sectionIDs {
		p.transitions[id] = &reveal.Transition{}
	}
	p.field = particles.New(p.canvas, p.sched, logger, particles.WithCount(opts.Particles))
	p.observer = reveal.NewObserver(p.watcher, config.RevealThreshold, logger)
	if opts.Ambient {
		p.ambient = audio.NewAmbient(logger)
	}
	p.resize(opts.Width, opts.Height)
	return p
}

// Layout reports the logical screen size and tracks window resizes.
func (p *Page) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != p.width || outsideHeight != p.height {
		p.resize(outsideWidth, outsideHeight)
	}
	return p.width, p.height
}

// resize re-measures the document and the particle surface. Particle
// positions are untouched; only the bounce bounds move.
func (p *Page) resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	p.width, p.height = w, h
	p.backdrop = ebiten.NewImage(w, h)
	p.canvas.target = p.backdrop
	p.doc = layoutDocument(p.guide, float64(w), float64(h))
	p.field.Resize(float64(w), float64(h))
	max := p.doc.maxScroll(float64(h))
	p.scrollTarget = clamp(p.scrollTarget, 0, max)
	p.scroll = clamp(p.scroll, 0, max)
	p.sectionImages = map[string]*ebiten.Image{}
	p.logger.Debug("page resized", zap.Int("width", w), zap.Int("height", h))
}

// Update runs one tick: input, scroll physics, intersection publishing,
// reveal transitions, then one pumped animation frame.
func (p *Page) Update() error {
	if !p.started {
		p.activate()
	}
	if quit := p.handleInput(); quit {
		p.Shutdown()
		return ebiten.Termination
	}

	p.elapsed += 1.0 / 60.0
	p.scroll, p.scrollVel = p.spring.Update(p.scroll, p.scrollVel, p.scrollTarget)

	vh := float64(p.height)
	for _, b := range p.doc.boxes {
		p.watcher.publish(b.id, visibleFraction(b, p.scroll, vh))
	}

	dt := time.Second / 60
	for id, tr := range p.transitions {
		if p.observer.Visible(id) {
			tr.Advance(dt)
		}
	}

	p.sched.pump()
	return nil
}

func (p *Page) activate() {
	p.started = true
	p.field.Start()
	p.observer.Start(sectionIDs)
	if p.ambient != nil {
		if err := p.ambient.Start(); err != nil {
			p.logger.Warn("ambient sound unavailable", zap.Error(err))
			p.ambient = nil
		}
	}
	p.logger.Info("page activated",
		zap.Int("width", p.width),
		zap.Int("height", p.height),
		zap.Bool("animated", p.field.Running()))
}

// Shutdown stops the animation loop and the observer. Safe to call twice;
// main calls it again after RunGame returns.
func (p *Page) Shutdown() {
	if p.torndown {
		return
	}
	p.torndown = true
	p.field.Stop()
	p.observer.Stop()
	if p.ambient != nil {
		p.ambient.Stop()
	}
	p.logger.Info("page torn down")
}

func (p *Page) handleInput() (quit bool) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return true
	}

	vh := float64(p.height)
	max := p.doc.maxScroll(vh)

	// Wheel deltas are negative scrolling down on most platforms.
	_, wheelY := ebiten.Wheel()
	if wheelY != 0 {
		p.scrollTarget -= wheelY * config.WheelStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		p.scrollTarget += vh * 0.9
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		p.scrollTarget -= vh * 0.9
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		p.scrollTarget += 8
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		p.scrollTarget -= 8
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		p.scrollTarget = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		p.scrollTarget = max
	}
	p.scrollTarget = clamp(p.scrollTarget, 0, max)

	// Call-to-action buttons: arm on press over a button, fire on release
	// only if the cursor is still over one.
	mx, my := ebiten.CursorPosition()
	fx, fy := float64(mx), float64(my)
	p.heroHover = p.heroButton().contains(fx, fy)
	p.closingHover = p.closingButton().contains(fx, fy)
	hovered := p.heroHover || p.closingHover

	if hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		p.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if p.buttonPressed && hovered {
			p.openDownload()
		}
		p.buttonPressed = false
	}
	return false
}

func (p *Page) openDownload() {
	url := p.guide.Hero.URL
	p.logger.Info("call to action clicked", zap.String("url", url))
	go func() {
		if err := zenity.Info(
			fmt.Sprintf("Get Obsidian at %s", url),
			zenity.Title(p.guide.Hero.CTA),
		); err != nil {
			p.logger.Warn("download dialog failed", zap.Error(err))
		}
	}()
}

type rect struct {
	x, y, w, h float64
}

func (r rect) contains(px, py float64) bool {
	return px >= r.x && px <= r.x+r.w && py >= r.y && py <= r.y+r.h
}

func (p *Page) heroButton() rect {
	const bw, bh = 220, 48
	return rect{
		x: (float64(p.width) - bw) / 2,
		y: float64(p.height)*0.64 - p.scroll,
		w: bw,
		h: bh,
	}
}

func (p *Page) closingButton() rect {
	const bw, bh = 220, 48
	b, ok := p.doc.find(SectionClosing)
	if !ok {
		return rect{}
	}
	return rect{
		x: (float64(p.width) - bw) / 2,
		y: b.top + closingHeight - bh - 24 - p.scroll,
		w: bw,
		h: bh,
	}
}
