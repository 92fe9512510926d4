package seagull

import (
	"fmt"

	"github.com/vovakirdan/hari/internal/core"
)

// Minimum terminal size that still shows a playable field.
const (
	MinScreenW = 30
	MinScreenH = 10
)

// Sprite art drawn for each asset key, facing right.
var (
	boatArt = []string{
		`    |\    `,
		`  __|_\__ `,
		`\________/`,
	}
	gullArt = []string{
		`\v/`,
	}
)

// waterDepth is how far below the boat's start height the waterline sits.
const waterDepth = 60

// sprite is a block of runes anchored at its center.
type sprite struct {
	rows  [][]rune
	color core.Color
}

func newSprite(art []string, c core.Color) sprite {
	rows := make([][]rune, len(art))
	for i, line := range art {
		rows[i] = []rune(line)
	}
	return sprite{rows: rows, color: c}
}

// mirrored returns the sprite flipped horizontally.
func (s sprite) mirrored() sprite {
	rows := make([][]rune, len(s.rows))
	for i, row := range s.rows {
		out := make([]rune, len(row))
		for j, r := range row {
			out[len(row)-1-j] = mirrorRune(r)
		}
		rows[i] = out
	}
	return sprite{rows: rows, color: s.color}
}

func mirrorRune(r rune) rune {
	switch r {
	case '/':
		return '\\'
	case '\\':
		return '/'
	case '(':
		return ')'
	case ')':
		return '('
	case '<':
		return '>'
	case '>':
		return '<'
	}
	return r
}

func (s sprite) width() int {
	w := 0
	for _, row := range s.rows {
		w = max(w, len(row))
	}
	return w
}

// draw places the sprite centered on (cx, cy). Spaces are transparent.
func (s sprite) draw(dst *core.Screen, cx, cy int) {
	x0 := cx - s.width()/2
	y0 := cy - len(s.rows)/2
	for dy, row := range s.rows {
		for dx, r := range row {
			if r == ' ' {
				continue
			}
			dst.Set(x0+dx, y0+dy, r, s.color)
		}
	}
}

// spriteSet resolves asset keys to terminal art.
type spriteSet map[string]sprite

func newSpriteSet(boatKey, gullKey string) spriteSet {
	return spriteSet{
		boatKey: newSprite(boatArt, core.ColorBoat),
		gullKey: newSprite(gullArt, core.ColorGull),
	}
}

// lookup returns the art for an item, falling back to the kind's default
// when the asset key is unknown.
func (ss spriteSet) lookup(item RenderItem) sprite {
	s, ok := ss[item.Sprite]
	if !ok {
		if item.Kind == KindPlayer {
			s = newSprite(boatArt, core.ColorBoat)
		} else {
			s = newSprite(gullArt, core.ColorGull)
		}
	}
	if item.FacingLeft {
		return s.mirrored()
	}
	return s
}

// Viewport maps world coordinates onto a character grid.
// The world origin is the center of the playfield and Y points up.
type Viewport struct {
	WorldW, WorldH float64
	Cols, Rows     int
}

// ToCell converts a world position to a screen cell.
func (v Viewport) ToCell(x, y float64) (int, int) {
	col := int((x + v.WorldW/2) / v.WorldW * float64(v.Cols))
	row := int((v.WorldH/2 - y) / v.WorldH * float64(v.Rows))
	return col, row
}

// Render draws the most recent frame to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		renderTooSmall(dst)
		return
	}

	vp := Viewport{
		WorldW: g.cfg.Playfield.Width,
		WorldH: g.cfg.Playfield.Height,
		Cols:   dst.Width(),
		Rows:   dst.Height(),
	}

	g.renderWater(dst, vp)
	for _, item := range g.last.Items {
		col, row := vp.ToCell(item.Position.X, item.Position.Y)
		g.sprites.lookup(item).draw(dst, col, row)
	}
	g.renderHUD(dst)

	if g.paused {
		renderCentered(dst, dst.Height()/2, "PAUSED", core.ColorHUD)
		renderCentered(dst, dst.Height()/2+1, "press p to resume", core.ColorMuted)
	}
}

// renderWater fills everything below the waterline.
func (g *Game) renderWater(dst *core.Screen, vp Viewport) {
	_, top := vp.ToCell(0, g.cfg.Player.StartY-waterDepth)
	for y := max(top, 1); y < dst.Height(); y++ {
		if y == top {
			dst.DrawHLine(0, y, dst.Width(), '~', core.ColorFoam)
			continue
		}
		r := '-'
		if y%2 == 0 {
			r = '~'
		}
		dst.DrawHLine(0, y, dst.Width(), r, core.ColorWater)
	}
}

// renderHUD draws the score and the seagull population on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.last.Score), core.ColorHUD)

	state := g.spawner.State()
	gulls := fmt.Sprintf("Gulls: %d/%d", state.Active, g.spawner.MaxActive())
	dst.DrawText(dst.Width()-len(gulls)-1, 0, gulls, core.ColorHUD)

	renderCentered(dst, 0, g.Title(), core.ColorMuted)
}

func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	renderCentered(dst, y-1, "Window too small", core.ColorDefault)
	renderCentered(dst, y, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorMuted)
}

func renderCentered(dst *core.Screen, y int, text string, c core.Color) {
	dst.DrawText((dst.Width()-len(text))/2, y, text, c)
}
