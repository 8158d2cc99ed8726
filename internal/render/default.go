package render

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"

	"git.lost.host/meutraa/otoge/internal/bga"
)

// Terminal renders instance frames into the terminal using truecolor
// escape codes. It owns the terminal state for the life of Run.
type Terminal struct {
	Cache       *bga.Cache
	FramePeriod time.Duration

	buffer       strings.Builder
	restoreState *term.State

	latest      []Instance
	layers      [4]layerState
	poorFrames  int
	decorations []*decoration
}

type layerState struct {
	path    string
	visible bool
}

type decoration struct {
	X, Y    int
	Content string
	Frames  int // remaining frames until removed
}

func (r *Terminal) Init() error {
	state, err := term.MakeRaw(int(os.Stdout.Fd()))
	if nil != err {
		return err
	}
	r.restoreState = state
	if r.FramePeriod <= 0 {
		r.FramePeriod = 16 * time.Millisecond
	}

	fmt.Printf("%s%s%s",
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[J",      // Clear the screen
	)
	return nil
}

func (r *Terminal) Deinit() error {
	fmt.Printf("%s%s",
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	)
	return term.Restore(int(os.Stdout.Fd()), r.restoreState)
}

// Run consumes visual messages until msgs is closed, presenting the
// most recent frame once per frame period.
func (r *Terminal) Run(msgs <-chan Msg) {
	for {
		deadline := time.Now().Add(r.FramePeriod)
		open := r.drain(msgs)
		r.present()
		if !open {
			return
		}
		if wait := time.Until(deadline); wait > 0 {
			time.Sleep(wait)
		}
	}
}

// drain applies every queued message, keeping only the newest frame.
// Returns false once the channel is closed.
func (r *Terminal) drain(msgs <-chan Msg) bool {
	for {
		select {
		case msg, ok := <-msgs:
			if !ok {
				return false
			}
			r.apply(msg)
		default:
			return true
		}
	}
}

func (r *Terminal) apply(msg Msg) {
	switch m := msg.(type) {
	case Frame:
		r.latest = m.Instances
	case BgaChange:
		if nil != r.Cache {
			if _, err := bga.DecodeAndCache(r.Cache, m.Layer, m.Path); nil != err {
				log.Println("unable to load bga image:", err)
				return
			}
		}
		r.layers[m.Layer].path = m.Path
		r.layers[m.Layer].visible = m.Layer != bga.LayerPoor
	case BgaPoorTrigger:
		r.poorFrames = 48
		r.AddDecoration(1, 1, "\033[1;31mPOOR\033[0m", 48)
	case VideoPlay:
		// Video decode is handled by a media collaborator; a terminal
		// session only notes the request.
		log.Printf("video bga requested: %v (loop=%v)", m.Path, m.Loop)
	case RequestFileOpen:
		log.Println("file open requested")
	}
}

func (r *Terminal) AddDecoration(col, row int, content string, frames int) {
	r.decorations = append(r.decorations, &decoration{
		X:       col,
		Y:       row,
		Content: content,
		Frames:  frames,
	})
}

func (r *Terminal) tickDecorations() {
	nd := make([]*decoration, 0, len(r.decorations))
	for _, d := range r.decorations {
		if d.Frames == 0 {
			r.Fill(d.Y, d.X, " ")
			continue
		}
		r.Fill(d.Y, d.X, d.Content)
		nd = append(nd, d)
		d.Frames--
	}
	r.decorations = nd
}

func (r *Terminal) present() {
	columns, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if nil != err || columns <= 0 || rows <= 0 {
		return
	}

	r.buffer.WriteString("\033[0m\033[2J")

	// Virtual space covered by the play area plus the side panel.
	vw := TotalWidth() + PanelGap + VisibleHeight + 64.0
	vh := VisibleHeight + 64.0
	toCell := func(x, y float64) (int, int) {
		cx := int((x + vw/2) / vw * float64(columns))
		cy := int((vh/2 - y) / vh * float64(rows))
		return cx + 1, cy + 1
	}

	for _, in := range r.latest {
		left, top := toCell(in.X-in.Width/2, in.Y+in.Height/2)
		right, bottom := toCell(in.X+in.Width/2, in.Y-in.Height/2)
		if right < left {
			right = left
		}
		if bottom < top {
			bottom = top
		}
		for row := top; row <= bottom; row++ {
			if row < 1 || row > rows {
				continue
			}
			r.fillRun(row, left, right, columns, in.Color)
		}
	}

	r.presentPanel(columns, rows)

	if r.poorFrames > 0 {
		r.poorFrames--
	}
	r.tickDecorations()
	r.flush()
}

// presentPanel draws the active background animation layers as coarse
// color blocks on the right-hand panel.
func (r *Terminal) presentPanel(columns, rows int) {
	if nil == r.Cache {
		return
	}
	panelLeft := columns * 2 / 3
	panelW := columns - panelLeft - 1
	panelH := rows - 2
	if panelW <= 0 || panelH <= 0 {
		return
	}
	order := []bga.Layer{bga.LayerBase, bga.LayerOverlay, bga.LayerOverlay2}
	if r.poorFrames > 0 && r.layers[bga.LayerPoor].path != "" {
		order = []bga.Layer{bga.LayerPoor}
	}
	for _, layer := range order {
		st := r.layers[layer]
		if st.path == "" || (!st.visible && layer != bga.LayerPoor) {
			continue
		}
		img := r.Cache.GetVariant(bga.LayerVariant(layer), st.path)
		if nil == img || img.Width == 0 || img.Height == 0 {
			continue
		}
		for py := 0; py < panelH; py++ {
			for px := 0; px < panelW; px++ {
				sx := px * img.Width / panelW
				sy := py * img.Height / panelH
				base := (sy*img.Width + sx) * 4
				if img.Pix[base+3] == 0 {
					continue
				}
				c := color.RGBA{R: img.Pix[base], G: img.Pix[base+1], B: img.Pix[base+2], A: 255}
				r.fillRun(py+2, panelLeft+px+1, panelLeft+px+1, columns, c)
			}
		}
	}
}

func (r *Terminal) fillRun(row, left, right, columns int, c color.RGBA) {
	if left < 1 {
		left = 1
	}
	if right > columns {
		right = columns
	}
	if right < left {
		return
	}
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.Itoa(row))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(left))
	r.buffer.WriteString("H\033[48;2;")
	r.buffer.WriteString(strconv.Itoa(int(c.R)))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(int(c.G)))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(int(c.B)))
	r.buffer.WriteString("m")
	r.buffer.WriteString(strings.Repeat(" ", right-left+1))
	r.buffer.WriteString("\033[0m")
}

func (r *Terminal) Fill(row, column int, message string) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.Itoa(row))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(column))
	r.buffer.WriteString("H")
	r.buffer.WriteString(message)
}

func (r *Terminal) flush() {
	os.Stdout.WriteString(r.buffer.String())
	r.buffer.Reset()
}
