// Package viewer is a terminal rendering surface for the search core: it
// paints one page of fragments with match highlights and routes search and
// navigation keys to the find controller.
package viewer

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/kk-code-lab/docfind/internal/find"
	"github.com/kk-code-lab/docfind/internal/textutil"
)

var (
	styleBase      = tcell.StyleDefault
	styleHighlight = tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack)
	styleCurrent   = tcell.StyleDefault.Background(tcell.ColorOrange).Foreground(tcell.ColorBlack)
	styleStatus    = tcell.StyleDefault.Reverse(true)
)

type Viewer struct {
	screen tcell.Screen
	ctrl   *find.Controller
	doc    find.Decoder

	page       int
	pageErr    error
	searchMode bool
	input      []rune
}

func New(ctrl *find.Controller, doc find.Decoder) (*Viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return &Viewer{screen: screen, ctrl: ctrl, doc: doc, page: 1}, nil
}

func (v *Viewer) Run() error {
	defer v.screen.Fini()

	// Background scan completions repaint through the event queue so all
	// drawing stays on this goroutine.
	v.ctrl.SetUpdateFunc(func() {
		_ = v.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})

	v.page = v.ctrl.FocusedPage()
	for {
		v.ensurePageText()
		v.render()

		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventInterrupt:
			// Recompute committed; fall through to repaint fresh counts.
		case *tcell.EventKey:
			if done := v.handleKey(ev); done {
				return nil
			}
		}
		v.syncFocus()
	}
}

// syncFocus adopts page jumps made by match navigation.
func (v *Viewer) syncFocus() {
	if focus := v.ctrl.FocusedPage(); focus != v.page {
		v.page = focus
		v.pageErr = nil
	}
}

// ensurePageText decodes the shown page on demand (the foreground path);
// the background scheduler picks up every other page.
func (v *Viewer) ensurePageText() {
	if v.ctrl.HasPageText(v.page) || v.pageErr != nil {
		return
	}
	fragments, err := v.doc.DecodePage(context.Background(), v.page)
	if err != nil {
		v.pageErr = err
		return
	}
	v.ctrl.SetPageText(v.page, fragments)
}

func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	if v.searchMode {
		v.handleSearchKey(ev)
		return false
	}

	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyPgUp, tcell.KeyLeft:
		v.gotoPage(v.page - 1)
	case tcell.KeyPgDn, tcell.KeyRight:
		v.gotoPage(v.page + 1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case '/':
			v.searchMode = true
			v.input = []rune(v.ctrl.DraftPhrase())
		case 'n':
			v.ctrl.NextMatch()
		case 'N':
			v.ctrl.PrevMatch()
		case 'g':
			v.gotoPage(1)
		case 'G':
			v.gotoPage(v.doc.PageCount())
		}
	}
	return false
}

func (v *Viewer) handleSearchKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEnter:
		v.searchMode = false
		v.ctrl.SubmitPhrase(string(v.input))
	case tcell.KeyEscape:
		v.searchMode = false
		v.input = nil
		v.ctrl.ClearPhrase()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(v.input) > 0 {
			v.input = v.input[:len(v.input)-1]
			v.ctrl.EditPhraseDraft(string(v.input))
		}
	case tcell.KeyRune:
		v.input = append(v.input, ev.Rune())
		v.ctrl.EditPhraseDraft(string(v.input))
	}
}

func (v *Viewer) gotoPage(page int) {
	if page < 1 || page > v.doc.PageCount() {
		return
	}
	v.page = page
	v.pageErr = nil
	v.ctrl.SetFocusedPage(page)
}

func (v *Viewer) render() {
	v.screen.Clear()
	w, h := v.screen.Size()
	if w <= 0 || h < 2 {
		v.screen.Show()
		return
	}

	current, hasCurrent := v.ctrl.CurrentGlobalMatch()

	if v.pageErr != nil {
		v.drawRun(0, 0, w, styledRun{text: fmt.Sprintf("page %d unavailable: %v", v.page, v.pageErr)})
	} else if pt, ok := v.ctrl.PageText(v.page); ok {
		for i, frag := range pt.Fragments {
			if i >= h-1 {
				break
			}
			col := 0
			for _, run := range splitRuns(frag, v.ctrl.Highlights(v.page, i), current, hasCurrent) {
				col = v.drawRun(col, i, w, run)
				if col >= w {
					break
				}
			}
		}
	}

	v.drawStatus(w, h)
	v.screen.Show()
}

// drawRun paints one styled run at row y starting at column col, expanding
// tabs, and returns the next free column.
func (v *Viewer) drawRun(col, y, w int, run styledRun) int {
	style := styleBase
	if run.current {
		style = styleCurrent
	} else if run.highlight {
		style = styleHighlight
	}

	g := uniseg.NewGraphemes(run.text)
	for g.Next() && col < w {
		cluster := g.Str()
		if cluster == "\t" {
			spaces := textutil.DefaultTabWidth - (col % textutil.DefaultTabWidth)
			for i := 0; i < spaces && col < w; i++ {
				v.screen.SetContent(col, y, ' ', nil, style)
				col++
			}
			continue
		}
		runes := g.Runes()
		v.screen.SetContent(col, y, runes[0], runes[1:], style)
		adv := runewidth.StringWidth(cluster)
		if adv < 1 {
			adv = 1
		}
		col += adv
	}
	return col
}

func (v *Viewer) drawStatus(w, h int) {
	var text string
	switch {
	case v.searchMode:
		text = "/" + string(v.input)
	case v.ctrl.CommittedPhrase() != "":
		total := v.ctrl.TotalMatches()
		if cur, ok := v.ctrl.CurrentGlobalMatch(); ok {
			text = fmt.Sprintf(" match %d/%d · page %d/%d ", cur+1, total, v.page, v.doc.PageCount())
		} else {
			text = fmt.Sprintf(" no matches · page %d/%d ", v.page, v.doc.PageCount())
		}
		if v.ctrl.IsScanning() {
			text += "· scanning… "
		}
	default:
		text = fmt.Sprintf(" page %d/%d · / search · n/N matches · q quit ", v.page, v.doc.PageCount())
	}

	col := 0
	for _, r := range text {
		if col >= w {
			break
		}
		v.screen.SetContent(col, h-1, r, nil, styleStatus)
		col += textutil.DisplayWidth(string(r))
	}
	for ; col < w; col++ {
		v.screen.SetContent(col, h-1, ' ', nil, styleStatus)
	}
}
