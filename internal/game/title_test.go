package game

import (
	"testing"
	"time"

	"git.lost.host/meutraa/otoge/internal/input"
	"git.lost.host/meutraa/otoge/internal/page"
	"git.lost.host/meutraa/otoge/internal/render"
	"git.lost.host/meutraa/otoge/internal/theme"
)

func TestTitleEnterRequestsFilePicker(t *testing.T) {
	visual := make(chan render.Msg, 1)
	ctx := &page.Context{VisualTx: visual}
	p := NewTitlePage(&theme.DefaultTheme{})

	consumed, err := p.OnInput(input.SystemKey{Key: input.KeyEnter}, ctx)
	if nil != err || !consumed {
		t.Fatal("expected enter to be consumed", consumed, err)
	}
	select {
	case msg := <-visual:
		if _, ok := msg.(render.RequestFileOpen); !ok {
			t.Log("msg     ", msg)
			t.Fail()
		}
	default:
		t.Log("expected a file open request")
		t.Fail()
	}
}

func TestTitleEscapeExits(t *testing.T) {
	ctx := &page.Context{}
	p := NewTitlePage(&theme.DefaultTheme{})

	if tr, _ := p.OnUpdate(16*time.Millisecond, ctx); tr != page.Stay() {
		t.Fatal("expected stay before escape")
	}
	if _, err := p.OnInput(input.SystemKey{Key: input.KeyEscape}, ctx); nil != err {
		t.Fatal(err)
	}
	tr, err := p.OnUpdate(16*time.Millisecond, ctx)
	if nil != err {
		t.Fatal(err)
	}
	if tr != page.Exit() {
		t.Log("transition", tr)
		t.Fail()
	}
}

func TestTitleRendersLogo(t *testing.T) {
	p := NewTitlePage(&theme.DefaultTheme{})
	if 0 == len(p.OnRender(&page.Context{})) {
		t.Fatal("expected logo instances")
	}
}
