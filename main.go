package main

import (
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"time"

	"git.lost.host/meutraa/otoge/internal/audio"
	"git.lost.host/meutraa/otoge/internal/bga"
	"git.lost.host/meutraa/otoge/internal/config"
	"git.lost.host/meutraa/otoge/internal/game"
	"git.lost.host/meutraa/otoge/internal/input"
	"git.lost.host/meutraa/otoge/internal/page"
	"git.lost.host/meutraa/otoge/internal/render"
	"git.lost.host/meutraa/otoge/internal/resolve"
	"git.lost.host/meutraa/otoge/internal/score"
	"git.lost.host/meutraa/otoge/internal/theme"
)

const tickPeriod = 16 * time.Millisecond

func main() {
	config.Parse()
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

// loadChart finds and reads the chart file of the given directory.
// An empty directory argument means no chart was picked, which still
// runs the title page.
func loadChart(dir string) (*game.Chart, error) {
	if "" == dir {
		return nil, nil
	}
	var chartFile string
	if err := filepath.Walk(dir, func(p string, info os.FileInfo, err error) error {
		if nil != err {
			return err
		}
		if ".json" == path.Ext(info.Name()) && "" == chartFile {
			chartFile = p
		}
		return nil
	}); nil != err {
		return nil, fmt.Errorf("unable to walk chart directory: %w", err)
	}
	if "" == chartFile {
		return nil, fmt.Errorf("unable to find a chart file in %v", dir)
	}
	return game.LoadChart(chartFile)
}

func run() error {
	var th theme.Theme = &theme.DefaultTheme{}
	cache := bga.NewCache()

	judgeParams, err := config.Judge()
	if nil != err {
		return err
	}

	chart, err := loadChart(*config.Directory)
	if nil != err {
		return err
	}

	visual := make(chan render.Msg, 3)
	audioCmd := make(chan audio.Msg, 64)
	audioReady := make(chan audio.Event, 1)
	rawInput := make(chan input.Msg, 128)
	control := make(chan struct{}, 1)

	go audio.Run(audioCmd, audioReady, audio.SpeakerSink{}, *config.Workers)

	closeKeys, err := input.Capture(input.NewMap(config.Keys()), rawInput)
	if nil != err {
		return fmt.Errorf("unable to open keyboard: %w", err)
	}
	defer closeKeys()

	var r render.Renderer = &render.Terminal{Cache: cache, FramePeriod: time.Second / 60}
	if err := r.Init(); nil != err {
		return fmt.Errorf("unable to init renderer: %w", err)
	}
	defer func() {
		if err := r.Deinit(); nil != err {
			log.Println("unable to deinit renderer:", err)
		}
	}()
	rendered := make(chan struct{})
	go func() {
		control <- struct{}{}
		r.Run(visual)
		close(rendered)
	}()

	scorer := &score.DefaultScorer{}
	var results game.ResultSink
	if err := scorer.Init(*config.Scores); nil != err {
		log.Println("disabling score history:", err)
	} else {
		results = scorer
		defer scorer.Deinit()
	}

	manager := page.NewManager(page.Context{
		VisualTx: visual,
		AudioTx:  audioCmd,
		Width:    render.TotalWidth() + render.PanelGap + render.VisibleHeight,
		Height:   render.VisibleHeight,
	})
	if err := manager.Register(&game.TitleBuilder{Theme: th}, false); nil != err {
		return err
	}

	var first page.Page = game.NewTitlePage(th)
	if nil != chart {
		sounds, images := resolve.Assets(*config.Directory, chart)
		builder := &game.GameBuilder{Config: game.GameConfig{
			Chart:   chart,
			Layout:  game.LayoutBeat7,
			Judge:   judgeParams,
			Rate:    config.Rate(),
			Delay:   config.Delay(),
			Cache:   cache,
			Sounds:  sounds,
			Images:  images,
			Ready:   audioReady,
			Workers: *config.Workers,
			Theme:   th,
			Results: results,
		}}
		if err := manager.Register(builder, true); nil != err {
			return err
		}
		if first, err = builder.Build(); nil != err {
			return err
		}
	}

	// Wait until the presentation side is ready before play begins.
	<-control

	if err := manager.SetCurrent(first); nil != err {
		return err
	}

	next := time.Now()
	prev := next
	for {
		now := time.Now()
		if now.Before(next) {
			time.Sleep(next.Sub(now))
		}
		next = next.Add(tickPeriod)

	drain:
		for {
			select {
			case msg := <-rawInput:
				if _, err := manager.HandleInput(msg); nil != err {
					return err
				}
			default:
				break drain
			}
		}

		now = time.Now()
		cont, err := manager.Update(now.Sub(prev))
		prev = now
		if nil != err {
			return err
		}

		select {
		case visual <- render.Frame{Instances: manager.Render()}:
		default:
		}

		if !cont {
			break
		}
	}

	close(visual)
	<-rendered
	close(audioCmd)
	return nil
}
