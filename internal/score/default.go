package score

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"git.lost.host/meutraa/otoge/internal/game"
)

type DefaultScorer struct {
	db *sql.DB
}

type HitsCompact struct {
	Lane   int
	Times  []time.Duration
	Grades []uint8
}

func compactHits(hits []game.Hit) []HitsCompact {
	laneCount := 0
	for _, h := range hits {
		if h.Lane >= laneCount {
			laneCount = h.Lane + 1
		}
	}
	hs := make([]HitsCompact, laneCount)
	for i := range hs {
		hs[i].Lane = i
	}
	for _, h := range hits {
		hs[h.Lane].Times = append(hs[h.Lane].Times, h.Time)
		hs[h.Lane].Grades = append(hs[h.Lane].Grades, uint8(h.Grade))
	}
	return hs
}

func uncompactHits(hits []HitsCompact) []game.Hit {
	hs := []game.Hit{}
	for _, c := range hits {
		for i, t := range c.Times {
			h := game.Hit{Lane: c.Lane, Time: t}
			if i < len(c.Grades) {
				h.Grade = game.Grade(c.Grades[i])
			}
			hs = append(hs, h)
		}
	}
	return hs
}

func (s *DefaultScorer) Init(path string) error {
	db, err := sql.Open("sqlite3", path)
	if nil != err {
		return fmt.Errorf("unable to open score database: %w", err)
	}

	initStatement := `
	create table if not exists scores
	  (
		  id integer not null primary key,
		  sum text,
		  rate real,
		  hits bytearray
	  );
	`
	if _, err = db.Exec(initStatement); nil != err {
		return fmt.Errorf("unable to create score table: %w", err)
	}

	s.db = db
	return nil
}

func (s *DefaultScorer) Deinit() {
	if nil != s.db {
		s.db.Close()
	}
}

// hashChart identifies a chart by its note content, so renamed
// directories keep their history.
func (s *DefaultScorer) hashChart(c *game.Chart) string {
	h := sha256.New()
	h.Write([]byte(c.Title))
	h.Write([]byte{0})
	h.Write([]byte(c.Artist))
	var buf [8]byte
	for _, n := range c.Notes {
		binary.LittleEndian.PutUint64(buf[:], uint64(n.Time))
		h.Write(buf[:])
		h.Write([]byte{uint8(n.Side), uint8(n.Key)})
	}
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

func (s *DefaultScorer) Save(c *game.Chart, rate float64, hits []game.Hit) error {
	if nil == s.db {
		return nil
	}
	data, err := json.Marshal(compactHits(hits))
	if nil != err {
		return fmt.Errorf("unable to marshal hits: %w", err)
	}
	_, err = s.db.Exec("insert into scores(sum, rate, hits) values(?, ?, ?)", s.hashChart(c), rate, data)
	if nil != err {
		return fmt.Errorf("unable to save score: %w", err)
	}
	return nil
}

func (s *DefaultScorer) Load(c *game.Chart) []History {
	histories := []History{}
	if nil == s.db {
		return histories
	}
	rows, err := s.db.Query("select sum, rate, hits from scores where sum = ?", s.hashChart(c))
	if nil != err && err != sql.ErrNoRows {
		log.Println("unable to load scores", err)
		return histories
	}
	defer rows.Close()
	for rows.Next() {
		var sum string
		var data []byte
		var rate float64
		rows.Scan(&sum, &rate, &data)
		var hs []HitsCompact
		if err := json.Unmarshal(data, &hs); nil != err {
			log.Println("unable to unmarshal hit history")
			continue
		}
		histories = append(histories, History{
			Sum:  sum,
			Hits: uncompactHits(hs),
			Rate: rate,
		})
	}
	return histories
}

// Summarize replays the judged hits through the scoring rules.
func (s *DefaultScorer) Summarize(history *History) Summary {
	var sum Summary
	state := game.NewState()
	for _, h := range history.Hits {
		sum.Grades[h.Grade]++
		state.Apply(h.Grade)
		if state.Combo > sum.MaxCombo {
			sum.MaxCombo = state.Combo
		}
	}
	sum.Gauge = state.Gauge
	return sum
}
