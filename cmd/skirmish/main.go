package main

import (
	"flag"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"gridtactics/internal/config"
	"gridtactics/internal/game"
	"gridtactics/internal/logging"
	"gridtactics/internal/util"
)

func main() {
	var cfgDir, out string
	var seed int64
	var n int
	var saveLog, jsonLog bool
	flag.StringVar(&cfgDir, "config", "assets", "config dir")
	flag.StringVar(&out, "out", "out.json", "output file (single) or summary file (batch)")
	flag.Int64Var(&seed, "seed", 12345, "seed")
	flag.IntVar(&n, "n", 1, "number of simulations")
	flag.BoolVar(&saveLog, "log", true, "save full event log when n==1")
	flag.BoolVar(&jsonLog, "json", false, "write JSON logs instead of console lines")
	flag.Parse()

	var settings config.Settings
	if err := config.ParseEnv(&settings); err != nil {
		config.Exitf("%v", err)
	}
	log := logging.New(os.Stderr, settings.LogLevel)
	if jsonLog {
		log = logging.NewJSON(os.Stderr, settings.LogLevel)
	}

	rulesCfg, buffsCfg, scenarioCfg, err := config.LoadAll(cfgDir)
	if err != nil {
		config.Exitf("load config: %v", err)
	}
	// Each run mutates its battlefield, so every run builds a fresh scenario.
	build := func() *game.Scenario {
		sc, err := game.Build(rulesCfg, buffsCfg, scenarioCfg)
		if err != nil {
			config.Exitf("build scenario: %v", err)
		}
		if settings.MaxHalfTurns > 0 && settings.MaxHalfTurns < sc.MaxHalfTurns {
			sc.MaxHalfTurns = settings.MaxHalfTurns
		}
		return sc
	}

	if n <= 1 {
		sc := build()
		env := &game.Env{Rng: util.New(seed)}
		res := game.RunSingle(env, sc, &game.GreedyPolicy{Goals: sc.Goals}, log, saveLog)
		if err := os.WriteFile(out, game.MarshalPretty(res), 0644); err != nil {
			config.Exitf("write %s: %v", out, err)
		}
		log.Info().Str("verdict", res.Verdict).Int("half_turns", res.HalfTurns).Str("out", out).Msg("single run finished")
		return
	}

	type stat struct {
		Win, Lose, Undecided int
		SumHalfTurns         int
		ByCharacter          map[string]int
		Losses               map[string]int
	}
	st := stat{ByCharacter: map[string]int{}, Losses: map[string]int{}}
	var mu sync.Mutex
	wg := sync.WaitGroup{}
	workers := settings.Workers
	if workers <= 0 {
		workers = 1
	}
	jobs := make(chan int, n)
	quiet := log
	if log.GetLevel() < zerolog.WarnLevel {
		quiet = log.Level(zerolog.WarnLevel)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				sc := build()
				env := &game.Env{Rng: util.New(runSeed(seed, i))}
				res := game.RunSingle(env, sc, &game.GreedyPolicy{Goals: sc.Goals}, quiet, false)

				mu.Lock()
				switch res.Verdict {
				case game.VerdictWin:
					st.Win++
				case game.VerdictLose:
					st.Lose++
				default:
					st.Undecided++
				}
				st.SumHalfTurns += res.HalfTurns
				for k, v := range res.DamageByCharacter {
					st.ByCharacter[k] += v
				}
				for k, v := range res.Losses {
					st.Losses[k] += v
				}
				mu.Unlock()
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	totalDmg := 0
	for _, v := range st.ByCharacter {
		totalDmg += v
	}
	share := map[string]any{}
	for k, v := range st.ByCharacter {
		ratio := 0.0
		if totalDmg > 0 {
			ratio = float64(v) / float64(totalDmg)
		}
		share[k] = map[string]any{"total": v, "ratio": ratio}
	}

	summary := map[string]any{
		"scenario":       scenarioCfg.ID,
		"runs":           n,
		"win_rate":       float64(st.Win) / float64(n),
		"lose_rate":      float64(st.Lose) / float64(n),
		"undecided":      st.Undecided,
		"avg_half_turns": float64(st.SumHalfTurns) / float64(n),
		"total_damage":   totalDmg,
		"by_character":   share,
		"losses":         st.Losses,
	}
	if err := os.WriteFile(out, game.MarshalPretty(summary), 0644); err != nil {
		config.Exitf("write %s: %v", out, err)
	}
	log.Info().Int("runs", n).Str("out", filepath.Base(out)).Msg("batch finished")
}

// runSeed derives the seed of batch job i. It depends only on the job index,
// so a batch replays the same whichever worker picks each job up.
func runSeed(seed int64, i int) int64 {
	return seed + int64(i)
}
