package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/cribbage/config"
	"github.com/luca-patrignani/cribbage/domain/cribbage"
	"github.com/luca-patrignani/cribbage/ledger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	// Create a new slog handler with the PTerm logger at the configured level
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(ptermLevel(cfg.LogLevel)))
	logger := slog.New(handler)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("C", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ribbage", pterm.FgDarkGray.ToStyle()),
	).Render()

	var names [2]string
	for i := range names {
		name, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText(fmt.Sprintf("Enter the name of player %d", i+1)).
			WithDefaultValue(cfg.Players[i]).
			Show()
		if name == "" {
			name = cfg.Players[i]
		}
		names[i] = name
	}
	pterm.Println()
	pterm.Info.Printfln("%s vs %s, first to %d, %s deals first", names[0], names[1], cfg.WinScore, names[cfg.Dealer])

	var src cribbage.CardSource = cribbage.NewCribbageDeck()
	if cfg.Seed != nil {
		src = cribbage.NewSeededCribbageDeck(cfg.Seed)
		logger.Debug("using seeded deck", "seed", string(cfg.Seed))
	}

	blockchain := ledger.NewBlockchain()
	game, err := cribbage.NewGame(names, src,
		cribbage.WithDealer(cfg.Dealer),
		cribbage.WithWinningScore(cfg.WinScore),
		cribbage.WithLogger(logger),
		cribbage.WithListener(func(e cribbage.Event) {
			if err := blockchain.Append(e); err != nil {
				logger.Error("failed to record event", "kind", e.Kind, "error", err)
			}
			if line := describeEvent(e, names); line != "" {
				pterm.Info.Println(line)
			}
		}),
	)
	if err != nil {
		logger.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	sm := cribbage.NewStateMachine(game)

	if _, err := game.StartRound(); err != nil {
		logger.Error("failed to deal", "error", err)
		os.Exit(1)
	}

	for game.Phase() != cribbage.PhaseOver {
		printState(game.Session(), game.CurrentPlayer())
		var err error
		switch game.Phase() {
		case cribbage.PhaseDiscard:
			err = inputDiscard(sm, game)
		case cribbage.PhasePegging:
			err = inputPlay(sm, game)
		default:
			err = fmt.Errorf("unexpected phase %s", game.Phase())
		}
		if err != nil {
			logger.Error(err.Error())
			os.Exit(1)
		}
	}

	s := game.Session()
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{{getWinnerPanel(s)}}).Render()
	printHistory(blockchain)
	if err := blockchain.Verify(); err != nil {
		logger.Error("ledger verification failed", "error", err)
		os.Exit(1)
	}
	if totals := blockchain.Totals(); totals != s.Scores() {
		logger.Error("ledger totals differ from the scores", "ledger", totals, "scores", s.Scores())
		os.Exit(1)
	}
	pterm.Success.Printfln("Ledger verified: %d events recorded", blockchain.Len()-1)
}

// inputDiscard asks the current player for the two cards to lay away.
func inputDiscard(sm *cribbage.StateMachine, game *cribbage.Game) error {
	player := game.CurrentPlayer()
	s := game.Session()
	labels, byLabel := cardOptions(game.Hand(player))
	crib := "your"
	if s.Dealer != player {
		crib = s.Players[s.Dealer].Name + "'s"
	}
	area, _ := pterm.DefaultArea.Start()
	var action cribbage.Action
	for {
		selected, err := pterm.DefaultInteractiveMultiselect.
			WithOptions(labels).
			WithDefaultText(fmt.Sprintf("%s, select two cards for %s crib", s.Players[player].Name, crib)).
			Show()
		if err != nil {
			return err
		}
		chosen := make([]cribbage.Card, 0, len(selected))
		for _, label := range selected {
			chosen = append(chosen, byLabel[label])
		}
		action = sm.Discard(player, chosen...)
		if err := sm.Validate(action); err != nil {
			area.Update()
			pterm.Error.Printfln("Invalid discard: %s", err.Error())
			continue
		}
		if confirm, _ := pterm.DefaultInteractiveConfirm.WithDefaultText(fmt.Sprintf("Discard %s?", joinCards(chosen))).WithDefaultValue(true).Show(); confirm {
			break
		}
		area.Update()
		pterm.Info.Println("Discard cancelled.")
	}
	area.Stop()
	_, err := sm.Apply(action)
	return err
}

// inputPlay asks the current player for the next card to lay on the pile.
func inputPlay(sm *cribbage.StateMachine, game *cribbage.Game) error {
	s := game.Session()
	player := game.CurrentPlayer()
	labels, byLabel := cardOptions(game.Hand(player))
	for {
		selected, err := pterm.DefaultInteractiveSelect.
			WithOptions(labels).
			WithDefaultText(fmt.Sprintf("%s, play a card (count %d)", s.Players[player].Name, s.Total)).
			Show()
		if err != nil {
			return err
		}
		action := sm.Play(byLabel[selected])
		if err := sm.Validate(action); err != nil {
			pterm.Error.Printfln("Invalid play: %s", err.Error())
			continue
		}
		_, err = sm.Apply(action)
		return err
	}
}
