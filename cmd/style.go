package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/luca-patrignani/cribbage/domain/cribbage"
	"github.com/luca-patrignani/cribbage/ledger"
	"github.com/pterm/pterm"
)

func ptermLevel(level slog.Level) pterm.LogLevel {
	switch {
	case level <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case level <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case level <= slog.LevelWarn:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}

// cardOptions returns one selectable label per card and the lookup back to it.
func cardOptions(hand []cribbage.Card) ([]string, map[string]cribbage.Card) {
	labels := make([]string, len(hand))
	byLabel := make(map[string]cribbage.Card, len(hand))
	for i, c := range hand {
		labels[i] = c.String()
		byLabel[labels[i]] = c
	}
	return labels, byLabel
}

func joinCards(cards []cribbage.Card) string {
	s := make([]string, len(cards))
	for i, c := range cards {
		s[i] = c.String()
	}
	return strings.Join(s, " - ")
}

// describeEvent renders an event as a line for the player log. Events that
// the board already shows return an empty string.
func describeEvent(e cribbage.Event, names [2]string) string {
	name := func(p int) string {
		if p < 0 || p > 1 {
			return ""
		}
		return pterm.LightCyan(names[p])
	}
	switch e.Kind {
	case cribbage.EventRoundStarted:
		return fmt.Sprintf("Round %d, %s deals", e.Round, name(e.Player))
	case cribbage.EventPeggingStarted:
		return fmt.Sprintf("%s leads", name(e.Player))
	case cribbage.EventPoints:
		return fmt.Sprintf("%s pegs %d for %s", name(e.Player), e.Points, e.Description)
	case cribbage.EventGo:
		return fmt.Sprintf("%s says GO", name(e.Player))
	case cribbage.EventCountReset:
		return "The count starts again from 0"
	case cribbage.EventShow:
		return fmt.Sprintf("%s scores %d: %s. Totals: %s = %d, %s = %d",
			name(e.Player), e.Points, e.Description, names[0], e.Scores[0], names[1], e.Scores[1])
	case cribbage.EventRoundComplete:
		return fmt.Sprintf("End of round %d. Totals: %s = %d, %s = %d", e.Round, names[0], e.Scores[0], names[1], e.Scores[1])
	case cribbage.EventGameOver:
		return fmt.Sprintf("%s wins!", name(e.Player))
	}
	return ""
}

func printState(s cribbage.Session, current int) {
	opponent := 1 - current
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{{Data: printPlayerInfo(s, opponent, false)}},
		{{Data: pterm.DefaultHeader.WithBackgroundStyle(pterm.BgGreen.ToStyle()).Sprintf(printBoardInfo(s))}},
		{{Data: printPlayerInfo(s, current, true)}},
	}).Render()
}

func printPlayerInfo(s cribbage.Session, idx int, main bool) string {
	hpadding := 4
	if main {
		hpadding = 10
	}
	p := s.Players[idx]
	pbox := pterm.DefaultBox.WithHorizontalPadding(hpadding).WithTopPadding(1).WithBottomPadding(1)
	title := p.Name
	if s.Dealer == idx {
		title += " (dealer)"
	}
	hand := strings.TrimSpace(strings.Repeat(cribbage.FaceDown+" ", len(p.Hand)))
	if main {
		hand = pterm.BgGreen.Sprint(joinCards(p.Hand))
	}
	return pbox.WithTitle(title).WithTitleTopLeft().Sprintf("Score: %d/%d\n%s", p.Score, s.WinningScore, hand)
}

func printBoardInfo(s cribbage.Session) string {
	starter := cribbage.FaceDown
	if !s.Starter.IsFaceDown() {
		starter = s.Starter.String()
	}
	pile := joinCards(s.Pile)
	if pile == "" {
		pile = "-"
	}
	return "Round " + strconv.Itoa(s.Round) + " | Starter: " + starter + " | Crib: " + strconv.Itoa(len(s.Crib)) +
		" cards | Count: " + strconv.Itoa(s.Total) + " | Pile: " + pile
}

func getWinnerPanel(s cribbage.Session) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	info := ""
	if s.Winner != cribbage.NoPlayer {
		info = pterm.Sprintfln("%s won with %d points", pterm.LightCyan(s.Players[s.Winner].Name), s.Players[s.Winner].Score)
	}
	for _, p := range s.Players {
		info += pterm.Sprintfln("%s: %d", p.Name, p.Score)
	}
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightGreen("|GAME OVER|")).WithTitleTopCenter().Sprint(info)}
}

// historyRows builds the ledger table, one row per scoring block.
func historyRows(blocks []ledger.Block) pterm.TableData {
	rows := pterm.TableData{{"#", "Time", "Round", "Player", "Points", "Reason", "Scores", "Hash"}}
	for _, b := range blocks {
		if !b.Event.Scoring() {
			continue
		}
		rows = append(rows, []string{
			strconv.Itoa(b.Index),
			time.Unix(b.Timestamp, 0).Format(time.TimeOnly),
			strconv.Itoa(b.Event.Round),
			strconv.Itoa(b.Event.Player + 1),
			strconv.Itoa(b.Event.Points),
			b.Event.Description,
			fmt.Sprintf("%d-%d", b.Event.Scores[0], b.Event.Scores[1]),
			b.Hash[:8],
		})
	}
	return rows
}

func printHistory(bc *ledger.Blockchain) {
	pterm.DefaultSection.Println("Scoring history")
	pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(historyRows(bc.Blocks())).Render()
}
